package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpost/api/middleware"
	"inkpost/dto"
	"inkpost/services"
)

type commentRequest struct {
	Content string `json:"content"`
}

// AddCommentHandler godoc
// @Summary      Add comment
// @Description  Append a top-level comment to a blog
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string          true  "Blog ObjectID"
// @Param        body  body  commentRequest  true  "Comment"
// @Success      201  {object}  dto.Envelope{data=dto.BlogDTO}
// @Failure      400  {object}  dto.Envelope
// @Router       /blogs/{id}/comments [post]
func AddCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
			return
		}
		blog, err := svc.AddComment(c.Request.Context(), middleware.Principal(c), c.Param("id"), req.Content)
		if err != nil {
			respondError(c, err)
			return
		}
		respondCreated(c, blog, "Comment added successfully")
	}
}

// ReplyToCommentHandler godoc
// @Summary      Reply to comment
// @Description  Append a reply; the reply and the parent's replies list commit in one write
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string          true  "Blog ObjectID"
// @Param        commentId  path  string          true  "Parent comment ObjectID"
// @Param        body       body  commentRequest  true  "Reply"
// @Success      201  {object}  dto.Envelope{data=dto.BlogDTO}
// @Failure      404  {object}  dto.Envelope
// @Router       /blogs/{id}/comments/{commentId}/replies [post]
func ReplyToCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
			return
		}
		blog, err := svc.ReplyToComment(c.Request.Context(), middleware.Principal(c), c.Param("id"), c.Param("commentId"), req.Content)
		if err != nil {
			respondError(c, err)
			return
		}
		respondCreated(c, blog, "Reply added successfully")
	}
}

// DeleteCommentHandler godoc
// @Summary      Delete comment
// @Description  Removes the comment and every comment in its replies list; author or admin
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string  true  "Blog ObjectID"
// @Param        commentId  path  string  true  "Comment ObjectID"
// @Success      200  {object}  dto.Envelope{data=dto.BlogDTO}
// @Failure      403  {object}  dto.Envelope
// @Router       /blogs/{id}/comments/{commentId} [delete]
func DeleteCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.DeleteComment(c.Request.Context(), middleware.Principal(c), c.Param("id"), c.Param("commentId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, blog, "Comment deleted successfully")
	}
}

// GetRepliesHandler godoc
// @Summary      List replies
// @Description  Resolve a comment's replies to full comments in stored order
// @Tags         comments
// @Param        id         path  string  true  "Blog ObjectID"
// @Param        commentId  path  string  true  "Comment ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.CommentDTO}
// @Failure      404  {object}  dto.Envelope
// @Router       /blogs/{id}/comments/{commentId}/replies [get]
func GetRepliesHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		replies, err := svc.GetReplies(c.Request.Context(), c.Param("id"), c.Param("commentId"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, replies, "Replies fetched successfully")
	}
}
