package handlers

import (
	"github.com/gin-gonic/gin"

	"inkpost/api/middleware"
	"inkpost/services"
)

// ToggleLikeHandler godoc
// @Summary      Toggle like
// @Description  Flip the caller's like on a blog; returns the new state
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "Blog ObjectID"
// @Success      200  {object}  dto.Envelope{data=dto.LikeStatusDTO}
// @Failure      404  {object}  dto.Envelope
// @Router       /blogs/{id}/like [post]
func ToggleLikeHandler(svc *services.LikeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := svc.Toggle(c.Request.Context(), middleware.Principal(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		msg := "Blog unliked successfully"
		if status.Liked {
			msg = "Blog liked successfully"
		}
		respondOK(c, status, msg)
	}
}

// LikeStatusHandler godoc
// @Summary      Like status
// @Description  Whether the caller likes the blog, plus the current count
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "Blog ObjectID"
// @Success      200  {object}  dto.Envelope{data=dto.LikeStatusDTO}
// @Router       /blogs/{id}/like [get]
func LikeStatusHandler(svc *services.LikeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := svc.Status(c.Request.Context(), middleware.Principal(c), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, status, "Like status fetched successfully")
	}
}
