package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpost/dto"
	"inkpost/services"
)

// CreateTagHandler godoc
// @Summary      Create tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  nameRequest  true  "Tag"
// @Success      201  {object}  dto.Envelope{data=dto.TagDTO}
// @Failure      400  {object}  dto.Envelope
// @Router       /tags [post]
func CreateTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req nameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
			return
		}
		tag, err := svc.Create(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		respondCreated(c, tag, "Tag created successfully")
	}
}

// ListTagsHandler godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.TagDTO}
// @Router       /tags [get]
func ListTagsHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, tags, "Tags fetched successfully")
	}
}

// DeleteTagHandler godoc
// @Summary      Delete tag
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /tags/{id} [delete]
func DeleteTagHandler(svc *services.TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, nil, "Tag deleted successfully")
	}
}
