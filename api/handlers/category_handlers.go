package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpost/dto"
	"inkpost/services"
)

type nameRequest struct {
	Name string `json:"name"`
}

// CreateCategoryHandler godoc
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  nameRequest  true  "Category"
// @Success      201  {object}  dto.Envelope{data=dto.CategoryDTO}
// @Failure      400  {object}  dto.Envelope
// @Router       /categories [post]
func CreateCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req nameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
			return
		}
		category, err := svc.Create(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		respondCreated(c, category, "Category created successfully")
	}
}

// ListCategoriesHandler godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.CategoryDTO}
// @Router       /categories [get]
func ListCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, categories, "Categories fetched successfully")
	}
}

// DeleteCategoryHandler godoc
// @Summary      Delete category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /categories/{id} [delete]
func DeleteCategoryHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, nil, "Category deleted successfully")
	}
}
