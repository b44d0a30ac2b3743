package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"inkpost/api/middleware"
	"inkpost/apperrors"
	"inkpost/services"
)

// ListBlogsHandler godoc
// @Summary      List blogs
// @Description  List non-deleted blogs, newest first, reference-expanded
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.BlogDTO}
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, blogs, "Blogs fetched successfully")
	}
}

// GetBlogHandler godoc
// @Summary      Get blog by id
// @Description  Soft-deleted blogs are indistinguishable from absent ones
// @Tags         blogs
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.BlogDTO}
// @Failure      404  {object}  dto.Envelope
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, blog, "Blog fetched successfully")
	}
}

// CreateBlogHandler godoc
// @Summary      Create blog
// @Description  Multipart form: title, content, category_id?, tag_ids? (JSON array of hex ids), image file (required)
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title    formData  string  true   "Title (3-100 chars, unique among non-deleted)"
// @Param        content  formData  string  true   "Content (min 10 chars)"
// @Param        image    formData  file    true   "Cover image"
// @Success      201  {object}  dto.Envelope{data=dto.BlogDTO}
// @Failure      400  {object}  dto.Envelope
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		image, err := saveUploadedImage(c)
		if err != nil {
			respondError(c, err)
			return
		}
		tagIDs, err := parseTagIDs(c.PostForm("tag_ids"))
		if err != nil {
			respondError(c, err)
			return
		}

		blog, err := svc.Create(c.Request.Context(), middleware.Principal(c), services.CreateBlogInput{
			Title:      c.PostForm("title"),
			Content:    c.PostForm("content"),
			Image:      image,
			CategoryID: c.PostForm("category_id"),
			TagIDs:     tagIDs,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		respondCreated(c, blog, "Blog created successfully")
	}
}

// UpdateBlogHandler godoc
// @Summary      Update blog
// @Description  Partial multipart update; owner or admin
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Success      200  {object}  dto.Envelope{data=dto.BlogDTO}
// @Failure      403  {object}  dto.Envelope
// @Router       /blogs/{id} [put]
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.UpdateBlogInput

		if v, ok := c.GetPostForm("title"); ok {
			in.Title = &v
		}
		if v, ok := c.GetPostForm("content"); ok {
			in.Content = &v
		}
		if v, ok := c.GetPostForm("category_id"); ok {
			in.CategoryID = &v
		}
		if raw, ok := c.GetPostForm("tag_ids"); ok {
			tagIDs, err := parseTagIDs(raw)
			if err != nil {
				respondError(c, err)
				return
			}
			if tagIDs == nil {
				tagIDs = []string{}
			}
			in.TagIDs = tagIDs
		}
		image, err := saveUploadedImage(c)
		if err != nil {
			respondError(c, err)
			return
		}
		if image != "" {
			in.Image = &image
		}

		blog, err := svc.Update(c.Request.Context(), middleware.Principal(c), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, blog, "Blog updated successfully")
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete blog
// @Description  Soft delete; owner or admin
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Success      200  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Router       /blogs/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.SoftDelete(c.Request.Context(), middleware.Principal(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, nil, "Blog deleted successfully")
	}
}

// IncrementBlogViewsHandler godoc
// @Summary      Increment blog view count
// @Tags         blogs
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /blogs/{id}/view [post]
func IncrementBlogViewsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.IncrementViews(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, nil, "View count incremented successfully")
	}
}

// parseTagIDs decodes the tag_ids form field, a JSON-encoded array of hex
// ids. Empty input means no tags.
func parseTagIDs(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, apperrors.Validation("tag_ids must be a JSON array of ids")
	}
	return ids, nil
}
