package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpost/api/middleware"
	"inkpost/dto"
	"inkpost/services"
)

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// ListUsersHandler godoc
// @Summary      List users
// @Description  List non-deleted users, newest first (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=[]dto.UserDTO}
// @Router       /users [get]
func ListUsersHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, users, "Users fetched successfully")
	}
}

// GetUserHandler godoc
// @Summary      Get user by id
// @Tags         users
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=dto.UserDTO}
// @Failure      404  {object}  dto.Envelope
// @Router       /users/{id} [get]
func GetUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, user, "User details fetched successfully")
	}
}

// UpdateUserHandler godoc
// @Summary      Update user
// @Description  Partial update; owner or admin. Role changes are admin only
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "ObjectID"
// @Param        body  body  updateUserRequest  true  "Patch"
// @Success      200  {object}  dto.Envelope{data=dto.UserDTO}
// @Failure      403  {object}  dto.Envelope
// @Router       /users/{id} [put]
func UpdateUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
			return
		}
		user, err := svc.Update(c.Request.Context(), middleware.Principal(c), c.Param("id"), services.UpdateUserInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, user, "User updated successfully")
	}
}

// DeleteUserHandler godoc
// @Summary      Delete user
// @Description  Soft delete; owner or admin. An admin cannot delete themself
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Router       /users/{id} [delete]
func DeleteUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.SoftDelete(c.Request.Context(), middleware.Principal(c), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, nil, "User deleted successfully")
	}
}
