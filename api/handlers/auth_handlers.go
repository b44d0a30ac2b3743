package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpost/dto"
	"inkpost/services"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterHandler godoc
// @Summary      Register
// @Description  Create an account and receive a JWT
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Credentials"
// @Success      201  {object}  dto.Envelope{data=dto.AuthDTO}
// @Failure      400  {object}  dto.Envelope
// @Router       /users/register [post]
func RegisterHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
			return
		}
		out, err := svc.Register(c.Request.Context(), services.RegisterInput{
			Username: req.Username,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		respondCreated(c, out, "User created successfully")
	}
}

// LoginHandler godoc
// @Summary      Login
// @Description  Exchange credentials for a JWT
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  dto.Envelope{data=dto.AuthDTO}
// @Failure      401  {object}  dto.Envelope
// @Router       /users/login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
			return
		}
		out, err := svc.Login(c.Request.Context(), services.LoginInput{
			Username: req.Username,
			Password: req.Password,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, out, "Login successful")
	}
}
