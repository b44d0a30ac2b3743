package dto

import (
	"time"

	"inkpost/models"
)

// UserDTO is the public shape of a user; the password hash never leaves the
// service layer.
type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// AuthDTO is the register/login response: a bearer token plus the public
// user.
type AuthDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// AuthorDTO is the expanded author reference embedded in blog and comment
// DTOs.
type AuthorDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
