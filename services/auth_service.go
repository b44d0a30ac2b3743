package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inkpost/apperrors"
	"inkpost/auth"
	"inkpost/dto"
	"inkpost/models"
	"inkpost/repositories"
)

// AuthService handles registration and login: credential validation, bcrypt
// hashing and token issuance.
type AuthService struct {
	users UserStore
	jwt   *auth.JWTManager
}

func NewAuthService(users UserStore, jwt *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*dto.AuthDTO, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if err := validateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	emailTaken, err := s.users.ExistsEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	usernameTaken, err := s.users.ExistsUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}

	var conflicts []string
	if emailTaken {
		conflicts = append(conflicts, "This email address is already in use")
	}
	if usernameTaken {
		conflicts = append(conflicts, "This username is already in use")
	}
	if len(conflicts) > 0 {
		return nil, apperrors.Conflict(strings.Join(conflicts, ", "))
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	token, err := s.jwt.Sign(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &dto.AuthDTO{Token: token, User: dto.NewUserDTO(*user)}, nil
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*dto.AuthDTO, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, apperrors.Validation("Username cannot be empty")
	}
	if in.Password == "" {
		return nil, apperrors.Validation("Password cannot be empty")
	}

	user, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, in.Password) {
		return nil, apperrors.Authentication("Invalid password")
	}

	token, err := s.jwt.Sign(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &dto.AuthDTO{Token: token, User: dto.NewUserDTO(*user)}, nil
}
