package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkpost/apperrors"
	"inkpost/auth"
	"inkpost/dto"
	"inkpost/models"
	"inkpost/repositories"
)

// UserService covers account reads, partial updates and soft deletion under
// the owner-or-admin policy.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// UpdateUserInput carries a partial patch; nil fields keep their previous
// value.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
}

// List returns all non-deleted users, newest first.
func (s *UserService) List(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.users.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserDTO(u))
	}
	return out, nil
}

// GetByID returns a non-deleted user; a soft-deleted id is NotFound.
func (s *UserService) GetByID(ctx context.Context, userID string) (*dto.UserDTO, error) {
	id, err := parseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	d := dto.NewUserDTO(*user)
	return &d, nil
}

func (s *UserService) Update(ctx context.Context, p *auth.Principal, userID string, in UpdateUserInput) (*dto.UserDTO, error) {
	if p == nil {
		return nil, apperrors.Authentication("Authentication required")
	}
	id, err := parseObjectID(userID, "user id")
	if err != nil {
		return nil, err
	}
	if !auth.CanMutate(p, id) {
		return nil, apperrors.Authorization("You are not allowed to perform this operation")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	// Only admins may change roles.
	if in.Role != nil && !p.IsAdmin() {
		return nil, apperrors.Authorization("You are not allowed to change roles")
	}

	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if err := validateUsername(username); err != nil {
			return nil, err
		}
		if username != user.Username {
			taken, err := s.users.ExistsUsername(ctx, username)
			if err != nil {
				return nil, fmt.Errorf("check username: %w", err)
			}
			if taken {
				return nil, apperrors.Conflict("This username is already in use")
			}
		}
		user.Username = username
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		if email != user.Email {
			taken, err := s.users.ExistsEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if taken {
				return nil, apperrors.Conflict("This email address is already in use")
			}
		}
		user.Email = email
	}
	if in.Password != nil {
		if err := validatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if in.Role != nil {
		if *in.Role != models.RoleUser && *in.Role != models.RoleAdmin {
			return nil, apperrors.Validation("Unknown role")
		}
		user.Role = *in.Role
	}

	if err := s.users.Replace(ctx, user); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}
	d := dto.NewUserDTO(*user)
	return &d, nil
}

// SoftDelete stamps DeletedAt. Owner-or-admin applies, with one carve-out:
// an admin may never soft-delete their own account.
func (s *UserService) SoftDelete(ctx context.Context, p *auth.Principal, userID string) error {
	if p == nil {
		return apperrors.Authentication("Authentication required")
	}
	id, err := parseObjectID(userID, "user id")
	if err != nil {
		return err
	}
	if !auth.CanMutate(p, id) {
		return apperrors.Authorization("You are not allowed to perform this operation")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("User not found")
		}
		return fmt.Errorf("load user: %w", err)
	}
	if !auth.CanDeleteUser(p, user.ID, user.Role) {
		return apperrors.Validation("An admin cannot delete their own account")
	}

	now := time.Now()
	user.DeletedAt = &now
	if err := s.users.Replace(ctx, user); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}
