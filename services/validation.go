package services

import (
	"regexp"
	"strings"

	"inkpost/apperrors"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return apperrors.Validation("Username cannot be empty")
	}
	if len(username) < 3 {
		return apperrors.Validation("Username must be at least 3 characters")
	}
	if len(username) > 30 {
		return apperrors.Validation("Username must be at most 30 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return apperrors.Validation("Email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return apperrors.Validation("Please enter a valid email address")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return apperrors.Validation("Password cannot be empty")
	}
	if len(password) < 6 {
		return apperrors.Validation("Password must be at least 6 characters")
	}
	if len(password) > 36 {
		return apperrors.Validation("Password must be at most 36 characters")
	}
	return nil
}
