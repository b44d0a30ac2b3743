package dto

import (
	"errors"
	"net/http"

	"inkpost/apperrors"
)

// Envelope is the wire format of every response: {success, data, message}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func Success(data any, message string) Envelope {
	if message == "" {
		message = "Process successful"
	}
	return Envelope{Success: true, Data: data, Message: message}
}

func Failure(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// StatusOf maps an error's kind to its HTTP status class. Conflicts map to
// 400 alongside validation failures, matching the original API contract.
func StatusOf(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation, apperrors.KindConflict:
		return http.StatusBadRequest
	case apperrors.KindAuthentication:
		return http.StatusUnauthorized
	case apperrors.KindAuthorization:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the client-safe message for err. Unexpected failures
// collapse to a generic message so internals never leak.
func MessageOf(err error) string {
	var e *apperrors.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
