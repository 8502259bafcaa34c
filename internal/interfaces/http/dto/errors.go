package dto

import (
	"net/http"
	"strings"
)

// Shared error codes used directly by handlers and middleware
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes absent from the table fall back by prefix in GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeInternal:     http.StatusInternalServerError,

	// Authentication
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,

	// Uniqueness conflicts
	"ALREADY_EXISTS":     http.StatusConflict,
	"USERNAME_TAKEN":     http.StatusConflict,
	"EMAIL_TAKEN":        http.StatusConflict,
	"REGISTRATION_TAKEN": http.StatusConflict,
	"CATEGORY_EXISTS":    http.StatusConflict,
	"DUPLICATE_NEED":     http.StatusConflict,

	// Concurrency
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Business rule violations
	"INVALID_TRANSITION":    http.StatusUnprocessableEntity,
	"NOT_CANCELLABLE":       http.StatusUnprocessableEntity,
	"NEED_INACTIVE":         http.StatusUnprocessableEntity,
	"ORGANIZATION_INACTIVE": http.StatusUnprocessableEntity,
	"TARGET_BELOW_RECEIVED": http.StatusBadRequest,

	// Infrastructure
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// Unlisted INVALID_* codes are treated as validation failures.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
