package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but lacks permission.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates that a stored refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrGatewayUnavailable indicates that the persistence gateway could not be
// reached or returned an error page instead of JSON. Reads should fall back
// to the local cache when they see this.
var ErrGatewayUnavailable = errors.New("persistence gateway unavailable")

// AppError is an HTTP-aware error carrying a status code and a
// client-safe message. Handlers can serialize it directly.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func NewBadRequestError(msg string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: msg}
}

func NewUnauthorizedError(msg string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: msg}
}

func NewForbiddenError(msg string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: msg}
}

func NewInternalServerError(msg string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: msg}
}

func NewGatewayTimeoutError(msg string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: msg}
}
