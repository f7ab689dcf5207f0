package errors

import "net/http"

// AppError is an API error carrying the HTTP status it renders with.
// Handlers attach one to the gin context and write it in one step; the
// error middleware renders any that reach it unwritten.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// New creates an AppError with an explicit status code
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Failure taxonomy of the API: invalid input, missing identity, acting
// on someone else's resource, missing resource, uniqueness conflict,
// and backend failure.

func Validation(msg string) *AppError {
	return New(http.StatusBadRequest, msg)
}

func Unauthenticated(msg string) *AppError {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *AppError {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) *AppError {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) *AppError {
	return New(http.StatusConflict, msg)
}

func Internal(msg string) *AppError {
	return New(http.StatusInternalServerError, msg)
}

// Shared lookup failures
var (
	ErrProductNotFound = NotFound("Product not found")
	ErrUserNotFound    = NotFound("User not found")
)
