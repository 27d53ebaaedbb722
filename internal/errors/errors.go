// Package errors provides custom error types for the Hearth API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Validation errors.
var (
	ErrNameTooLong        = &AppError{Code: "NAME_TOO_LONG", Message: "Failed: only 50 symbols for name", StatusCode: http.StatusBadRequest}
	ErrDescriptionTooLong = &AppError{Code: "DESC_TOO_LONG", Message: "Failed: only 450 symbols for description", StatusCode: http.StatusBadRequest}
)

// User errors.
var (
	ErrUserNotFound = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
)

// Task and event errors.
var (
	ErrTaskNotFound  = &AppError{Code: "TASK_NOT_FOUND", Message: "Task not found", StatusCode: http.StatusNotFound}
	ErrEventNotFound = &AppError{Code: "EVENT_NOT_FOUND", Message: "Event not found", StatusCode: http.StatusNotFound}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrZeroAmount          = &AppError{Code: "ZERO_AMOUNT", Message: "Amount cannot be zero", StatusCode: http.StatusBadRequest}
)

// Jar errors.
var (
	ErrJarNotFound       = &AppError{Code: "JAR_NOT_FOUND", Message: "Jar not found", StatusCode: http.StatusNotFound}
	ErrNegativeJarTarget = &AppError{Code: "TARGET_LESS_ZERO", Message: "Failed: target amount less than 0", StatusCode: http.StatusBadRequest}
)

// Budget errors.
var (
	ErrNegativeBudget = &AppError{Code: "NEGATIVE_BUDGET", Message: "Budget amount cannot be negative", StatusCode: http.StatusBadRequest}
)
