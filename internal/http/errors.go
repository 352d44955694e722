package http

import "fmt"

// ErrorCategory classifies errors for logging and response.
type ErrorCategory string

const (
	ErrCatValidation ErrorCategory = "validation"
	ErrCatAuth       ErrorCategory = "auth"
	ErrCatConflict   ErrorCategory = "conflict"
	ErrCatNotFound   ErrorCategory = "not_found"
	ErrCatUnknown    ErrorCategory = "unknown"
)

// AppError wraps an error with a category and HTTP status code.
type AppError struct {
	Category   ErrorCategory
	Message    string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) *AppError {
	return &AppError{Category: ErrCatValidation, Message: msg, StatusCode: 400}
}

func NewAuthError(msg string) *AppError {
	return &AppError{Category: ErrCatAuth, Message: msg, StatusCode: 401}
}

func NewConflictError(msg string) *AppError {
	return &AppError{Category: ErrCatConflict, Message: msg, StatusCode: 409}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Category: ErrCatNotFound, Message: msg, StatusCode: 404}
}

func NewInternalError(msg string, err error) *AppError {
	return &AppError{Category: ErrCatUnknown, Message: msg, StatusCode: 500, Err: err}
}

// ErrorResponse is the JSON body for non-200 responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
