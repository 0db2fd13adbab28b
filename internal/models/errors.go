package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is a custom application error. Fields maps response keys to
// human-readable messages; the API boundary renders it as a flat JSON object.
type AppError struct {
	Code   string
	Fields map[string]string
	Err    error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	for _, msg := range e.Fields {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return e.Code
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationErrors wraps per-field validation messages.
func NewValidationErrors(fields map[string]string) *AppError {
	return &AppError{
		Code:   "VALIDATION_ERROR",
		Fields: fields,
	}
}

// NewConflictError reports a duplicate resource (email, handle, like).
func NewConflictError(key, message string) *AppError {
	return &AppError{
		Code:   "CONFLICT",
		Fields: map[string]string{key: message},
	}
}

// NewNotFoundError reports a missing resource under the given response key.
func NewNotFoundError(key, message string) *AppError {
	return &AppError{
		Code:   "NOT_FOUND",
		Fields: map[string]string{key: message},
	}
}

// NewAuthenticationError reports a credential failure under the given
// response key.
func NewAuthenticationError(key, message string) *AppError {
	return &AppError{
		Code:   "AUTHENTICATION_FAILED",
		Fields: map[string]string{key: message},
	}
}

// NewUnauthorizedError reports failed authentication.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:   "UNAUTHORIZED",
		Fields: map[string]string{"notauthorized": message},
	}
}

// NewForbiddenError reports an ownership violation.
func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:   "FORBIDDEN",
		Fields: map[string]string{"notauthorized": message},
	}
}

// NewPreconditionError reports an invalid state transition, such as unliking
// a post that was never liked.
func NewPreconditionError(key, message string) *AppError {
	return &AppError{
		Code:   "PRECONDITION_FAILED",
		Fields: map[string]string{key: message},
	}
}

// NewInternalError wraps an unexpected failure. The wrapped error is logged
// but never serialized to clients.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:   "INTERNAL_ERROR",
		Fields: map[string]string{"error": "Internal server error"},
		Err:    err,
	}
}

// RespondWithError writes a standardized key-to-message JSON error body.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	if appErr, ok := err.(*AppError); ok && len(appErr.Fields) > 0 {
		return c.Status(status).JSON(appErr.Fields)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
