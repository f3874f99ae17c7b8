package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

// NewUnauthenticatedError reports a request that carries no caller identity.
func NewUnauthenticatedError() *AppError {
	return &AppError{
		Code:    "UNAUTHENTICATED",
		Message: "Authentication required",
	}
}

// NewAuthFailedError is the single error returned for any init-data
// verification failure; the concrete reason is never exposed to the caller.
func NewAuthFailedError() *AppError {
	return &AppError{
		Code:    "AUTH_FAILED",
		Message: "Invalid authentication data",
	}
}

// NewSelfFollowError reports an attempt to follow oneself.
func NewSelfFollowError() *AppError {
	return &AppError{
		Code:    "SELF_FOLLOW_NOT_ALLOWED",
		Message: "Cannot follow yourself",
	}
}

// NewEmptyContentError reports a body that is empty after trimming.
func NewEmptyContentError() *AppError {
	return &AppError{
		Code:    "EMPTY_CONTENT",
		Message: "Content must not be empty",
	}
}

// NewContentTooLongError reports a body longer than ContentMaxLen characters.
func NewContentTooLongError() *AppError {
	return &AppError{
		Code:    "CONTENT_TOO_LONG",
		Message: fmt.Sprintf("Content must be at most %d characters", ContentMaxLen),
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
