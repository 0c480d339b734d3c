package models

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError. The code decides both the HTTP status and
// the response shape: validation and conflict failures render the itemized
// {"errors":[{"msg":...}]} form, everything else a single {"msg":...}.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
	CodeBadRequest      = "BAD_REQUEST"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_ERROR"
)

// AppError is the application error type. Messages holds one entry per failed
// check so validation responses can itemize every problem at once.
type AppError struct {
	Code     string
	Messages []string
	Err      error
}

func (e *AppError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error code to its HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeValidation, CodeConflict, CodeBadRequest:
		return fiber.StatusBadRequest
	case CodeUnauthenticated, CodeForbidden:
		// Ownership violations answer 401, which existing clients key off of.
		return fiber.StatusUnauthorized
	case CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func NewValidationError(messages ...string) *AppError {
	return &AppError{Code: CodeValidation, Messages: messages}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Messages: []string{message}}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: CodeBadRequest, Messages: []string{message}}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Messages: []string{message}}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Messages: []string{message}}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Messages: []string{message}}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Messages: []string{"Server error"}, Err: err}
}

// itemizedError is a single entry of a validation error list.
type itemizedError struct {
	Msg string `json:"msg"`
}

// RespondWithError writes the JSON error response for err. AppError carries
// its own status and shape; anything else is treated as an internal error
// with the underlying message kept server-side.
func RespondWithError(c *fiber.Ctx, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalError(err)
	}

	status := appErr.StatusCode()

	switch appErr.Code {
	case CodeValidation, CodeConflict:
		items := make([]itemizedError, 0, len(appErr.Messages))
		for _, m := range appErr.Messages {
			items = append(items, itemizedError{Msg: m})
		}
		return c.Status(status).JSON(fiber.Map{"errors": items})
	default:
		msg := "Server error"
		if len(appErr.Messages) > 0 {
			msg = appErr.Messages[0]
		}
		return c.Status(status).JSON(fiber.Map{"msg": msg})
	}
}
