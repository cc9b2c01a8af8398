package apperr

import "github.com/gofiber/fiber/v2"

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error type every guard and service failure is
// expressed as. The top-level fiber error handler turns it into the
// {success:false, message, errors?} response shape.
type Error struct {
	Code    int          `json:"-"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	// Extra fields merged into the error response body, e.g. the
	// required/actual role pair on a hierarchy denial.
	Details map[string]interface{} `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

// WithDetails attaches extra response fields to the error.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Validation(message string, errs []FieldError) *Error {
	return &Error{Code: fiber.StatusBadRequest, Message: message, Errors: errs}
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

func Unauthenticated(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusConflict, message)
}

func MethodNotAllowed(message string) *Error {
	return New(fiber.StatusMethodNotAllowed, message)
}

func Internal(message string) *Error {
	return New(fiber.StatusInternalServerError, message)
}
