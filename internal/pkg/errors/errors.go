// Package errors defines the application error model.
//
// Services return *AppError values carrying a stable machine code and
// the HTTP status the API layer should render; the gin error handler
// does the mapping, so handlers never pick status codes themselves.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for errors.Is checks on wrapped causes.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrBadRequest     = errors.New("bad request")
	ErrInternal       = errors.New("internal error")
	ErrConflict       = errors.New("conflict")
	ErrServiceUnavail = errors.New("service unavailable")
)

// AppError is a structured application error.
type AppError struct {
	// Code is stable and machine-readable, e.g. "ASSET_NOT_FOUND".
	Code string `json:"code"`

	// Message is for humans; clients should branch on Code.
	Message string `json:"message"`

	// HTTPStatus is what the API layer renders. Not serialized.
	HTTPStatus int `json:"-"`

	// Params carries interpolation values for client-side messages.
	Params map[string]interface{} `json:"params,omitempty"`

	// FieldErrors lists per-field validation failures.
	FieldErrors []FieldError `json:"field_errors,omitempty"`

	// Err is the wrapped cause, reachable via errors.Is/As.
	Err error `json:"-"`
}

// FieldError describes a field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError from scratch.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap attaches an AppError code and status to an underlying cause.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithParams attaches interpolation values.
func (e *AppError) WithParams(params map[string]interface{}) *AppError {
	if e == nil || len(params) == 0 {
		return e
	}
	e.Params = params
	return e
}

// WithFieldErrors attaches per-field validation details.
func (e *AppError) WithFieldErrors(fieldErrors []FieldError) *AppError {
	if e == nil || len(fieldErrors) == 0 {
		return e
	}
	e.FieldErrors = fieldErrors
	return e
}

// Constructors, one per failure family.

// NotFound is a 404.
func NotFound(code, message string) *AppError {
	return New(code, message, http.StatusNotFound)
}

// BadRequest is a 400, the validation-failure family.
func BadRequest(code, message string) *AppError {
	return New(code, message, http.StatusBadRequest)
}

// Unauthorized is a 401.
func Unauthorized(code, message string) *AppError {
	return New(code, message, http.StatusUnauthorized)
}

// Forbidden is a 403.
func Forbidden(code, message string) *AppError {
	return New(code, message, http.StatusForbidden)
}

// Conflict is a 409 raised when state already held by another row
// blocks the write, such as a duplicate serie or a taken asset.
func Conflict(code, message string) *AppError {
	return New(code, message, http.StatusConflict)
}

// InvalidState creates a 409 error for operations rejected because the
// entity is in the wrong lifecycle state (e.g. retiring a retired asset).
func InvalidState(code, message string) *AppError {
	return New(code, message, http.StatusConflict)
}

// Internal is a 500.
func Internal(code, message string) *AppError {
	return New(code, message, http.StatusInternalServerError)
}

// IsAppError unwraps err into an *AppError when one is in the chain.
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
