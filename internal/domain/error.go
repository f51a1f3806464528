package domain

import (
	"errors"
	"fmt"
)

// Application error codes. Handlers map these onto HTTP status codes and
// user-facing messages.
const (
	ECONFLICT     = "conflict"     // 409 - duplicate submission, state conflict
	EINTERNAL     = "internal"     // 500 - internal error (details hidden)
	EINVALID      = "invalid"      // 400 - validation failure
	ENOTFOUND     = "not_found"    // 404 - resource not found
	EUNAUTHORIZED = "unauthorized" // 401 - credentials required
	EFORBIDDEN    = "forbidden"    // 403 - authenticated but not permitted
	ERATELIMIT    = "rate_limit"   // 429 - too many requests
	EUNAVAILABLE  = "unavailable"  // 502 - upstream backend failed
)

// Error is an application error with a machine-readable code.
// It implements the error interface and supports wrapping.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is safe to show to users.
	Message string

	// Op names the operation that failed (e.g. "cart.add"). Logged, never shown.
	Op string

	// Err is the wrapped cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Op != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode extracts the code from an error. Unknown error types report
// EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage extracts a user-facing message. Internal and unknown errors
// collapse to a generic message so details never leak to clients.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Code != EINTERNAL {
		return e.Message
	}
	return "An internal error occurred. Please try again later."
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code string) bool {
	return ErrorCode(err) == code
}

// Errorf creates a new domain error with a formatted message.
func Errorf(code, op, format string, args ...any) error {
	return &Error{Code: code, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Invalid creates a validation error.
func Invalid(op, message string) error {
	return &Error{Code: EINVALID, Op: op, Message: message}
}

// NotFound creates a not-found error for a resource.
func NotFound(op, resource string) error {
	return &Error{Code: ENOTFOUND, Op: op, Message: resource + " not found"}
}

// Unauthorized creates an authentication error.
func Unauthorized(op, message string) error {
	return &Error{Code: EUNAUTHORIZED, Op: op, Message: message}
}

// Unavailable wraps an upstream failure. The message is shown to the user;
// the cause is kept for logging.
func Unavailable(err error, op, message string) error {
	return &Error{Code: EUNAVAILABLE, Op: op, Message: message, Err: err}
}

// Internal wraps an unexpected failure. Users see a generic message.
func Internal(err error, op, message string) error {
	return &Error{Code: EINTERNAL, Op: op, Message: message, Err: err}
}
