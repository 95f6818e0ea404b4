package picsel

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-readable error category.
type ErrorCode string

const (
	ErrCodeInvalidSelection ErrorCode = "INVALID_SELECTION" // malformed selection file
	ErrCodeSourceNotFound   ErrorCode = "SOURCE_NOT_FOUND"  // folder or sub-selection missing
	ErrCodeInvalidConfig    ErrorCode = "INVALID_CONFIG"    // unreadable config file
	ErrCodeInvalidScript    ErrorCode = "INVALID_SCRIPT"    // malformed input script
	ErrCodeDecodeFailed     ErrorCode = "DECODE_FAILED"     // image or metadata could not be read
	ErrCodeIO               ErrorCode = "IO"                // any other file system failure
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapError(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// IsCode reports whether any error in err's chain is an *Error with code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
