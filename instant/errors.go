package instant

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes instant errors.
type ErrorCode string

const (
	// ErrCodeInvalidInstant indicates an endpoint-like value could not be
	// turned into a time.Time.
	ErrCodeInvalidInstant ErrorCode = "INVALID_INSTANT"

	// ErrCodeUnsupportedUnit indicates an unknown unit keyword.
	ErrCodeUnsupportedUnit ErrorCode = "UNSUPPORTED_UNIT"
)

// Error is returned by coercion, parsing and unit lookup.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Input is the offending value, rendered with %v.
	Input string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %v", e.Code, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %q", e.Code, e.Input)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsInvalidInstant reports whether err is, or wraps, an invalid instant error.
func IsInvalidInstant(err error) bool {
	return hasCode(err, ErrCodeInvalidInstant)
}

// IsUnsupportedUnit reports whether err is, or wraps, an unsupported unit error.
func IsUnsupportedUnit(err error) bool {
	return hasCode(err, ErrCodeUnsupportedUnit)
}

func hasCode(err error, code ErrorCode) bool {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Code == code
	}
	return false
}

func invalidInstant(input any, cause error) *Error {
	return &Error{
		Code:  ErrCodeInvalidInstant,
		Input: fmt.Sprintf("%v", input),
		Err:   cause,
	}
}

func unsupportedUnit(input string) *Error {
	return &Error{
		Code:  ErrCodeUnsupportedUnit,
		Input: input,
	}
}
