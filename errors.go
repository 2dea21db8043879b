package daterange

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes construction errors.
type ErrorCode string

const (
	// ErrCodeMalformedInterval indicates a shorthand input that is not a
	// "start/end" string or a two-element sequence.
	ErrCodeMalformedInterval ErrorCode = "MALFORMED_INTERVAL"

	// ErrCodeUnsupportedUnit indicates a unit with no calendar start/end.
	ErrCodeUnsupportedUnit ErrorCode = "UNSUPPORTED_UNIT"
)

// Error is returned by the factory functions for problems with the shape
// of their input. Errors from the instant package are returned unchanged
// and are not wrapped in an Error.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Input is the offending input, if any.
	Input string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (input=%q)", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsMalformedInterval returns true if err is a malformed interval error.
// Uses errors.As to handle wrapped errors.
func IsMalformedInterval(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == ErrCodeMalformedInterval
	}
	return false
}

// IsUnsupportedUnit returns true if err is an unsupported unit error.
func IsUnsupportedUnit(err error) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Code == ErrCodeUnsupportedUnit
	}
	return false
}

func malformed(input, message string) *Error {
	return &Error{
		Code:    ErrCodeMalformedInterval,
		Message: message,
		Input:   input,
	}
}
