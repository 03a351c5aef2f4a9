// Package errors defines the coded errors shared by the registry client and
// the CLI.
//
// The code decides how the command reacts: INVALID_ARGUMENT has already
// printed its usage line, while NETWORK_ERROR and DECODE_ERROR are reported
// on stderr. All of them end the process with status 1.
//
//	err := errors.Wrap(errors.ErrCodeNetwork, cause, "request %s", url)
//	if errors.Is(err, errors.ErrCodeNetwork) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Code classifies an Error.
type Code string

const (
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT" // unknown selector on the command line
	ErrCodeNetwork         Code = "NETWORK_ERROR"    // request could not be sent or its body read
	ErrCodeDecode          Code = "DECODE_ERROR"     // body is not a well-formed crate response
	ErrCodeInternal        Code = "INTERNAL_ERROR"   // request could not be built
)

// Error carries a Code, a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error without a cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err for people: the code prefix is dropped and the
// cause, if any, is appended.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}
