// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-mem.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	ErrArgumentOutOfRange = errors.New("argument out of range")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrObjectDisposed     = errors.New("object disposed")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeArgumentOutOfRange
	ErrCodeInvalidOperation
	ErrCodeObjectDisposed
	ErrCodeInvalidArgument
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeArgumentOutOfRange:
		return "argument_out_of_range"
	case ErrCodeInvalidOperation:
		return "invalid_operation"
	case ErrCodeObjectDisposed:
		return "object_disposed"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	default:
		return "internal"
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code onto its sentinel so errors.Is works on *Error.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeArgumentOutOfRange:
		return ErrArgumentOutOfRange
	case ErrCodeInvalidOperation:
		return ErrInvalidOperation
	case ErrCodeObjectDisposed:
		return ErrObjectDisposed
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// OutOfRange reports an invalid length, count or index.
func OutOfRange(param string, value any) *Error {
	return NewError(ErrCodeArgumentOutOfRange, param+": argument out of range").
		WithContext(param, value)
}

// Disposed reports use of a container after Dispose.
func Disposed(object string) *Error {
	return NewError(ErrCodeObjectDisposed, object+": object disposed")
}

// InvalidOperation reports an operation the current state cannot serve,
// such as popping an empty stack.
func InvalidOperation(message string) *Error {
	return NewError(ErrCodeInvalidOperation, message)
}

// InvalidArgument reports a malformed configuration value.
func InvalidArgument(param string, value any) *Error {
	return NewError(ErrCodeInvalidArgument, param+": invalid argument").
		WithContext(param, value)
}
