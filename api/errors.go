// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-mem library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrOutOfMemory reports that the chunk source could not satisfy a
	// bulk allocation. The pool never retries internally.
	ErrOutOfMemory = fmt.Errorf("chunk source out of memory")

	// ErrExhausted reports that the free list was still empty after a
	// successful refill. Only possible under concurrent use; the caller
	// is expected to retry the allocation.
	ErrExhausted = fmt.Errorf("free list exhausted, retry")

	// ErrPoolClosed reports use of a pool after Destroy.
	ErrPoolClosed = fmt.Errorf("pool is destroyed")

	// ErrInvalidArgument reports a rejected pool configuration.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeOutOfMemory
	ErrCodeExhausted
	ErrCodeClosed
	ErrCodeInternal
)

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
