// Package apperrors defines the typed error taxonomy shared by services and
// the HTTP error-handler middleware.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation         Kind = "validation"
	KindNotFound           Kind = "not_found"
	KindUnauthorized       Kind = "unauthorized"
	KindConflict           Kind = "conflict"
	KindGenerationUpstream Kind = "generation_upstream"
	KindInternal           Kind = "internal"
)

// AppError carries an error kind plus optional field-level detail. Services
// return it so controllers and middleware can map it to an HTTP status
// without string matching.
type AppError struct {
	Kind    Kind
	Message string
	Fields  []string // offending fields for validation errors
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewValidation(message string, fields ...string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

func NewNotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewGenerationUpstream(cause error) *AppError {
	return &AppError{Kind: KindGenerationUpstream, Message: "text generation failed", Cause: cause}
}

// AsAppError unwraps err into an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
