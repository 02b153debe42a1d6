package errors

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeSchemaMismatch ErrorType = "SCHEMA_MISMATCH"
	ErrTypeInvalidInput   ErrorType = "INVALID_INPUT"
	ErrTypeStorage        ErrorType = "STORAGE"
	ErrTypeInternal       ErrorType = "INTERNAL"
)

// DomainError carries the failure taxonomy of a pipeline run together with
// a captured stack. Parse-misses are not errors and never reach this type;
// anything that does aborts the run.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

// SchemaMismatch marks an expected column missing from an input file.
func SchemaMismatch(message string, err error) *DomainError {
	return New(ErrTypeSchemaMismatch, message, err)
}

func InvalidInput(message string, err error) *DomainError {
	return New(ErrTypeInvalidInput, message, err)
}

// Storage marks a warehouse connection or write failure.
func Storage(message string, err error) *DomainError {
	return New(ErrTypeStorage, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}
