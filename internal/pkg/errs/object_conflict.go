package errs

import (
	"errors"
	"fmt"
)

// ErrObjectConflict is the sentinel for writes that clash with existing state,
// such as a duplicate unique key or deleting a row other rows still reference.
var ErrObjectConflict = errors.New("object conflict")

// ObjectConflictError reports which object could not be written and why.
type ObjectConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectConflictError creates an ObjectConflictError without an underlying cause.
func NewObjectConflictError(paramName string, id any) *ObjectConflictError {
	return &ObjectConflictError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectConflictErrorWithCause creates an ObjectConflictError wrapping the storage error.
func NewObjectConflictErrorWithCause(paramName string, id any, cause error) *ObjectConflictError {
	return &ObjectConflictError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %v", ErrObjectConflict, e.ParamName, e.ID), e.Cause)
}

func (e *ObjectConflictError) Unwrap() error {
	return ErrObjectConflict
}
