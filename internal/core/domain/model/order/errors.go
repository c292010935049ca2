package order

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is the sentinel behind InvalidStateError.
	ErrInvalidState = errors.New("invalid order status")

	// ErrIllegalTransition is the sentinel behind IllegalTransitionError.
	ErrIllegalTransition = errors.New("illegal order transition")
)

// InvalidStateError reports a status value that is not one of the five known states.
// A stored order carrying such a value is corrupt and must not be coerced to a default.
type InvalidStateError struct {
	Value string
}

// NewInvalidStateError creates an InvalidStateError for the given raw value.
func NewInvalidStateError(value string) *InvalidStateError {
	return &InvalidStateError{Value: value}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidState, e.Value)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// IllegalTransitionError reports an action the state machine does not permit
// from the order's current status.
type IllegalTransitionError struct {
	From   Status
	Action string
}

// NewIllegalTransitionError creates an IllegalTransitionError.
func NewIllegalTransitionError(from Status, action string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, Action: action}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed for an order in %s status", ErrIllegalTransition, e.Action, e.From)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
