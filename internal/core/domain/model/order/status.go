package order

import (
	"fmt"
	"strconv"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Received ──> Preparing ──> Ready ──> Delivered
//	    │            │           │
//	    └────────────┴───────────┴──────> Canceled
//
// Delivered and Canceled are terminal. Staff may step an order back one stage
// along the linear path while it is still open.
type Status int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown Status = iota

	// Received is the initial status of every new order.
	Received

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order waits to be handed over.
	Ready

	// Delivered means the order was handed over. Terminal.
	Delivered

	// Canceled means the order was abandoned. Terminal.
	Canceled
)

// Actions named in IllegalTransitionError. The first three are accepted by Apply.
const (
	ActionAdvance         = "advance"
	ActionRevert          = "revert"
	ActionCancel          = "cancel"
	ActionMutateLineItems = "modify line items"
)

// pipeline is the linear happy path. It is returned by value so callers
// cannot alter the sequence.
func pipeline() [4]Status {
	return [...]Status{Received, Preparing, Ready, Delivered}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Received:  "RECEIVED",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Canceled:  "CANCELED",
	}
}

// ParseStatus converts the persisted or requested representation of a status.
// Anything other than the five known names yields an *InvalidStateError.
//
// Example:
//
//	s, err := order.ParseStatus("PREPARING") // order.Preparing, nil
//	_, err = order.ParseStatus("BOGUS")      // *order.InvalidStateError
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, NewInvalidStateError(s)
}

// AllStatuses lists the valid statuses, happy path first.
func AllStatuses() []Status {
	p := pipeline()
	return append(p[:], Canceled)
}

// Validate returns an *InvalidStateError for Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return NewInvalidStateError(strconv.Itoa(int(s)))
	}
	return nil
}

// String returns the persisted name of the status, for example "READY".
// Invalid values render as "Status(n)".
func (s Status) String() string {
	if name, ok := getStatusStrings()[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Next returns the status following s on the linear path.
// The boolean is false for Delivered, which ends the path, and for Canceled,
// which is not on it.
func (s Status) Next() (Status, bool, error) {
	i, err := s.position()
	if err != nil || i < 0 {
		return Unknown, false, err
	}
	p := pipeline()
	if i == len(p)-1 {
		return Unknown, false, nil
	}
	return p[i+1], true, nil
}

// Previous returns the status preceding s on the linear path.
// The boolean is false for Received and Canceled.
func (s Status) Previous() (Status, bool, error) {
	i, err := s.position()
	if err != nil || i <= 0 {
		return Unknown, false, err
	}
	return pipeline()[i-1], true, nil
}

// IsTerminal reports whether s is Delivered or Canceled.
func (s Status) IsTerminal() (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	return s == Delivered || s == Canceled, nil
}

// CanMutateLineItems reports whether items may be added to or removed from an
// order in status s.
func (s Status) CanMutateLineItems() (bool, error) {
	terminal, err := s.IsTerminal()
	if err != nil {
		return false, err
	}
	return !terminal, nil
}

// CanCancel reports whether an order in status s may still be canceled.
func (s Status) CanCancel() (bool, error) {
	terminal, err := s.IsTerminal()
	if err != nil {
		return false, err
	}
	return !terminal, nil
}

// ValidateMutateLineItems is CanMutateLineItems expressed as an error, ready to
// be returned from a command.
func (s Status) ValidateMutateLineItems() error {
	ok, err := s.CanMutateLineItems()
	if err != nil {
		return err
	}
	if !ok {
		return NewIllegalTransitionError(s, ActionMutateLineItems)
	}
	return nil
}

// Advance moves one step forward on the linear path.
func (s Status) Advance() (Status, error) {
	next, ok, err := s.Next()
	if err != nil {
		return Unknown, err
	}
	if !ok {
		return Unknown, NewIllegalTransitionError(s, ActionAdvance)
	}
	return next, nil
}

// Revert moves one step back on the linear path. Terminal orders stay closed.
func (s Status) Revert() (Status, error) {
	terminal, err := s.IsTerminal()
	if err != nil {
		return Unknown, err
	}
	prev, ok, err := s.Previous()
	if err != nil {
		return Unknown, err
	}
	if terminal || !ok {
		return Unknown, NewIllegalTransitionError(s, ActionRevert)
	}
	return prev, nil
}

// Cancel moves an open order to Canceled.
func (s Status) Cancel() (Status, error) {
	ok, err := s.CanCancel()
	if err != nil {
		return Unknown, err
	}
	if !ok {
		return Unknown, NewIllegalTransitionError(s, ActionCancel)
	}
	return Canceled, nil
}

// Apply performs the named action: ActionAdvance, ActionRevert or ActionCancel.
func (s Status) Apply(action string) (Status, error) {
	switch action {
	case ActionAdvance:
		return s.Advance()
	case ActionRevert:
		return s.Revert()
	case ActionCancel:
		return s.Cancel()
	default:
		return Unknown, NewIllegalTransitionError(s, strconv.Quote(action))
	}
}

// TransitionTo resolves a requested target status against the state machine.
//
// The target must be s itself (a no-op), the next or previous status on the
// linear path, or Canceled. Any other target yields an *IllegalTransitionError;
// an invalid target yields an *InvalidStateError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := validateAll(s, target); err != nil {
		return Unknown, err
	}
	if target == s {
		return s, nil
	}

	if target == Canceled {
		return s.Cancel()
	}
	if next, ok, _ := s.Next(); ok && next == target {
		return s.Advance()
	}
	if prev, ok, _ := s.Previous(); ok && prev == target {
		return s.Revert()
	}
	return Unknown, NewIllegalTransitionError(s, "move to "+target.String())
}

func validateAll(statuses ...Status) error {
	for _, st := range statuses {
		if err := st.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// position returns the index of s on the linear path, or -1 for Canceled.
func (s Status) position() (int, error) {
	if err := s.Validate(); err != nil {
		return -1, err
	}
	for i, st := range pipeline() {
		if st == s {
			return i, nil
		}
	}
	return -1, nil
}
