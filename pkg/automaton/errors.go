package automaton

import (
	"errors"
	"fmt"
)

// ErrNoInitialState is returned when an operation requires an initial state
// and the machine has none defined.
var ErrNoInitialState = errors.New("no initial state defined")

// DuplicateStateError is returned when adding a state whose id already exists.
type DuplicateStateError struct {
	ID string
}

func (e *DuplicateStateError) Error() string {
	return fmt.Sprintf("state %q already exists", e.ID)
}

// UnknownStateError is returned when an operation references a state id that
// is not part of the machine.
type UnknownStateError struct {
	ID string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q", e.ID)
}

// NonDeterministicTransitionError is returned when a transition would give a
// (state, symbol) pair a second, different target.
type NonDeterministicTransitionError struct {
	From     string
	Symbol   string
	Existing string
	Proposed string
}

func (e *NonDeterministicTransitionError) Error() string {
	sym := e.Symbol
	if sym == Epsilon {
		sym = "ε"
	}
	return fmt.Sprintf("transition (%s, %s) already targets %q, cannot also target %q",
		e.From, sym, e.Existing, e.Proposed)
}

// ParseError is returned by codecs when the raw input cannot be decoded at all.
type ParseError struct {
	Format string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Format, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// SchemaError is returned by codecs when the input decoded but a required
// field is missing or malformed.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// ResourceLimitError is returned when a generation run would exceed the
// configured safety ceiling. It is a refusal, not a truncation.
type ResourceLimitError struct {
	Projected int
	Limit     int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("projected output of %d strings exceeds limit of %d", e.Projected, e.Limit)
}

// ValidationError represents a single model consistency failure reported by
// Validate. It never aborts an operation; callers decide how to surface it.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
