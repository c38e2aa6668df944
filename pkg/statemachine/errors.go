package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrNilTable            = errors.New("transition table cannot be nil")
	ErrEmptyTable          = errors.New("transition table is empty")
	ErrMissingInitial      = errors.New("no transition declared from the init state")
	ErrAmbiguousInitial    = errors.New("more than one transition declared from the init state")
	ErrTransitionFromExit  = errors.New("transition declared from the exit state")
	ErrTransitionToInit    = errors.New("transition declared into the init state")
	ErrNilHandler          = errors.New("transition has no handler")
	ErrExitHandler         = errors.New("transition into the exit state cannot have a handler")
	ErrDuplicateTransition = errors.New("transition declared more than once")
	ErrAlreadyRunning      = errors.New("state machine is already running")
)

// ErrInvalidTableEntry reports the table entry that failed validation.
type ErrInvalidTableEntry struct {
	Index int
	From  State
	To    State
	Err   error
}

func (e *ErrInvalidTableEntry) Error() string {
	return fmt.Sprintf("invalid transition[%d] %s->%s: %v", e.Index, e.From, e.To, e.Err)
}

func (e *ErrInvalidTableEntry) Unwrap() error {
	return e.Err
}

func NewErrInvalidTableEntry(index int, from, to State, err error) *ErrInvalidTableEntry {
	return &ErrInvalidTableEntry{
		Index: index,
		From:  from,
		To:    to,
		Err:   err,
	}
}

// ErrUndeclaredTransition indicates a handler asked for a state the table does not allow.
type ErrUndeclaredTransition struct {
	From State
	To   State
}

func (e *ErrUndeclaredTransition) Error() string {
	return fmt.Sprintf("can't change from state '%s' to state '%s': transition not declared", e.From, e.To)
}

func NewErrUndeclaredTransition(from, to State) *ErrUndeclaredTransition {
	return &ErrUndeclaredTransition{
		From: from,
		To:   to,
	}
}

// ErrHandlerFailed wraps an error returned by a transition handler.
type ErrHandlerFailed struct {
	From State
	To   State
	Err  error
}

func (e *ErrHandlerFailed) Error() string {
	return fmt.Sprintf("handler for %s->%s failed: %v", e.From, e.To, e.Err)
}

func (e *ErrHandlerFailed) Unwrap() error {
	return e.Err
}

func NewErrHandlerFailed(from, to State, err error) *ErrHandlerFailed {
	return &ErrHandlerFailed{
		From: from,
		To:   to,
		Err:  err,
	}
}

func IsInvalidTableEntryError(err error) bool {
	var e *ErrInvalidTableEntry
	return errors.As(err, &e)
}

func IsUndeclaredTransitionError(err error) bool {
	var e *ErrUndeclaredTransition
	return errors.As(err, &e)
}

func IsHandlerFailedError(err error) bool {
	var e *ErrHandlerFailed
	return errors.As(err, &e)
}
