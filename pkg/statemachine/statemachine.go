package statemachine

import (
	"context"
	"strconv"
)

// State identifies a point in the control-flow graph.
type State int

// Reserved pseudo-states. User-defined states start at UserStart.
const (
	Init State = iota
	Exit
	UserStart
)

func (s State) String() string {
	switch s {
	case Init:
		return "INIT"
	case Exit:
		return "EXIT"
	default:
		return strconv.Itoa(int(s))
	}
}

// IsPseudo reports whether s is Init or Exit.
func (s State) IsPseudo() bool {
	return s == Init || s == Exit
}

// Handler runs the work of a transition and returns the state to move to next.
// Returning an error aborts the run.
type Handler[T any] func(ctx context.Context, data *T) (State, error)

// Transition declares an expected edge of the graph together with the handler
// invoked when the edge is taken. Handler is nil for transitions into Exit.
type Transition[T any] struct {
	From    State
	To      State
	Handler Handler[T]
}

// WillChangeFunc is notified before the handler of (from, to) runs.
type WillChangeFunc func(ctx context.Context, from, to State)

// DidChangeFunc is notified after the handler of (from, to) returned next.
type DidChangeFunc func(ctx context.Context, from, to, next State)

// BadChangeFunc is called when (from, to) is not declared in the table.
// The returned state is used as the corrected target. Returning Exit aborts
// the run, returning to unchanged declines the correction.
type BadChangeFunc func(ctx context.Context, from, to State) State

// Result describes where a run ended.
type Result struct {
	RunID string
	From  State
	To    State
	Steps int
}

// Status is the lifecycle of a Machine.
type Status int32

const (
	StatusIdle Status = iota
	StatusRunning
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}
