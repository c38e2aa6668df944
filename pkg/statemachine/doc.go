// Package statemachine provides a table-driven finite-state-machine
// interpreter for Go applications.
//
// A machine is described by a fixed list of transitions, each a
// (from, to, handler) triple. Two pseudo-states bracket every run: Init,
// from which exactly one transition must be declared, and Exit, which ends
// the run and never has a handler. User states start at UserStart.
//
// The interpreter keeps the current (from, to) pair, looks it up in the
// table, runs its handler with a shared, typed data value and moves to
// (to, next) where next is whatever the handler returned. The table is the
// contract; the handler's return value is the decision.
//
// # Usage
//
//	type counter struct{ n int }
//
//	const (
//	    Count = statemachine.UserStart + iota
//	    Done
//	)
//
//	table := statemachine.MustNewTable(
//	    statemachine.Transition[counter]{From: statemachine.Init, To: Count, Handler: count},
//	    statemachine.Transition[counter]{From: Count, To: statemachine.Exit},
//	)
//
//	m := statemachine.MustNew(table)
//	res, err := m.Run(context.Background(), &counter{})
//
// # Observers
//
// WithWillChange and WithDidChange register tracing callbacks around each
// handler. WithBadChange registers the hook called when a handler returns a
// state the table does not declare for the current step. The hook returns the
// corrected target: Abort ends the run, Decline keeps the failure and
// FollowDeclared redirects to the only declared successor.
//
// Without a bad-change hook an undeclared transition fails the run with
// *ErrUndeclaredTransition.
//
// # Error Handling
//
// NewTable reports every configuration problem before anything runs:
//
//	if statemachine.IsInvalidTableEntryError(err) { /* ... */ }
//	if errors.Is(err, statemachine.ErrMissingInitial) { /* ... */ }
//
// Run failures are typed as well:
//
//	if statemachine.IsUndeclaredTransitionError(err) { /* ... */ }
//	if statemachine.IsHandlerFailedError(err)        { /* ... */ }
//
// # Concurrency
//
// A Machine executes synchronously on the caller's goroutine. Calling Run
// while another Run is in progress returns ErrAlreadyRunning. Handlers observe
// ctx and may return early when it is cancelled.
package statemachine
