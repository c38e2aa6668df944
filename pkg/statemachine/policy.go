package statemachine

import "context"

// Abort ends the run as soon as an undeclared transition is attempted.
func Abort(context.Context, State, State) State {
	return Exit
}

// Decline refuses to correct an undeclared transition, so the run fails
// with ErrUndeclaredTransition.
func Decline(_ context.Context, _, to State) State {
	return to
}

// FollowDeclared redirects an undeclared transition to the only state the
// table declares after from. When from has zero or several successors the
// correction is declined.
func FollowDeclared[T any](t *Table[T]) BadChangeFunc {
	return func(_ context.Context, from, to State) State {
		next := t.Declared(from)
		if len(next) != 1 {
			return to
		}
		return next[0]
	}
}
