package chain

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrymomot/tablefsm/pkg/statemachine"
)

// Tracer returns observer options that print every transition of the
// machine called name to w. Undeclared transitions are reported and then
// declined, which fails the run.
func Tracer(w io.Writer, name string) []statemachine.Option {
	return []statemachine.Option{
		statemachine.WithWillChange(func(_ context.Context, from, to statemachine.State) {
			fmt.Fprintf(w, "%s will change from %s to %s\n", name, StateName(from), StateName(to))
		}),
		statemachine.WithDidChange(func(_ context.Context, from, to, _ statemachine.State) {
			fmt.Fprintf(w, "%s did change from %s to %s\n", name, StateName(from), StateName(to))
		}),
		statemachine.WithBadChange(func(ctx context.Context, from, to statemachine.State) statemachine.State {
			fmt.Fprintf(w, "%s can't change from %s to %s\n", name, StateName(from), StateName(to))
			return statemachine.Decline(ctx, from, to)
		}),
	}
}
