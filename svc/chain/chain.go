// Package chain wires three example states into a statemachine table:
// INIT -> A -> B -> C -> EXIT.
package chain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/tablefsm/pkg/logger"
	"github.com/dmitrymomot/tablefsm/pkg/statemachine"
)

const (
	A = statemachine.UserStart + iota
	B
	C
)

var names = map[statemachine.State]string{
	A: "A",
	B: "B",
	C: "C",
}

// StateName returns the label of s: A, B, C, INIT, EXIT or its number.
func StateName(s statemachine.State) string {
	if name, ok := names[s]; ok {
		return name
	}
	return s.String()
}

// Env is the value shared by every handler of a run.
type Env struct {
	// Delay is how long each state pauses before moving on.
	Delay time.Duration
	// Out receives the "<state> called" lines.
	Out io.Writer
	// Logger is optional.
	Logger *slog.Logger
	// Visited records the states entered, in order.
	Visited []statemachine.State
}

// NewTable returns the transition table of the example chain.
func NewTable() (*statemachine.Table[Env], error) {
	return statemachine.NewTable(
		statemachine.Transition[Env]{From: statemachine.Init, To: A, Handler: a},
		statemachine.Transition[Env]{From: A, To: B, Handler: b},
		statemachine.Transition[Env]{From: B, To: C, Handler: c},
		statemachine.Transition[Env]{From: C, To: statemachine.Exit},
	)
}

// NewMachine builds a machine over the chain table. State names are
// registered for logging before opts are applied.
func NewMachine(opts ...statemachine.Option) (*statemachine.Machine[Env], error) {
	table, err := NewTable()
	if err != nil {
		return nil, fmt.Errorf("build chain table: %w", err)
	}
	return statemachine.New(table, append([]statemachine.Option{statemachine.WithStateNames(names)}, opts...)...)
}

// Run executes the chain once with env as the shared value.
func Run(ctx context.Context, env *Env, opts ...statemachine.Option) (statemachine.Result, error) {
	m, err := NewMachine(opts...)
	if err != nil {
		return statemachine.Result{}, err
	}
	return m.Run(ctx, env)
}

func a(ctx context.Context, env *Env) (statemachine.State, error) {
	return B, visit(ctx, env, A, "a")
}

func b(ctx context.Context, env *Env) (statemachine.State, error) {
	return C, visit(ctx, env, B, "b")
}

func c(ctx context.Context, env *Env) (statemachine.State, error) {
	return statemachine.Exit, visit(ctx, env, C, "c")
}

func visit(ctx context.Context, env *Env, s statemachine.State, label string) error {
	env.Visited = append(env.Visited, s)

	if env.Out != nil {
		if _, err := fmt.Fprintf(env.Out, "%s called\n", label); err != nil {
			return fmt.Errorf("write %s: %w", label, err)
		}
	}

	if env.Logger != nil {
		env.Logger.LogAttrs(ctx, slog.LevelDebug, "state entered",
			logger.State(StateName(s)),
			logger.Duration(env.Delay),
		)
	}

	return pause(ctx, env.Delay)
}

// pause blocks for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
