package statemachine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/tablefsm/pkg/logger"
)

// Machine interprets a transition table. A single Machine runs one table at
// a time; a finished machine can be run again.
type Machine[T any] struct {
	table  *Table[T]
	opts   *options
	status atomic.Int32
}

// New creates a machine for the given table.
func New[T any](table *Table[T], opts ...Option) (*Machine[T], error) {
	if table == nil {
		return nil, ErrNilTable
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Machine[T]{table: table, opts: o}, nil
}

// MustNew works like New but panics on a nil table.
func MustNew[T any](table *Table[T], opts ...Option) *Machine[T] {
	m, err := New(table, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

func (m *Machine[T]) Name() string {
	return m.opts.name
}

func (m *Machine[T]) Status() Status {
	return Status(m.status.Load())
}

// StateName returns the configured name of s, or its numeric form.
func (m *Machine[T]) StateName(s State) string {
	if name, ok := m.opts.names[s]; ok {
		return name
	}
	return s.String()
}

// Run drives the table from Init until Exit is reached, a handler fails,
// an undeclared transition cannot be corrected, or ctx is done.
// The returned Result holds the last (from, to) pair reached.
func (m *Machine[T]) Run(ctx context.Context, data *T) (Result, error) {
	if !m.status.CompareAndSwap(int32(StatusIdle), int32(StatusRunning)) &&
		!m.status.CompareAndSwap(int32(StatusFinished), int32(StatusRunning)) {
		return Result{}, ErrAlreadyRunning
	}
	defer m.status.Store(int32(StatusFinished))

	ctx, runID := ensureRunID(ctx)
	res := Result{RunID: runID, From: Init, To: m.table.Initial()}

	m.debug(ctx, "run started", logger.ToState(m.StateName(res.To)))

	for {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("run interrupted at %s->%s: %w", res.From, res.To, err)
		}

		handler, ok := m.table.Lookup(res.From, res.To)
		if !ok {
			to, err := m.correct(ctx, res.From, res.To)
			if err != nil {
				m.opts.logger.LogAttrs(ctx, slog.LevelWarn, "undeclared transition",
					logger.Machine(m.opts.name),
					logger.FromState(m.StateName(res.From)),
					logger.ToState(m.StateName(res.To)),
					logger.Error(err),
				)
				return res, err
			}
			res.To = to
			handler, _ = m.table.Lookup(res.From, res.To)
		}

		if res.To == Exit {
			m.debug(ctx, "run finished",
				logger.FromState(m.StateName(res.From)),
				logger.Steps(res.Steps),
			)
			return res, nil
		}

		if m.opts.willChange != nil {
			m.opts.willChange(ctx, res.From, res.To)
		}

		next, err := handler(ctx, data)
		if err != nil {
			return res, NewErrHandlerFailed(res.From, res.To, err)
		}

		if m.opts.didChange != nil {
			m.opts.didChange(ctx, res.From, res.To, next)
		}

		m.debug(ctx, "transition",
			logger.FromState(m.StateName(res.From)),
			logger.ToState(m.StateName(res.To)),
			logger.NextState(m.StateName(next)),
		)

		res.From, res.To = res.To, next
		res.Steps++
	}
}

// correct asks the bad-change hook for a replacement target, calling it at
// most once. The returned state is either Exit or declared after from.
func (m *Machine[T]) correct(ctx context.Context, from, to State) (State, error) {
	if m.opts.badChange == nil {
		return to, NewErrUndeclaredTransition(from, to)
	}

	corrected := m.opts.badChange(ctx, from, to)
	if corrected == Exit {
		return Exit, nil
	}
	if corrected == to {
		return to, NewErrUndeclaredTransition(from, to)
	}
	if _, ok := m.table.Lookup(from, corrected); !ok {
		return corrected, NewErrUndeclaredTransition(from, corrected)
	}

	m.debug(ctx, "transition corrected",
		logger.FromState(m.StateName(from)),
		slog.String("attempted", m.StateName(to)),
		logger.ToState(m.StateName(corrected)),
	)
	return corrected, nil
}

func (m *Machine[T]) debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	m.opts.logger.LogAttrs(ctx, slog.LevelDebug, msg, append([]slog.Attr{logger.Machine(m.opts.name)}, attrs...)...)
}
