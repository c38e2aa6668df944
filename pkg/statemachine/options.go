package statemachine

import (
	"log/slog"
	"maps"
)

// Option configures a Machine during construction.
type Option func(*options)

type options struct {
	name       string
	willChange WillChangeFunc
	didChange  DidChangeFunc
	badChange  BadChangeFunc
	logger     *slog.Logger
	names      map[State]string
}

func defaultOptions() *options {
	return &options{
		name:   "fsm",
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithName sets the machine name used in logs.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithWillChange registers the observer called before each handler.
func WithWillChange(fn WillChangeFunc) Option {
	return func(o *options) {
		o.willChange = fn
	}
}

// WithDidChange registers the observer called after each handler.
func WithDidChange(fn DidChangeFunc) Option {
	return func(o *options) {
		o.didChange = fn
	}
}

// WithBadChange registers the recovery hook for undeclared transitions.
// Without it an undeclared transition fails the run.
func WithBadChange(fn BadChangeFunc) Option {
	return func(o *options) {
		o.badChange = fn
	}
}

// WithLogger sets the logger for step tracing. Nil loggers are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStateNames sets human-readable names used when logging states.
func WithStateNames(names map[State]string) Option {
	return func(o *options) {
		o.names = maps.Clone(names)
	}
}
