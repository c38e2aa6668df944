package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Machine records the state machine name under the key "machine".
func Machine(name string) slog.Attr {
	return slog.String("machine", name)
}

// RunID records the run identifier under the key "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

func State(name string) slog.Attr {
	return slog.String("state", name)
}

func FromState(name string) slog.Attr {
	return slog.String("from", name)
}

func ToState(name string) slog.Attr {
	return slog.String("to", name)
}

// NextState records the state a handler returned under the key "next".
func NextState(name string) slog.Attr {
	return slog.String("next", name)
}

// Steps records the number of handlers executed under the key "steps".
func Steps(n int) slog.Attr {
	return slog.Int("steps", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
