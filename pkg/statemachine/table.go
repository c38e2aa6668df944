package statemachine

import "slices"

type edge struct {
	from State
	to   State
}

// Table is an immutable, validated set of transitions.
// Lookups are keyed by the (from, to) pair.
type Table[T any] struct {
	transitions []Transition[T]
	handlers    map[edge]Handler[T]
	successors  map[State][]State
	initial     State
}

// NewTable validates the transitions and builds a table from them.
// All configuration errors are reported here, before any handler can run.
func NewTable[T any](transitions ...Transition[T]) (*Table[T], error) {
	if len(transitions) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table[T]{
		transitions: slices.Clone(transitions),
		handlers:    make(map[edge]Handler[T], len(transitions)),
		successors:  make(map[State][]State),
	}

	initials := 0
	for i, tr := range t.transitions {
		if err := validateTransition(tr); err != nil {
			return nil, NewErrInvalidTableEntry(i, tr.From, tr.To, err)
		}

		e := edge{from: tr.From, to: tr.To}
		if _, ok := t.handlers[e]; ok {
			return nil, NewErrInvalidTableEntry(i, tr.From, tr.To, ErrDuplicateTransition)
		}
		t.handlers[e] = tr.Handler
		t.successors[tr.From] = append(t.successors[tr.From], tr.To)

		if tr.From == Init {
			initials++
			if initials > 1 {
				return nil, NewErrInvalidTableEntry(i, tr.From, tr.To, ErrAmbiguousInitial)
			}
			t.initial = tr.To
		}
	}

	if initials == 0 {
		return nil, ErrMissingInitial
	}

	return t, nil
}

// MustNewTable works like NewTable but panics on an invalid table.
func MustNewTable[T any](transitions ...Transition[T]) *Table[T] {
	t, err := NewTable(transitions...)
	if err != nil {
		panic("failed to build transition table: " + err.Error())
	}
	return t
}

func validateTransition[T any](tr Transition[T]) error {
	switch {
	case tr.From == Exit:
		return ErrTransitionFromExit
	case tr.To == Init:
		return ErrTransitionToInit
	case tr.To == Exit && tr.Handler != nil:
		return ErrExitHandler
	case tr.To != Exit && tr.Handler == nil:
		return ErrNilHandler
	}
	return nil
}

// Lookup returns the handler declared for (from, to).
// The handler of a declared exit transition is nil.
func (t *Table[T]) Lookup(from, to State) (Handler[T], bool) {
	h, ok := t.handlers[edge{from: from, to: to}]
	return h, ok
}

// Declared returns the states reachable from from, in declaration order.
func (t *Table[T]) Declared(from State) []State {
	return slices.Clone(t.successors[from])
}

// Initial returns the target of the transition declared from Init.
func (t *Table[T]) Initial() State {
	return t.initial
}

// Transitions returns a copy of the declared transitions.
func (t *Table[T]) Transitions() []Transition[T] {
	return slices.Clone(t.transitions)
}

func (t *Table[T]) Len() int {
	return len(t.transitions)
}
