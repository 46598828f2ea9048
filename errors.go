package enfa

import (
	"errors"
	"fmt"

	"github.com/geange/enfa/syntax"
)

var (
	// ErrUnsupportedConstruct is matched by every UnsupportedConstructError.
	ErrUnsupportedConstruct = errors.New("unsupported construct")

	// ErrInvalidState reports a transition or start that names a state the automaton does not have.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidLabel reports a label that is neither a code point nor one of Epsilon/AnyChar.
	ErrInvalidLabel = errors.New("invalid transition label")

	// ErrNoStates is returned by Builder.Finish when no state was created.
	ErrNoStates = errors.New("automaton has no states")

	// ErrNilAutomaton is returned when matching against a nil automaton.
	ErrNilAutomaton = errors.New("nil automaton")

	// ErrStepLimit is returned when a search exceeds the limit set with WithStepLimit.
	ErrStepLimit = errors.New("step limit exceeded")
)

// UnsupportedConstructError is returned by Compile when the tree contains a
// node it has no lowering rule for. Compilation is all-or-nothing.
type UnsupportedConstructError struct {
	Node syntax.Node
}

func (e *UnsupportedConstructError) Error() string {
	if e.Node == nil {
		return "enfa: unsupported construct: nil node"
	}
	return fmt.Sprintf("enfa: unsupported construct: %T (kind %s)", e.Node, e.Node.Kind())
}

func (e *UnsupportedConstructError) Unwrap() error {
	return ErrUnsupportedConstruct
}

// MatchError reports an automaton that violates its own invariants, found
// while matching. Automata produced by Compile never cause one.
type MatchError struct {
	State int
	Err   error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("enfa: match failed at state %d: %v", e.State, e.Err)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}
