package enfa

import (
	"errors"
)

type matchOptions struct {
	full      bool
	stepLimit int
}

type MatchOption func(*matchOptions)

// WithFullMatch requires the whole input to be consumed. Without it a match
// is reported as soon as an accept state is reachable, so any input with an
// accepted prefix matches.
func WithFullMatch() MatchOption {
	return func(o *matchOptions) {
		o.full = true
	}
}

// WithStepLimit bounds the number of search nodes visited by one Match call.
// Zero means no limit.
func WithStepLimit(n int) MatchOption {
	return func(o *matchOptions) {
		o.stepLimit = n
	}
}

// Match reports whether a accepts input. It runs a depth-first backtracking
// search over the automaton; the worst case is exponential in the size of
// the automaton. Match never modifies a.
func Match(a *Automaton, input string, options ...MatchOption) (bool, error) {
	if a == nil {
		return false, ErrNilAutomaton
	}
	opts := matchOptions{}
	for _, fn := range options {
		fn(&opts)
	}
	if opts.stepLimit < 0 {
		return false, errors.New("negative step limit")
	}

	m := &matcher{
		a:     a,
		input: []rune(input),
		opts:  opts,
	}
	return m.search(a.Start())
}

// EpsilonClosure returns the states reachable from state using only epsilon
// transitions, including state itself, in ascending order.
func EpsilonClosure(a *Automaton, state int) ([]int, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	closure := newStateSet(a.NumStates())
	if err := a.epsilonClosure(state, closure); err != nil {
		return nil, err
	}
	return closure.Sorted(), nil
}

// epsilonClosure adds to set every state reachable from state over epsilon
// transitions. The set doubles as the visited set, so cycles terminate.
func (a *Automaton) epsilonClosure(state int, set *stateSet) error {
	if !a.hasState(state) {
		return &MatchError{State: state, Err: ErrInvalidState}
	}
	set.Add(state)
	stack := []int{state}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.edges(s, Epsilon) {
			if !a.hasState(t.Dest) {
				return &MatchError{State: t.Dest, Err: ErrInvalidState}
			}
			if set.Add(t.Dest) {
				stack = append(stack, t.Dest)
			}
		}
	}
	return nil
}

// matcher holds the transient state of one Match call.
type matcher struct {
	a     *Automaton
	input []rune
	pos   int
	opts  matchOptions
	steps int
}

func (m *matcher) search(state int) (bool, error) {
	if m.opts.stepLimit > 0 {
		m.steps++
		if m.steps > m.opts.stepLimit {
			return false, ErrStepLimit
		}
	}

	closure := newStateSet(m.a.NumStates())
	if err := m.a.epsilonClosure(state, closure); err != nil {
		return false, err
	}

	if m.pos == len(m.input) {
		return m.anyAccept(closure), nil
	}
	if !m.opts.full && m.anyAccept(closure) {
		return true, nil
	}

	candidates, err := m.step(closure, m.input[m.pos])
	if err != nil {
		return false, err
	}
	for _, next := range candidates {
		if !m.opts.full && m.a.IsAccept(next) {
			return true, nil
		}
		pos := m.pos
		m.pos++
		ok, err := m.search(next)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		m.pos = pos
	}
	return false, nil
}

// step returns the states reachable from closure by consuming r. Transitions
// labeled r come first, then AnyChar transitions.
func (m *matcher) step(closure *stateSet, r rune) ([]int, error) {
	next := newStateSet(m.a.NumStates())
	for _, label := range [2]Label{Label(r), AnyChar} {
		for _, s := range closure.GetArray() {
			for _, t := range m.a.edges(s, label) {
				if !m.a.hasState(t.Dest) {
					return nil, &MatchError{State: t.Dest, Err: ErrInvalidState}
				}
				next.Add(t.Dest)
			}
		}
	}
	return next.GetArray(), nil
}

func (m *matcher) anyAccept(closure *stateSet) bool {
	for _, s := range closure.GetArray() {
		if m.a.IsAccept(s) {
			return true
		}
	}
	return false
}
