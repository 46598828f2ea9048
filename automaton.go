package enfa

import (
	"fmt"
	"iter"
	"sort"
	"strconv"
	"unicode"

	"github.com/bits-and-blooms/bitset"
)

// Label is the key of a transition. Non-negative labels are Unicode code
// points; Epsilon and AnyChar are reserved.
type Label int32

const (
	// Epsilon labels a transition that consumes no input.
	Epsilon Label = -1

	// AnyChar labels a transition that consumes any single code point. It is
	// tried after the transitions labeled with the code point itself.
	AnyChar Label = -2
)

func (l Label) String() string {
	switch l {
	case Epsilon:
		return "ε"
	case AnyChar:
		return "Σ"
	}
	return strconv.QuoteRune(rune(l))
}

func (l Label) valid() bool {
	return l == Epsilon || l == AnyChar || (l >= 0 && l <= unicode.MaxRune)
}

// Transition is one edge of the automaton.
type Transition struct {
	Source int
	Label  Label
	Dest   int
}

// Automaton is an ε-NFA. States are dense integers and state 0 is always
// the start state. Build one with Builder or Compile; once built it is
// immutable and safe for concurrent use.
type Automaton struct {
	// For each state, the index of its first transition followed by the
	// number of transitions leaving it.
	states []int

	isAccept *bitset.BitSet

	// Sorted by source, then label, then dest, without duplicates.
	transitions []Transition
}

// Start returns the id of the start state.
func (a *Automaton) Start() int {
	return 0
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.states) / 2
}

// NumTransitions How many transitions this automaton has.
func (a *Automaton) NumTransitions() int {
	return len(a.transitions)
}

// NumTransitionsWithState How many transitions leave this state.
func (a *Automaton) NumTransitionsWithState(state int) int {
	if !a.hasState(state) {
		return 0
	}
	return a.states[2*state+1]
}

func (a *Automaton) hasState(state int) bool {
	return state >= 0 && state < a.NumStates()
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return state >= 0 && a.isAccept.Test(uint(state))
}

// AcceptStates returns the accept states in ascending order.
func (a *Automaton) AcceptStates() []int {
	out := make([]int, 0, a.isAccept.Count())
	for i, ok := a.isAccept.NextSet(0); ok; i, ok = a.isAccept.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Transitions iterates over every transition ordered by source, label and dest.
func (a *Automaton) Transitions() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		for _, t := range a.transitions {
			if !yield(t) {
				return
			}
		}
	}
}

// Targets returns the destinations reachable from state over label, in
// ascending order.
func (a *Automaton) Targets(state int, label Label) []int {
	edges := a.edges(state, label)
	out := make([]int, len(edges))
	for i, t := range edges {
		out[i] = t.Dest
	}
	return out
}

// edges returns the transitions leaving state with the given label. Since
// transitions are sorted, binary search the first one with that label.
func (a *Automaton) edges(state int, label Label) []Transition {
	if !a.hasState(state) {
		return nil
	}
	offset := a.states[2*state]
	count := a.states[2*state+1]
	ts := a.transitions[offset : offset+count]

	low := sort.Search(count, func(i int) bool {
		return ts[i].Label >= label
	})
	high := low
	for high < count && ts[high].Label == label {
		high++
	}
	return ts[low:high]
}

// Validate checks that every transition points to an existing state.
func (a *Automaton) Validate() error {
	if a.NumStates() == 0 {
		return ErrNoStates
	}
	for _, t := range a.transitions {
		if !a.hasState(t.Dest) {
			return fmt.Errorf("transition %d -%s-> %d: %w", t.Source, t.Label, t.Dest, ErrInvalidState)
		}
	}
	return nil
}

// Builder accumulates states and transitions for an Automaton. Transitions
// may be added in any order and may point to states created later; Finish
// sorts them and freezes the result.
type Builder struct {
	numStates   int
	isAccept    *bitset.BitSet
	transitions []Transition
}

func NewBuilder() *Builder {
	return NewBuilderWithCapacity(2, 2)
}

func NewBuilderWithCapacity(numStates, numTransitions int) *Builder {
	return &Builder{
		isAccept:    bitset.New(uint(numStates)),
		transitions: make([]Transition, 0, numTransitions),
	}
}

// CreateState Create a new state and return its id. Ids start at 0 and
// increase by one per call.
func (b *Builder) CreateState() int {
	state := b.numStates
	b.numStates++
	return state
}

// NumStates How many states were created so far.
func (b *Builder) NumStates() int {
	return b.numStates
}

// SetAccept Set or clear this state as an accept state.
// Unknown states are ignored.
func (b *Builder) SetAccept(state int, accept bool) {
	if state < 0 || state >= b.numStates {
		return
	}
	b.isAccept.SetTo(uint(state), accept)
}

// IsAccept Returns true if this state is currently marked as an accept state.
func (b *Builder) IsAccept(state int) bool {
	if state < 0 {
		return false
	}
	return b.isAccept.Test(uint(state))
}

// AddTransition Add a new transition with the specified source, dest and label.
func (b *Builder) AddTransition(source, dest int, label Label) error {
	if source < 0 || source >= b.numStates {
		return fmt.Errorf("source state %d: %w", source, ErrInvalidState)
	}
	if dest < 0 {
		return fmt.Errorf("dest state %d: %w", dest, ErrInvalidState)
	}
	if !label.valid() {
		return fmt.Errorf("label %d: %w", int32(label), ErrInvalidLabel)
	}
	b.transitions = append(b.transitions, Transition{Source: source, Label: label, Dest: dest})
	return nil
}

// AddEpsilon Add an epsilon transition between source and dest.
func (b *Builder) AddEpsilon(source, dest int) error {
	return b.AddTransition(source, dest, Epsilon)
}

// Finish returns the built automaton. The builder may keep being used; later
// changes do not affect automata already returned.
func (b *Builder) Finish() (*Automaton, error) {
	if b.numStates == 0 {
		return nil, ErrNoStates
	}

	transitions := make([]Transition, len(b.transitions))
	copy(transitions, b.transitions)
	sort.Sort(transitionSorter(transitions))

	// Reduce duplicates; the destinations of one label form a set.
	upto := 0
	for i, t := range transitions {
		if i > 0 && t == transitions[upto-1] {
			continue
		}
		transitions[upto] = t
		upto++
	}
	transitions = transitions[:upto]

	states := make([]int, 2*b.numStates)
	for i := len(transitions) - 1; i >= 0; i-- {
		s := transitions[i].Source
		states[2*s] = i
		states[2*s+1]++
	}

	isAccept := bitset.New(uint(b.numStates))
	for i, ok := b.isAccept.NextSet(0); ok && i < uint(b.numStates); i, ok = b.isAccept.NextSet(i + 1) {
		isAccept.Set(i)
	}

	return &Automaton{
		states:      states,
		isAccept:    isAccept,
		transitions: transitions,
	}, nil
}

// Sorts transitions by source, then label, then dest, all ascending.
type transitionSorter []Transition

func (r transitionSorter) Len() int {
	return len(r)
}

func (r transitionSorter) Less(i, j int) bool {
	if r[i].Source != r[j].Source {
		return r[i].Source < r[j].Source
	}
	if r[i].Label != r[j].Label {
		return r[i].Label < r[j].Label
	}
	return r[i].Dest < r[j].Dest
}

func (r transitionSorter) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}
