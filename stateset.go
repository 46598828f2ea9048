package enfa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// stateSet is a set of state ids that remembers insertion order.
type stateSet struct {
	seen   *bitset.BitSet
	values []int
}

func newStateSet(numStates int) *stateSet {
	return &stateSet{
		seen:   bitset.New(uint(numStates)),
		values: make([]int, 0, 4),
	}
}

// Add inserts state and reports whether it was not already present.
func (s *stateSet) Add(state int) bool {
	if s.seen.Test(uint(state)) {
		return false
	}
	s.seen.Set(uint(state))
	s.values = append(s.values, state)
	return true
}

func (s *stateSet) Contains(state int) bool {
	return state >= 0 && s.seen.Test(uint(state))
}

func (s *stateSet) Size() int {
	return len(s.values)
}

// GetArray returns the states in insertion order.
func (s *stateSet) GetArray() []int {
	return s.values
}

// Sorted returns a sorted copy of the states.
func (s *stateSet) Sorted() []int {
	out := slices.Clone(s.values)
	slices.Sort(out)
	return out
}
