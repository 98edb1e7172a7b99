package automaton

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// enumeration fixes a stable mapping between state labels and dense indices,
// in lexicographic label order. All bitset machinery works over it, so
// iteration order, and with it synthesized state naming, is reproducible for
// a given automaton.
type enumeration struct {
	labels []string
	index  map[string]int
}

// enumerate builds the enumeration of the automaton's current state set.
func (a *Automaton) enumerate() *enumeration {
	labels := a.States()
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}
	return &enumeration{labels: labels, index: index}
}

func (e *enumeration) size() int {
	return len(e.labels)
}

// stateSet is a set of enumerated states, the working currency of subset
// construction: subsets of original states stand in for single states of
// the determinized automaton. A stateSet freezes into a canonical key so
// two subsets with equal membership are recognized as the same state.
type stateSet struct {
	bits *bitset.BitSet
}

func newStateSet(n int) *stateSet {
	return &stateSet{bits: bitset.New(uint(n))}
}

func (s *stateSet) union(other *bitset.BitSet) {
	s.bits.InPlaceUnion(other)
}

func (s *stateSet) empty() bool {
	return !s.bits.Any()
}

// members returns the enumerated indices of the set in ascending order.
func (s *stateSet) members() []int {
	members := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		members = append(members, int(i))
	}
	return members
}

// freeze returns the canonical key of the set: ascending indices joined by
// commas. Keys are equal exactly when membership is equal, independent of
// the order unions happened in.
func (s *stateSet) freeze() string {
	var b strings.Builder
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(i), 10))
	}
	return b.String()
}
