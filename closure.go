package automaton

import "github.com/bits-and-blooms/bitset"

// EpsilonClosure Returns every state reachable from state via zero or more
// epsilon transitions, in lexicographic order. The closure contains the
// state itself and is a fixed point: closing any of its members again adds
// nothing. An unknown label yields nil.
func (a *Automaton) EpsilonClosure(state string) []string {
	enum := a.enumerate()
	bits := a.closureBits(state, enum)
	if !bits.Any() {
		return nil
	}
	labels := make([]string, 0, bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		labels = append(labels, enum.labels[int(i)])
	}
	return labels
}

// closures precomputes the epsilon closure of every enumerated state as a
// bitset over the enumeration. Determinization and word-running consume
// these instead of re-walking epsilon edges per step.
func (a *Automaton) closures(enum *enumeration) []*bitset.BitSet {
	all := make([]*bitset.BitSet, enum.size())
	for i, label := range enum.labels {
		all[i] = a.closureBits(label, enum)
	}
	return all
}

// closureBits runs the closure worklist over enumerated indices: pop a
// state, add each of its direct epsilon destinations that is not yet
// closed, repeat until the worklist drains. Each state enters the worklist
// at most once, so the traversal terminates on any automaton, cycles
// included.
func (a *Automaton) closureBits(state string, enum *enumeration) *bitset.BitSet {
	closure := bitset.New(uint(enum.size()))
	seed, ok := enum.index[state]
	if !ok {
		return closure
	}
	closure.Set(uint(seed))
	worklist := []int{seed}
	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for dest := range a.transitions[enum.labels[current]][Epsilon] {
			j, ok := enum.index[dest]
			if !ok {
				continue
			}
			if !closure.Test(uint(j)) {
				closure.Set(uint(j))
				worklist = append(worklist, j)
			}
		}
	}
	return closure
}
