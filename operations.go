package automaton

import (
	"maps"

	"github.com/bits-and-blooms/bitset"
)

// IsEmpty Reports whether the automaton accepts no input at all: no accept
// state is reachable from the start set, epsilon transitions included. The
// empty automaton is trivially empty.
func (a *Automaton) IsEmpty() bool {
	enum := a.enumerate()
	reachable := a.reachable(enum)
	for i, ok := reachable.NextSet(0); ok; i, ok = reachable.NextSet(i + 1) {
		if a.IsAccept(enum.labels[int(i)]) {
			return false
		}
	}
	return true
}

// RemoveUnreachable Returns a fresh automaton holding only the states
// reachable from the start set, with the transition relation filtered to
// the surviving states and the alphabet kept as is. The accepted language
// is unchanged. States are never merged: this is a trim, not a
// minimization.
func (a *Automaton) RemoveUnreachable() *Automaton {
	enum := a.enumerate()
	reachable := a.reachable(enum)

	out := NewAutomaton()
	out.alphabet = maps.Clone(a.alphabet)
	for i, ok := reachable.NextSet(0); ok; i, ok = reachable.NextSet(i + 1) {
		label := enum.labels[int(i)]
		out.AddState(label)
		if a.IsStart(label) {
			out.AddStartState(label)
		}
		if a.IsAccept(label) {
			out.AddAcceptState(label)
		}
	}
	for _, from := range out.States() {
		for symbol, dests := range a.transitions[from] {
			for dest := range dests {
				if out.HasState(dest) {
					out.AddTransition(from, symbol, dest)
				}
			}
		}
	}
	return out
}

// reachable runs a breadth-first worklist from the start set over every
// transition, epsilon included, marking each state at most once.
func (a *Automaton) reachable(enum *enumeration) *bitset.BitSet {
	seen := bitset.New(uint(enum.size()))
	worklist := make([]int, 0, len(a.start))
	for state := range a.start {
		if i, ok := enum.index[state]; ok && !seen.Test(uint(i)) {
			seen.Set(uint(i))
			worklist = append(worklist, i)
		}
	}
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		for _, dests := range a.transitions[enum.labels[current]] {
			for dest := range dests {
				if j, ok := enum.index[dest]; ok && !seen.Test(uint(j)) {
					seen.Set(uint(j))
					worklist = append(worklist, j)
				}
			}
		}
	}
	return seen
}
