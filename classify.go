package automaton

import "strings"

// IsDeterministic Reports whether no (state, symbol) pair maps to more than
// one destination and no state has an outgoing epsilon transition. A state
// with no recorded transitions at all does not violate determinism; absence
// is a completeness defect, not a determinism one.
func (a *Automaton) IsDeterministic() bool {
	for _, bySymbol := range a.transitions {
		for symbol, dests := range bySymbol {
			if symbol == Epsilon {
				return false
			}
			if len(dests) > 1 {
				return false
			}
		}
	}
	return true
}

// IsComplete Reports whether every state has a transition entry for every
// non-epsilon alphabet symbol. A state with no entry at all is incomplete
// even when the alphabet is empty; epsilon itself carries no obligation.
func (a *Automaton) IsComplete() bool {
	for state := range a.states {
		bySymbol, ok := a.transitions[state]
		if !ok {
			return false
		}
		for symbol := range a.alphabet {
			if symbol == Epsilon {
				continue
			}
			if _, ok := bySymbol[symbol]; !ok {
				return false
			}
		}
	}
	return true
}

// IsStandard Reports whether exactly one start state exists.
func (a *Automaton) IsStandard() bool {
	return len(a.start) == 1
}

// Classify Returns the space-joined labels "deterministic", "complete" and
// "standard" for the predicates that hold, always in that order, or
// "not recognized" when none of them hold.
func (a *Automaton) Classify() string {
	labels := make([]string, 0, 3)
	if a.IsDeterministic() {
		labels = append(labels, "deterministic")
	}
	if a.IsComplete() {
		labels = append(labels, "complete")
	}
	if a.IsStandard() {
		labels = append(labels, "standard")
	}
	if len(labels) == 0 {
		return "not recognized"
	}
	return strings.Join(labels, " ")
}
