package automaton

// Accepts Reports whether the automaton accepts the given input word, one
// alphabet symbol per element. The simulation carries the set of states the
// automaton could currently be in, seeded with the epsilon closures of
// every start state and advanced per symbol through direct destinations
// expanded by epsilon closure, so nondeterminism and epsilon transitions
// need no prior Determinize. The empty word is accepted exactly when some
// start state reaches an accept state through epsilon transitions alone; a
// symbol with no outgoing transitions anywhere in the current set rejects.
func (a *Automaton) Accepts(input []string) bool {
	enum := a.enumerate()
	closures := a.closures(enum)

	current := newStateSet(enum.size())
	for state := range a.start {
		if i, ok := enum.index[state]; ok {
			current.union(closures[i])
		}
	}

	for _, symbol := range input {
		if current.empty() {
			return false
		}
		next := newStateSet(enum.size())
		for _, i := range current.members() {
			for dest := range a.transitions[enum.labels[i]][symbol] {
				if j, ok := enum.index[dest]; ok {
					next.union(closures[j])
				}
			}
		}
		current = next
	}

	for _, i := range current.members() {
		if a.IsAccept(enum.labels[i]) {
			return true
		}
	}
	return false
}
