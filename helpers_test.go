package automaton

// relation snapshots the transition relation as from → symbol → sorted
// destinations, for equality assertions across transformations.
func relation(a *Automaton) map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(a.transitions))
	for from, bySymbol := range a.transitions {
		out[from] = make(map[string][]string, len(bySymbol))
		for symbol := range bySymbol {
			out[from][symbol] = a.Destinations(from, symbol)
		}
	}
	return out
}

// partialDFA builds the recurring two-state machine: states {q0,q1},
// alphabet {a,b}, start q0, accept q1, transitions q0-a->q1 and q0-b->q0.
// It is deterministic and standard but not complete (q1 has no entry).
func partialDFA() *Automaton {
	a := NewAutomaton()
	a.AddState("q0")
	a.AddState("q1")
	a.AddSymbol("a")
	a.AddSymbol("b")
	a.AddStartState("q0")
	a.AddAcceptState("q1")
	a.AddTransition("q0", "a", "q1")
	a.AddTransition("q0", "b", "q0")
	return a
}
