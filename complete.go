package automaton

// sinkStateBase is the preferred label for the sink state Complete
// introduces; a numeric suffix is appended when the label is taken.
const sinkStateBase = "p"

// Complete Extends the automaton in place until every state has a
// transition for every non-epsilon alphabet symbol, and returns it. An
// already-complete automaton is returned unchanged; in particular the
// empty automaton is vacuously complete and gains no sink. Otherwise one
// fresh sink state absorbs every missing (state, symbol) pair and loops to
// itself on every symbol. The sink is never accepting, and epsilon carries
// no completion obligation.
func (a *Automaton) Complete() *Automaton {
	if a.IsComplete() {
		return a
	}

	states := a.States()
	symbols := a.inputSymbols()

	sink := a.freshLabel(sinkStateBase)
	a.AddState(sink)

	for _, state := range states {
		for _, symbol := range symbols {
			if _, ok := a.transitions[state][symbol]; !ok {
				a.AddTransition(state, symbol, sink)
			}
		}
	}
	for _, symbol := range symbols {
		a.AddTransition(sink, symbol, sink)
	}
	return a
}
