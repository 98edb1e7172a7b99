package automaton

// startStateBase is the preferred label for the start state Standardize
// introduces; a numeric suffix is appended when the label is taken.
const startStateBase = "q0_new"

// Standardize Rewrites the automaton in place so that it has exactly one
// start state, and returns it. An already-standard automaton is returned
// unchanged. Otherwise one fresh state is introduced that copies every
// outgoing transition of every original start state, the originals keep
// theirs, and the start set is replaced by that single state. With no start
// states at all, the fresh start state simply has no outgoing transitions.
//
// The fresh start state is marked accepting when any replaced start state
// was accepting, so acceptance of the empty word survives the rewrite.
func (a *Automaton) Standardize() *Automaton {
	if a.IsStandard() {
		return a
	}

	newStart := a.freshLabel(startStateBase)
	a.AddState(newStart)

	acceptingStart := false
	for state := range a.start {
		if a.IsAccept(state) {
			acceptingStart = true
		}
		for symbol, dests := range a.transitions[state] {
			for dest := range dests {
				a.AddTransition(newStart, symbol, dest)
			}
		}
	}
	if acceptingStart {
		a.AddAcceptState(newStart)
	}

	a.start = map[string]struct{}{newStart: {}}
	return a
}
