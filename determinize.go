package automaton

import "strconv"

// dfaStatePrefix names the subsets discovered during determinization: the
// seed subset becomes S0, then S1, S2, ... in first-discovery order.
const dfaStatePrefix = "S"

// Determinize Returns an equivalent automaton with at most one destination
// per (state, symbol) pair and no epsilon transitions. An automaton that is
// already deterministic is returned unchanged; determinization guarantees
// determinism, not standardness or completeness. Otherwise a fresh
// automaton is built by subset construction.
//
// The seed subset is the union of the epsilon closures of every start
// state, so no start state's language is dropped. Each reachable subset of
// original states becomes one new state, accepting when it contains an
// original accept state. Per input symbol, the subset's direct destinations
// are expanded by epsilon closure; an empty result adds no transition, so
// the output may be incomplete. Compose with Complete when totality is
// required.
//
// States and symbols are iterated in lexicographic order and subsets are
// named sequentially as they are discovered, so the synthesized naming is
// reproducible: the same input always yields the same output, S0 being the
// start subset.
func (a *Automaton) Determinize() *Automaton {
	if a.IsDeterministic() {
		return a
	}

	enum := a.enumerate()
	closures := a.closures(enum)
	symbols := a.inputSymbols()

	d := NewAutomaton()
	for _, symbol := range symbols {
		d.AddSymbol(symbol)
	}

	names := make(map[string]string)
	register := func(set *stateSet) (string, bool) {
		key := set.freeze()
		if name, ok := names[key]; ok {
			return name, false
		}
		name := dfaStatePrefix + strconv.Itoa(len(names))
		names[key] = name
		d.AddState(name)
		return name, true
	}

	seed := newStateSet(enum.size())
	for state := range a.start {
		if i, ok := enum.index[state]; ok {
			seed.union(closures[i])
		}
	}

	type workItem struct {
		set  *stateSet
		name string
	}

	startName, _ := register(seed)
	d.AddStartState(startName)

	queue := []workItem{{set: seed, name: startName}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		members := item.set.members()
		for _, i := range members {
			if a.IsAccept(enum.labels[i]) {
				d.AddAcceptState(item.name)
				break
			}
		}

		for _, symbol := range symbols {
			move := newStateSet(enum.size())
			for _, i := range members {
				for dest := range a.transitions[enum.labels[i]][symbol] {
					if j, ok := enum.index[dest]; ok {
						move.union(closures[j])
					}
				}
			}
			if move.empty() {
				continue
			}
			name, fresh := register(move)
			if fresh {
				queue = append(queue, workItem{set: move, name: name})
			}
			d.AddTransition(item.name, symbol, name)
		}
	}

	return d
}
