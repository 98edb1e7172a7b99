// Package automaton models nondeterministic finite automata with optional
// epsilon transitions and multiple start states, and implements the classic
// transformations over them: classification, standardization, completion and
// subset-construction determinization.
package automaton

import (
	"maps"
	"slices"
	"strconv"
)

// Epsilon is the reserved symbol for the empty transition. Transitions
// labeled with it are traversable without consuming input, and it carries no
// completeness or determinism obligation even when listed in the alphabet.
const Epsilon = "ε"

// Automaton Represents a finite automaton over opaque state labels and input
// symbols. States, symbols, start states, accept states and transitions are
// added incrementally in any order; every add is idempotent under
// re-addition. The transition relation is kept as from → symbol → set of
// destinations, where a missing entry means "no transition defined for that
// pair" and a present destination set is never empty.
//
// Referential integrity holds by construction: designating a start or accept
// state, or recording a transition, registers every label and symbol it
// mentions. Transformations introduce only the states they construct
// themselves.
type Automaton struct {
	states      map[string]struct{}
	alphabet    map[string]struct{}
	start       map[string]struct{}
	accept      map[string]struct{}
	transitions map[string]map[string]map[string]struct{}
}

// NewAutomaton Returns an empty automaton: no states, no symbols, nothing
// accepted. The empty automaton is vacuously deterministic and complete but
// not standard.
func NewAutomaton() *Automaton {
	return &Automaton{
		states:      make(map[string]struct{}),
		alphabet:    make(map[string]struct{}),
		start:       make(map[string]struct{}),
		accept:      make(map[string]struct{}),
		transitions: make(map[string]map[string]map[string]struct{}),
	}
}

// AddState Add a state label to the automaton.
func (a *Automaton) AddState(label string) {
	a.states[label] = struct{}{}
}

// AddSymbol Add an input symbol to the alphabet.
func (a *Automaton) AddSymbol(symbol string) {
	a.alphabet[symbol] = struct{}{}
}

// AddStartState Designate a state label as initial, registering it as a
// state when new. More than one start state makes the automaton
// non-standard.
func (a *Automaton) AddStartState(label string) {
	a.states[label] = struct{}{}
	a.start[label] = struct{}{}
}

// AddAcceptState Designate a state label as accepting, registering it as a
// state when new.
func (a *Automaton) AddAcceptState(label string) {
	a.states[label] = struct{}{}
	a.accept[label] = struct{}{}
}

// AddTransition Record a transition from → to under symbol, registering both
// endpoints as states and the symbol in the alphabet. Multiple destinations
// for the same (from, symbol) pair are the signature of nondeterminism;
// symbol may be Epsilon.
func (a *Automaton) AddTransition(from, symbol, to string) {
	a.states[from] = struct{}{}
	a.states[to] = struct{}{}
	a.alphabet[symbol] = struct{}{}
	bySymbol, ok := a.transitions[from]
	if !ok {
		bySymbol = make(map[string]map[string]struct{})
		a.transitions[from] = bySymbol
	}
	dests, ok := bySymbol[symbol]
	if !ok {
		dests = make(map[string]struct{})
		bySymbol[symbol] = dests
	}
	dests[to] = struct{}{}
}

// States Returns all state labels in lexicographic order.
func (a *Automaton) States() []string {
	return slices.Sorted(maps.Keys(a.states))
}

// Alphabet Returns all alphabet symbols in lexicographic order, Epsilon
// included when it was added as a symbol.
func (a *Automaton) Alphabet() []string {
	return slices.Sorted(maps.Keys(a.alphabet))
}

// StartStates Returns the start-state labels in lexicographic order.
func (a *Automaton) StartStates() []string {
	return slices.Sorted(maps.Keys(a.start))
}

// AcceptStates Returns the accept-state labels in lexicographic order.
func (a *Automaton) AcceptStates() []string {
	return slices.Sorted(maps.Keys(a.accept))
}

// Destinations Returns the destination labels of the (from, symbol) pair in
// lexicographic order, or nil when no transition is defined for it. A
// non-nil result is never empty.
func (a *Automaton) Destinations(from, symbol string) []string {
	dests, ok := a.transitions[from][symbol]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(dests))
}

// HasState Reports whether label is a known state.
func (a *Automaton) HasState(label string) bool {
	_, ok := a.states[label]
	return ok
}

// IsStart Reports whether label is a start state.
func (a *Automaton) IsStart(label string) bool {
	_, ok := a.start[label]
	return ok
}

// IsAccept Reports whether label is an accept state.
func (a *Automaton) IsAccept(label string) bool {
	_, ok := a.accept[label]
	return ok
}

// NumStates How many states this automaton has.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// Clone Returns a deep copy sharing no containers with the receiver, so
// mutating one automaton can never alias into another.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		states:      maps.Clone(a.states),
		alphabet:    maps.Clone(a.alphabet),
		start:       maps.Clone(a.start),
		accept:      maps.Clone(a.accept),
		transitions: make(map[string]map[string]map[string]struct{}, len(a.transitions)),
	}
	for from, bySymbol := range a.transitions {
		c.transitions[from] = make(map[string]map[string]struct{}, len(bySymbol))
		for symbol, dests := range bySymbol {
			c.transitions[from][symbol] = maps.Clone(dests)
		}
	}
	return c
}

// inputSymbols returns the alphabet without Epsilon, sorted. Completion and
// determinization obligations range over exactly these symbols.
func (a *Automaton) inputSymbols() []string {
	symbols := make([]string, 0, len(a.alphabet))
	for symbol := range a.alphabet {
		if symbol != Epsilon {
			symbols = append(symbols, symbol)
		}
	}
	slices.Sort(symbols)
	return symbols
}

// freshLabel returns base if no state carries it yet, otherwise base with
// the smallest positive numeric suffix that avoids a collision.
func (a *Automaton) freshLabel(base string) string {
	if _, ok := a.states[base]; !ok {
		return base
	}
	for i := 1; ; i++ {
		label := base + strconv.Itoa(i)
		if _, ok := a.states[label]; !ok {
			return label
		}
	}
}
