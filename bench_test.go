package automaton

import (
	"strconv"
	"testing"
)

// kthFromEnd builds the classic n-state machine for "the k-th symbol from
// the end is a". Its smallest deterministic equivalent has 2^k states, so it
// exercises the subset construction end to end.
func kthFromEnd(k int) *Automaton {
	a := NewAutomaton()
	a.AddStartState("n0")
	a.AddTransition("n0", "a", "n0")
	a.AddTransition("n0", "b", "n0")
	a.AddTransition("n0", "a", "n1")
	for i := 1; i < k; i++ {
		from := "n" + strconv.Itoa(i)
		to := "n" + strconv.Itoa(i+1)
		a.AddTransition(from, "a", to)
		a.AddTransition(from, "b", to)
	}
	a.AddAcceptState("n" + strconv.Itoa(k))
	return a
}

func BenchmarkDeterminize(b *testing.B) {
	a := kthFromEnd(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Determinize()
	}
}

func BenchmarkEpsilonClosure(b *testing.B) {
	a := NewAutomaton()
	for i := 0; i < 256; i++ {
		from := "q" + strconv.Itoa(i)
		to := "q" + strconv.Itoa(i+1)
		a.AddTransition(from, Epsilon, to)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.EpsilonClosure("q0")
	}
}

func BenchmarkAccepts(b *testing.B) {
	a := kthFromEnd(8)
	word := make([]string, 64)
	for i := range word {
		if i%3 == 0 {
			word[i] = "a"
		} else {
			word[i] = "b"
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Accepts(word)
	}
}
