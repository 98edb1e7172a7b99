package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerate(t *testing.T) {
	a := NewAutomaton()
	a.AddState("q2")
	a.AddState("q0")
	a.AddState("q1")

	enum := a.enumerate()

	assert.Equal(t, []string{"q0", "q1", "q2"}, enum.labels)
	assert.Equal(t, 3, enum.size())
	for i, label := range enum.labels {
		assert.Equal(t, i, enum.index[label])
	}
}

func TestStateSetFreeze(t *testing.T) {
	t.Run("order independent", func(t *testing.T) {
		x := newStateSet(8)
		x.bits.Set(3)
		x.bits.Set(1)
		x.bits.Set(5)

		y := newStateSet(8)
		y.bits.Set(5)
		y.bits.Set(3)
		y.bits.Set(1)

		assert.Equal(t, x.freeze(), y.freeze())
	})

	t.Run("distinct sets differ", func(t *testing.T) {
		x := newStateSet(8)
		x.bits.Set(1)

		y := newStateSet(8)
		y.bits.Set(2)

		assert.NotEqual(t, x.freeze(), y.freeze())
	})

	t.Run("empty set", func(t *testing.T) {
		s := newStateSet(8)
		assert.Equal(t, "", s.freeze())
		assert.True(t, s.empty())
	})
}

func TestStateSetMembers(t *testing.T) {
	s := newStateSet(16)
	s.bits.Set(9)
	s.bits.Set(0)
	s.bits.Set(4)

	assert.Equal(t, []int{0, 4, 9}, s.members())
	assert.False(t, s.empty())
}

func TestStateSetUnion(t *testing.T) {
	a := NewAutomaton()
	a.AddTransition("q0", Epsilon, "q1")
	a.AddState("q2")
	enum := a.enumerate()
	closures := a.closures(enum)

	s := newStateSet(enum.size())
	s.union(closures[enum.index["q0"]])
	s.union(closures[enum.index["q2"]])

	assert.Equal(t, []int{enum.index["q0"], enum.index["q1"], enum.index["q2"]}, s.members())
}
