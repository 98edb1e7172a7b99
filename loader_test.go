package automaton

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDescription = `States: q0 q1
Alphabet: a b
Start: q0
Accept: q1
Transitions:
q0 a q1
q0 b q0
`

func TestParse(t *testing.T) {
	a, err := Parse(strings.NewReader(sampleDescription))
	require.NoError(t, err)

	assert.Equal(t, []string{"q0", "q1"}, a.States())
	assert.Equal(t, []string{"a", "b"}, a.Alphabet())
	assert.Equal(t, []string{"q0"}, a.StartStates())
	assert.Equal(t, []string{"q1"}, a.AcceptStates())
	assert.Equal(t, []string{"q1"}, a.Destinations("q0", "a"))
	assert.Equal(t, []string{"q0"}, a.Destinations("q0", "b"))
	assert.Equal(t, "deterministic standard", a.Classify())
}

func TestParseSectionsAnyOrder(t *testing.T) {
	input := `Transitions:
q0 a q1

Accept: q1
States: q0 q1
Alphabet: a
Start: q0
`
	a, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"q0", "q1"}, a.States())
	assert.Equal(t, []string{"q0"}, a.StartStates())
	assert.Equal(t, []string{"q1"}, a.AcceptStates())
	assert.Equal(t, []string{"q1"}, a.Destinations("q0", "a"))
}

func TestParseRepeatedSections(t *testing.T) {
	input := `States: q0
States: q1 q0
Transitions:
q0 a q1

Transitions:
q1 a q0
`
	a, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"q0", "q1"}, a.States())
	assert.Equal(t, []string{"q1"}, a.Destinations("q0", "a"))
	assert.Equal(t, []string{"q0"}, a.Destinations("q1", "a"))
}

func TestParseBlankLineEndsTransitions(t *testing.T) {
	input := `Transitions:
q0 a q1

this line is ignored, not a transition
Accept: q1
`
	a, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"q1"}, a.Destinations("q0", "a"))
	assert.Equal(t, []string{"q1"}, a.AcceptStates())
}

func TestParseMalformedTransition(t *testing.T) {
	input := `States: q0 q1
Transitions:
q0 a q1
q0 a
`
	a, err := Parse(strings.NewReader(input))

	assert.ErrorIs(t, err, ErrTransitionSyntax)
	assert.ErrorContains(t, err, "line 4")
	assert.ErrorContains(t, err, "q0 a")

	// The automaton built so far is still returned.
	assert.NotNil(t, a)
	assert.Equal(t, []string{"q1"}, a.Destinations("q0", "a"))
}

func TestParseEpsilon(t *testing.T) {
	input := `Alphabet: a ε
Start: q0
Accept: q2
Transitions:
q0 ε q1
q1 a q2
`
	a, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Contains(t, a.Alphabet(), Epsilon)
	assert.Equal(t, []string{"q0", "q1"}, a.EpsilonClosure("q0"))
	assert.True(t, a.Accepts([]string{"a"}))
}

func TestParseEmptyInput(t *testing.T) {
	a, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, a.States())
}

func TestParseIgnoresUnknownLines(t *testing.T) {
	input := `# a comment of sorts
States: q0
whatever
Start: q0
`
	a, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"q0"}, a.States())
	assert.Equal(t, []string{"q0"}, a.StartStates())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleDescription), 0o644))

	a, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"q0", "q1"}, a.States())
	assert.Equal(t, "deterministic standard", a.Classify())
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	a, err := Load(path)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, path)
	require.NotNil(t, a)
	assert.Empty(t, a.States())
}
