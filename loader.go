package automaton

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrTransitionSyntax reports a transition line that does not hold exactly
// the three tokens "from symbol to".
var ErrTransitionSyntax = errors.New("automaton: malformed transition line")

// Section markers of the textual description format.
const (
	markerStates      = "States:"
	markerAlphabet    = "Alphabet:"
	markerStart       = "Start:"
	markerAccept      = "Accept:"
	markerTransitions = "Transitions:"
)

// Load Reads the textual automaton description at path. When the file does
// not exist the returned error wraps fs.ErrNotExist and the returned
// automaton is empty but usable, so callers may report the condition and
// carry on with the empty model instead of aborting.
func Load(path string) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewAutomaton(), fmt.Errorf("automaton: load %s: %w", path, err)
	}
	defer f.Close()

	a, err := Parse(f)
	if err != nil {
		return a, fmt.Errorf("automaton: load %s: %w", path, err)
	}
	return a, nil
}

// Parse Builds an automaton from a line-oriented description. The markers
// "States:", "Alphabet:", "Start:" and "Accept:" are followed on the same
// line by whitespace-separated tokens; "Transitions:" is followed by one
// "from symbol to" triple per line until a blank line or the end of input.
// Sections may repeat and appear in any order, and re-added tokens are
// harmless. Labels are taken as written; states and symbols mentioned by the
// Start:, Accept: or Transitions: sections register themselves, so States:
// and Alphabet: only need to list what no other section mentions, such as
// isolated states. Unrecognized lines outside a transition block are
// ignored.
func Parse(r io.Reader) (*Automaton, error) {
	a := NewAutomaton()
	scanner := bufio.NewScanner(r)

	line := 0
	inTransitions := false
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		if inTransitions {
			if text == "" {
				inTransitions = false
				continue
			}
			fields := strings.Fields(text)
			if len(fields) != 3 {
				return a, fmt.Errorf("%w: line %d: %q", ErrTransitionSyntax, line, text)
			}
			a.AddTransition(fields[0], fields[1], fields[2])
			continue
		}

		switch {
		case strings.HasPrefix(text, markerStates):
			for _, token := range strings.Fields(strings.TrimPrefix(text, markerStates)) {
				a.AddState(token)
			}
		case strings.HasPrefix(text, markerAlphabet):
			for _, token := range strings.Fields(strings.TrimPrefix(text, markerAlphabet)) {
				a.AddSymbol(token)
			}
		case strings.HasPrefix(text, markerStart):
			for _, token := range strings.Fields(strings.TrimPrefix(text, markerStart)) {
				a.AddStartState(token)
			}
		case strings.HasPrefix(text, markerAccept):
			for _, token := range strings.Fields(strings.TrimPrefix(text, markerAccept)) {
				a.AddAcceptState(token)
			}
		case strings.HasPrefix(text, markerTransitions):
			inTransitions = true
		}
	}
	if err := scanner.Err(); err != nil {
		return a, fmt.Errorf("automaton: parse: %w", err)
	}
	return a, nil
}
