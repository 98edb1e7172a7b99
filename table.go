package automaton

import (
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Table Renders the automaton as a bordered grid with one row per state and
// one column per alphabet symbol, both in lexicographic order (Epsilon gets
// a column when it is in the alphabet). State labels carry the marker
// "--> " for start states, "<-- " for accept states and "<--> " for both.
// Cells hold the space-joined sorted destinations of the (state, symbol)
// pair, or "-" when the pair has no transition.
func Table(a *Automaton) string {
	symbols := a.Alphabet()

	var buf strings.Builder
	w := tablewriter.NewWriter(&buf)
	w.SetAutoFormatHeaders(false)
	w.SetAutoWrapText(false)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	w.SetHeader(append([]string{"State"}, symbols...))

	for _, state := range a.States() {
		row := make([]string, 0, len(symbols)+1)
		row = append(row, decorate(a, state))
		for _, symbol := range symbols {
			dests := a.Destinations(state, symbol)
			if dests == nil {
				row = append(row, "-")
			} else {
				row = append(row, strings.Join(dests, " "))
			}
		}
		w.Append(row)
	}

	w.Render()
	return buf.String()
}

// decorate prefixes the state label with its start/accept marker.
func decorate(a *Automaton, state string) string {
	switch {
	case a.IsStart(state) && a.IsAccept(state):
		return "<--> " + state
	case a.IsAccept(state):
		return "<-- " + state
	case a.IsStart(state):
		return "--> " + state
	default:
		return state
	}
}
