package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/automata-lab/automaton"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automaton",
	Short: "Inspect and transform finite automata",
	Long: `automaton loads a textual finite-automaton description and prints it as a
state × symbol table, classifies it, and applies the classic transformations:
standardize (single start state), complete (total transition function) and
determinize (subset construction).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// mustLoad reads the description at path. A missing file is reported and
// replaced by the empty automaton; any other load failure is fatal.
func mustLoad(path string) *automaton.Automaton {
	a, err := automaton.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("automaton file not found, continuing with empty automaton", "path", path)
			return a
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return a
}

// printAutomaton dumps the transition table followed by the classification.
func printAutomaton(a *automaton.Automaton) {
	fmt.Print(automaton.Table(a))
	fmt.Println(a.Classify())
}
