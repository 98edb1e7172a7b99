package main

import (
	"github.com/spf13/cobra"
)

// standardizeCmd represents the standardize command
var standardizeCmd = &cobra.Command{
	Use:   "standardize <file>",
	Short: "Rewrite the automaton to a single start state and print it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printAutomaton(mustLoad(args[0]).Standardize())
	},
}

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:   "complete <file>",
	Short: "Fill missing transitions through a sink state and print the result",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printAutomaton(mustLoad(args[0]).Complete())
	},
}

// determinizeCmd represents the determinize command
var determinizeCmd = &cobra.Command{
	Use:   "determinize <file>",
	Short: "Build the equivalent deterministic automaton and print it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printAutomaton(mustLoad(args[0]).Determinize())
	},
}

func init() {
	rootCmd.AddCommand(standardizeCmd, completeCmd, determinizeCmd)
}
