package main

import (
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the automaton's transition table and classification",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		printAutomaton(mustLoad(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	// Running the bare tool on a file behaves like show.
	rootCmd.Args = cobra.MaximumNArgs(1)
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		showCmd.Run(cmd, args)
	}
}
