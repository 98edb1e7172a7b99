package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <file> [symbol]...",
	Short: "Run an input word through the automaton",
	Long: `Feeds the word to the automaton, one alphabet symbol per argument, and
reports whether it is accepted. No symbol arguments means the empty word.
Exits with status 1 on rejection.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		a := mustLoad(args[0])
		if a.Accepts(args[1:]) {
			fmt.Println("accepted")
			return
		}
		fmt.Println("rejected")
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
