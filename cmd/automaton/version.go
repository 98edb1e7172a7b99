package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build; "dev" otherwise.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of automaton",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("automaton version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
