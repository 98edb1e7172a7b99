package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Print which of deterministic, complete and standard hold",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(mustLoad(args[0]).Classify())
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
