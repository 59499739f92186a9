package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <string>",
	Short: "Decompose a string into substrings, prefixes, and suffixes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := newEngine(cmd).Analyze(args[0])

		fmt.Printf("Substrings (%d):\n%s\n\n", len(d.Substrings), strings.Join(d.Substrings, ", "))
		fmt.Printf("Prefixes (%d):\n%s\n\n", len(d.Prefixes), strings.Join(d.Prefixes, ", "))
		fmt.Printf("Suffixes (%d):\n%s\n", len(d.Suffixes), strings.Join(d.Suffixes, ", "))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
