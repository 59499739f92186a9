package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finito",
	Short: "Finito is a deterministic finite automaton simulator",
	Long: `Finito builds, validates, and simulates deterministic finite automata.
Machines are stored in the native .afd format (JSON) and can be imported
from JFLAP .jff files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
