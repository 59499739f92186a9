package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input-file> <output-file>",
	Short: "Convert a JFLAP machine to the native format",
	Long: `Loads a .jff (or .afd) machine and writes it out in the native .afd
schema. Non-deterministic JFLAP graphs are rejected; nothing is written
on failure.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		eng := newEngine(cmd)
		if err := loadMachineFile(eng, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		data, err := eng.SaveNative()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(args[1], data, 0644); err != nil {
			fmt.Printf("Error: failed to write %s: %v\n", args[1], err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", args[1])
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
