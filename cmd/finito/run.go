package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finitolabs/finito/internal/presentation/tui"
)

var runCmd = &cobra.Command{
	Use:   "run <machine-file> <input>",
	Short: "Validate a string against an automaton",
	Long:  `Loads a machine (.afd native or .jff JFLAP) and reports whether it accepts the input string.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		eng := newEngine(cmd)
		if err := loadMachineFile(eng, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		input := args[1]
		accepted, err := eng.Accept(input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(tui.NewRenderer().Verdict(input, accepted))
		if !accepted {
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
