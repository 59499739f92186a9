package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finitolabs/finito/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <machine-file>",
	Short: "Check a machine for consistency",
	Long:  `Reports missing initial states, lambda transitions, and states unreachable from the initial state.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Machine is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) error {
	eng := newEngine(cmd)
	if err := loadMachineFile(eng, path); err != nil {
		return err
	}

	errs, findings := validator.Check(eng.Machine())
	for _, f := range findings {
		fmt.Printf("warning: %s\n", f)
	}
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Printf("error: %v\n", err)
		}
		return fmt.Errorf("found %d errors", len(errs))
	}
	return nil
}
