package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var closureCmd = &cobra.Command{
	Use:   "closure <symbols>",
	Short: "Enumerate the Kleene and positive closures of an alphabet",
	Long: `Generates Σ* and Σ+ over the given symbols up to --max-length.
Repeated symbols collapse; the run is refused if the output would exceed
the engine's safety ceiling.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		maxLength, _ := cmd.Flags().GetInt("max-length")
		eng := newEngine(cmd)

		star, err := eng.Closure(args[0], maxLength, true)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		plus, err := eng.Closure(args[0], maxLength, false)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Kleene closure (Σ*), %d strings:\n%s\n\n", len(star), join(star))
		fmt.Printf("Positive closure (Σ+), %d strings:\n%s\n", len(plus), join(plus))
	},
}

// join renders the enumeration with a visible marker for the empty string.
func join(strs []string) string {
	out := make([]string, len(strs))
	for i, s := range strs {
		if s == "" {
			s = "ε"
		}
		out[i] = s
	}
	return strings.Join(out, ", ")
}

func init() {
	rootCmd.AddCommand(closureCmd)
	closureCmd.Flags().Int("max-length", 3, "Maximum string length to enumerate")
}
