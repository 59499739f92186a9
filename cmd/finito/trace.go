package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finitolabs/finito/internal/presentation/tui"
	"github.com/finitolabs/finito/pkg/simulate"
)

var traceCmd = &cobra.Command{
	Use:   "trace <machine-file> <input>",
	Short: "Show the step-by-step evaluation of a string",
	Long: `Replays the input against the machine and prints every configuration.
With --step the trace opens in an interactive walker: n(ext), p(rev),
r(eset), q(uit).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		eng := newEngine(cmd)
		if err := loadMachineFile(eng, args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		trace, err := eng.BuildTrace(args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		renderer := tui.NewRenderer()
		step, _ := cmd.Flags().GetBool("step")
		if !step {
			fmt.Print(renderer.Trace(trace))
			return
		}

		walk(trace, renderer)
	},
}

// walk drives a cursor over the trace from stdin commands. Navigation is
// pure; stepping never re-runs the simulation.
func walk(trace *simulate.Trace, renderer *tui.Renderer) {
	cursor := simulate.NewCursor(trace)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println(renderer.Step(trace, cursor.Index(), true))
		fmt.Print("[n]ext [p]rev [r]eset [q]uit > ")
		if !scanner.Scan() {
			return
		}
		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "n", "next", "":
			if !cursor.Next() {
				fmt.Println(renderer.Verdict(trace.Input, trace.Accepted))
			}
		case "p", "prev":
			cursor.Prev()
		case "r", "reset":
			cursor.Reset()
		case "q", "quit":
			return
		}
	}
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().Bool("step", false, "Walk the trace interactively")
}
