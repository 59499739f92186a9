package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finitolabs/finito"
	"github.com/finitolabs/finito/internal/logging"
)

// newEngine builds an engine honoring the global --verbose flag.
func newEngine(cmd *cobra.Command, opts ...finito.Option) *finito.Engine {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	opts = append([]finito.Option{finito.WithLogger(logging.New(os.Stderr, level))}, opts...)
	return finito.NewEngine(opts...)
}

// loadMachineFile loads a machine into the engine, dispatching on the file
// extension: .afd is the native schema, .jff is JFLAP.
func loadMachineFile(eng *finito.Engine, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jff":
		if err := eng.LoadJFLAP(data); err != nil {
			return fmt.Errorf("failed to load JFLAP file %s: %w", path, err)
		}
	default:
		if err := eng.LoadNative(data); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}
