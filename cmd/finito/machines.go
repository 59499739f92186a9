package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finitolabs/finito/pkg/adapters/file"
	"github.com/finitolabs/finito/pkg/adapters/redis"
	"github.com/finitolabs/finito/pkg/codec/native"
	"github.com/finitolabs/finito/pkg/ports"
)

var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "Manage a named library of automata",
	Long: `Saves, lists, exports, and deletes machines in a persistent store.
The default store is a directory of .afd files; --redis switches to a
shared Redis store.`,
}

var machinesSaveCmd = &cobra.Command{
	Use:   "save <name> <machine-file>",
	Short: "Store a machine file under a name",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := storeFromFlags(cmd)
		eng := newEngine(cmd)
		if err := loadMachineFile(eng, args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if err := store.Save(cmd.Context(), args[0], eng.Machine()); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved machine %q\n", args[0])
	},
}

var machinesExportCmd = &cobra.Command{
	Use:   "export <name> <output-file>",
	Short: "Write a stored machine out as a native .afd file",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := exportMachine(cmd.Context(), storeFromFlags(cmd), args[0], args[1]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", args[1])
	},
}

var machinesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored machines",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		names, err := storeFromFlags(cmd).List(cmd.Context())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if len(names) == 0 {
			fmt.Println("No machines stored.")
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var machinesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored machine",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := storeFromFlags(cmd).Delete(cmd.Context(), args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted machine %q\n", args[0])
	},
}

// resolveStore selects the store backend: a Redis address wins over the
// file store directory.
func resolveStore(dir, redisAddr string) ports.MachineStore {
	if redisAddr != "" {
		return redis.New(redisAddr, "", 0)
	}
	return file.NewStore(dir)
}

func storeFromFlags(cmd *cobra.Command) ports.MachineStore {
	dir, _ := cmd.Flags().GetString("dir")
	redisAddr, _ := cmd.Flags().GetString("redis")
	return resolveStore(dir, redisAddr)
}

func exportMachine(ctx context.Context, store ports.MachineStore, name, path string) error {
	m, err := store.Load(ctx, name)
	if err != nil {
		return err
	}
	data, err := native.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func init() {
	rootCmd.AddCommand(machinesCmd)
	machinesCmd.AddCommand(machinesSaveCmd, machinesExportCmd, machinesListCmd, machinesDeleteCmd)
	machinesCmd.PersistentFlags().String("dir", "", "Directory of the file store (default .finito/machines)")
	machinesCmd.PersistentFlags().String("redis", "", "Redis address for a shared store (overrides --dir)")
}
