package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finitolabs/finito"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of finito",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("finito version %s\n", finito.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
