package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fcarvajalbrown/Cacaroids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game configuration",
	Long: `Print the built-in game configuration as YAML.

Redirect it to a file to customize the game:

  cacaroids config > ~/.cacaroids/configs/cacaroids.yaml

The file is picked up automatically on the next 'cacaroids play', or
pass an explicit path with 'cacaroids play --config <file>'.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if _, err := os.Stdout.Write(config.GetDefaultYAML()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}
}
