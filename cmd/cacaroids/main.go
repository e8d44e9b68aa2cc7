// cacaroids is a terminal rendition of the classic rock-blasting arcade
// game: pilot a ship across a wrapping field, shoot drifting hazards,
// and clear the screen before one of them clears you.
//
// Usage:
//
//	cacaroids play             - Play in the current terminal
//	cacaroids serve            - Start SSH server for remote play
//	cacaroids scores           - Show high scores
//	cacaroids config           - Print the default game configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.cacaroids/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cacaroids",
	Short: "Cacaroids - Blast space rocks in your terminal",
	Long: `Cacaroids is a terminal arcade game: thrust and turn a ship on a
wrapping field, shoot the drifting hazards, and survive the fragments
they split into.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default game configuration

Examples:
  cacaroids play
  cacaroids play --difficulty hard
  cacaroids serve --ssh :2222
  cacaroids scores easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cacaroids/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
