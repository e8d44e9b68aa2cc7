package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fcarvajalbrown/Cacaroids/internal/config"
	"github.com/fcarvajalbrown/Cacaroids/internal/core"
	"github.com/fcarvajalbrown/Cacaroids/internal/platform/tui"
	"github.com/fcarvajalbrown/Cacaroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  W/Up       - Thrust
  A/Left     - Rotate left
  D/Right    - Rotate right
  Space      - Fire
  P          - Pause
  R          - Restart (after the round ends)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Fewer hazards, snappier weapon
  normal - The standard field
  hard   - More hazards, slower weapon, tighter spawn gap

Examples:
  cacaroids play
  cacaroids play --difficulty hard
  cacaroids play --config ./my-cacaroids.yaml
  cacaroids play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// parseDifficulty validates the --difficulty flag value.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	switch s {
	case "", "normal":
		return config.DifficultyNormal, nil
	case "easy":
		return config.DifficultyEasy, nil
	case "hard":
		return config.DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal, or hard)", s)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, preset)

	// The terminal doubles as the playfield
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(gameCfg, config.GameID(preset), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
