package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-velocity/internal/game/velocity"
	"github.com/vovakirdan/neon-velocity/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a resizable desktop window.

Controls:
  Left/A, Right/D  - Steer
  Mouse/touch drag - Steer directly
  Space            - Use power-up (turbo)
  Two-finger tap   - Use power-up (turbo)
  Enter/click/tap  - Start or retry
  P/Esc            - Pause
  Q                - Quit

Examples:
  velocity window
  velocity window --fps 120 --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var opts []velocity.Option
	if flagSeed != 0 {
		opts = append(opts, velocity.WithSeed(flagSeed))
	}
	if store := openStore(flagDBPath, logger); store != nil {
		defer store.Close()
		opts = append(opts, velocity.WithStore(store))
	}

	if err := window.Run(cfg, flagFPS, logger, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
