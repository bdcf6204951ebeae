package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-velocity/internal/core"
	"github.com/vovakirdan/neon-velocity/internal/game/velocity"
	"github.com/vovakirdan/neon-velocity/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/A, Right/D  - Steer (hold or repeat)
  Mouse drag       - Steer directly
  Space            - Use power-up (turbo)
  Enter/click      - Start or retry
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower track, fewer obstacles, more power-ups
  normal - Default tuning
  hard   - Faster track, busier lanes, fewer power-ups
  fixed  - Speed never steps up with the level

Each difficulty keeps its own high score.

Examples:
  velocity play
  velocity play --difficulty hard
  velocity play --config ./my-velocity.yaml --log-file /tmp/velocity.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout; logs only go to a file.
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	var opts []velocity.Option
	if store := openStore(flagDBPath, logger); store != nil {
		defer store.Close()
		opts = append(opts, velocity.WithStore(store))
	}

	if err := tui.Run(cfg, rc, logger, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
