// velocity is Neon Velocity, a lane-based arcade racer.
//
// Usage:
//
//	velocity play            - Play in the terminal
//	velocity window          - Play in a desktop window
//	velocity scores          - Show stored high scores
//	velocity sim             - Run headless autopilot batches
//	velocity config          - Print the effective tuning
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.velocity/scores.db)
//	--config <path>       - Use a custom tuning YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	// Interrupts cancel long batches; the terminal UI handles Ctrl+C itself.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Neon Velocity - dodge, overtake and survive",
	Long: `Neon Velocity is a lane-based arcade racer. Steer between lanes, dodge
obstacles and rival cars, grab turbo and ghost power-ups and push your score
as far as you can before the first crash.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View or reset high scores
  sim      - Run headless autopilot batches
  config   - Print the effective tuning

Examples:
  velocity play
  velocity play --difficulty hard
  velocity window --seed 42
  velocity scores
  velocity sim --runs 500 --csv runs.csv`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.velocity/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
