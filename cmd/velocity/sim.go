package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-velocity/internal/sim"
)

var (
	flagSimRuns    int
	flagSimSeconds float64
	flagSimStep    float64
	flagSimWorkers int
	flagSimCSV     string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot batches",
	Long: `Play a batch of seeded runs without a display. An autopilot steers
every run; run i uses seed --seed+i, so a batch is reproducible. Scores
from simulated runs are never stored.

Examples:
  velocity sim
  velocity sim --runs 500 --difficulty hard
  velocity sim --seed 42 --seconds 60 --csv runs.csv`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	defaults := sim.DefaultOptions()
	simCmd.Flags().IntVar(&flagSimRuns, "runs", defaults.Runs, "Number of runs")
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", defaults.MaxSeconds, "Simulated time limit per run")
	simCmd.Flags().Float64Var(&flagSimStep, "step", defaults.Step, "Fixed time step in seconds")
	simCmd.Flags().IntVar(&flagSimWorkers, "workers", 0, "Parallel runs (0 = one per CPU)")
	simCmd.Flags().StringVar(&flagSimCSV, "csv", "", "Write one row per run to this CSV file")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := sim.DefaultOptions()
	opts.Runs = flagSimRuns
	opts.MaxSeconds = flagSimSeconds
	opts.Step = flagSimStep
	opts.Workers = flagSimWorkers
	opts.Logger = logger
	if flagSeed != 0 {
		opts.Seed = flagSeed
	}

	logger.Info("starting batch", "runs", opts.Runs, "seed", opts.Seed, "slot", cfg.Persistence.Slot)
	report, err := sim.Run(cmd.Context(), cfg, opts)
	if err != nil {
		return err
	}

	if err := report.WriteText(cmd.OutOrStdout()); err != nil {
		return err
	}

	if flagSimCSV != "" {
		f, err := os.Create(flagSimCSV)
		if err != nil {
			return fmt.Errorf("creating csv: %w", err)
		}
		if err := report.WriteCSV(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing csv: %w", err)
		}
		logger.Info("wrote csv", "path", flagSimCSV, "rows", len(report.Runs))
	}
	return nil
}
