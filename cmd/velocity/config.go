package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-velocity/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tuning as YAML",
	Long: `Print the tuning a run would use after the config search and the
difficulty preset are applied. The output is a valid config file; a file
written with --difficulty already carries the preset, so load it without one.

Examples:
  velocity config > ~/.velocity/configs/velocity.yaml
  velocity config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
