package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/platform/tui"
	"github.com/vovakirdan/neon-velocity/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "View or reset high scores",
	Long: `Display the best score of every difficulty.

With --tui the scores open in an interactive table where the selected
slot can be cleared. --reset clears the slot of the --difficulty preset.

Examples:
  velocity scores
  velocity scores --tui
  velocity scores --reset --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Clear the high score of the selected difficulty")
}

func runScores(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(flagConfig, "")
	if err != nil {
		return err
	}
	baseSlot := base.Persistence.Slot

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresReset {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		slot := config.SlotFor(baseSlot, preset)
		if err := store.ClearHighScore(slot); err != nil {
			return fmt.Errorf("clearing %s: %w", slot, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared high score for %s.\n", slot)
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, baseSlot, width, height)
	}

	entries, err := store.Slots()
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Neon Velocity")
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'velocity play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-10s  %-10s  %-16s  %s\n", "Difficulty", "Best", "Updated", "Slot")
	fmt.Fprintf(out, "  %-10s  %-10s  %-16s  %s\n", "----------", "----", "-------", "----")

	for _, e := range entries {
		difficulty := "-"
		if p, ok := config.SlotPreset(baseSlot, e.Slot); ok {
			difficulty = string(p)
		}
		updated := "-"
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-10s  %-10d  %-16s  %s\n", difficulty, e.Value, updated, e.Slot)
	}
	return nil
}
