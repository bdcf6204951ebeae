package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed): %w", s, ErrInvalid)
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// SlotFor returns the high-score slot for a preset. Normal play uses base
// itself; other presets keep their own best under base:<preset>.
func SlotFor(base string, preset DifficultyPreset) string {
	if preset == "" || preset == DifficultyNormal {
		return base
	}
	return base + ":" + string(preset)
}

// SlotPreset is the inverse of SlotFor. It reports false for slots that
// do not belong to base.
func SlotPreset(base, slot string) (DifficultyPreset, bool) {
	if slot == base {
		return DifficultyNormal, true
	}
	rest, ok := strings.CutPrefix(slot, base+":")
	if !ok {
		return "", false
	}
	p, err := ParsePreset(rest)
	if err != nil || p == "" {
		return "", false
	}
	return p, true
}

// ApplyVelocityPreset modifies the config based on a difficulty preset.
// Levels still advance with time under every preset; only what a level
// does to the target speed and how busy the track is changes. Each preset
// also moves the high score to its own slot.
func ApplyVelocityPreset(cfg *VelocityConfig, preset DifficultyPreset) {
	cfg.Persistence.Slot = SlotFor(cfg.Persistence.Slot, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Track.BaseSpeed = 320
		cfg.Track.LevelSpeedStep = 45
		cfg.Spawn.ObstacleRate *= 0.75
		cfg.Spawn.RivalRate *= 0.75
		cfg.Spawn.PowerupRate *= 1.5
	case DifficultyHard:
		cfg.Track.BaseSpeed = 440
		cfg.Track.LevelSpeedStep = 75
		cfg.Spawn.ObstacleRate *= 1.3
		cfg.Spawn.RivalRate *= 1.3
		cfg.Spawn.PowerupRate *= 0.8
	case DifficultyFixed:
		cfg.Track.LevelSpeedStep = 0
	}
}
