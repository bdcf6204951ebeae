package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg := DefaultVelocityConfig()
	if err := yaml.Unmarshal(defaultVelocityYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultVelocityConfig()) {
		t.Errorf("embedded yaml and DefaultVelocityConfig differ:\n%+v\n%+v", cfg, DefaultVelocityConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultVelocityConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("track:\n  base_speed: 500\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Track.BaseSpeed != 500 {
		t.Errorf("base speed = %f, expected 500", cfg.Track.BaseSpeed)
	}
	if cfg.Track.LaneCount != 5 {
		t.Errorf("untouched keys should keep defaults, lane count = %d", cfg.Track.LaneCount)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VelocityConfig)
	}{
		{"no lanes", func(c *VelocityConfig) { c.Track.LaneCount = 0 }},
		{"zero level duration", func(c *VelocityConfig) { c.Track.LevelDuration = 0 }},
		{"zero max step", func(c *VelocityConfig) { c.Track.MaxStep = 0 }},
		{"damping above one", func(c *VelocityConfig) { c.Player.SteerDamping = 1.5 }},
		{"negative rate", func(c *VelocityConfig) { c.Spawn.RivalRate = -1 }},
		{"inverted rival speed", func(c *VelocityConfig) { c.Spawn.RivalSpeedMax = 10 }},
		{"empty slot", func(c *VelocityConfig) { c.Persistence.Slot = "" }},
		{"negative base speed", func(c *VelocityConfig) { c.Track.BaseSpeed = -1 }},
		{"negative level step", func(c *VelocityConfig) { c.Track.LevelSpeedStep = -10 }},
		{"negative turbo", func(c *VelocityConfig) { c.Powerups.TurboBonus = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultVelocityConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadVelocityCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "v.yaml")
	if err := os.WriteFile(path, []byte("persistence:\n  slot: test\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadVelocity(path)
	if err != nil {
		t.Fatalf("LoadVelocity: %v", err)
	}
	if cfg.Persistence.Slot != "test" {
		t.Errorf("slot = %q, expected test", cfg.Persistence.Slot)
	}
}

func TestLoadVelocityMissingCustomPath(t *testing.T) {
	cfg, err := LoadVelocity(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom path")
	}
	if !reflect.DeepEqual(cfg, DefaultVelocityConfig()) {
		t.Error("failed load should still return defaults")
	}
}

func TestLoadVelocityInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("track:\n  lane_count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadVelocity(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultVelocityConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultVelocityConfig()) {
		t.Error("marshalled defaults should parse back unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) = %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown preset should fail with ErrInvalid, got %v", err)
	}
}

func TestApplyVelocityPreset(t *testing.T) {
	base := DefaultVelocityConfig()

	easy := DefaultVelocityConfig()
	ApplyVelocityPreset(&easy, DifficultyEasy)
	if easy.Track.BaseSpeed >= base.Track.BaseSpeed || easy.Spawn.ObstacleRate >= base.Spawn.ObstacleRate {
		t.Error("easy should be slower and sparser than default")
	}

	hard := DefaultVelocityConfig()
	ApplyVelocityPreset(&hard, DifficultyHard)
	if hard.Track.BaseSpeed <= base.Track.BaseSpeed || hard.Spawn.RivalRate <= base.Spawn.RivalRate {
		t.Error("hard should be faster and busier than default")
	}

	fixed := DefaultVelocityConfig()
	ApplyVelocityPreset(&fixed, DifficultyFixed)
	if fixed.Track.LevelSpeedStep != 0 || !IsFixedPreset(DifficultyFixed) {
		t.Error("fixed should disable level speed steps")
	}

	normal := DefaultVelocityConfig()
	ApplyVelocityPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal should leave the config untouched")
	}

	if hard.Persistence.Slot != base.Persistence.Slot+":hard" {
		t.Errorf("hard slot = %q", hard.Persistence.Slot)
	}
}

func TestSlotPreset(t *testing.T) {
	const base = "neon-velocity:highScore"
	tests := []struct {
		slot string
		want DifficultyPreset
		ok   bool
	}{
		{base, DifficultyNormal, true},
		{base + ":easy", DifficultyEasy, true},
		{base + ":fixed", DifficultyFixed, true},
		{base + ":insane", "", false},
		{base + ":", "", false},
		{"other", "", false},
	}
	for _, tc := range tests {
		got, ok := SlotPreset(base, tc.slot)
		if got != tc.want || ok != tc.ok {
			t.Errorf("SlotPreset(%q) = %q, %v; expected %q, %v", tc.slot, got, ok, tc.want, tc.ok)
		}
	}

	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		if got, ok := SlotPreset(base, SlotFor(base, p)); !ok || got != p {
			t.Errorf("SlotFor(%q) does not round trip: %q", p, got)
		}
	}
}
