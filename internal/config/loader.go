package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadVelocity loads Neon Velocity configuration.
// Search order: customPath -> ~/.velocity/configs/velocity.yaml -> ./configs/velocity.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read or parsed is an error;
// broken files found on the search path are skipped.
func LoadVelocity(customPath string) (VelocityConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultVelocityConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("velocity.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "velocity.yaml")); err == nil {
		return cfg, nil
	}

	cfg := DefaultVelocityConfig()
	if err := yaml.Unmarshal(defaultVelocityYAML, &cfg); err != nil {
		return DefaultVelocityConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (VelocityConfig, error) {
	cfg := DefaultVelocityConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg VelocityConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func loadFile(path string) (VelocityConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultVelocityConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return DefaultVelocityConfig(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".velocity", "configs", filename)
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate rejects values the simulation cannot run with.
func (c VelocityConfig) Validate() error {
	switch {
	case c.Track.LaneCount <= 0:
		return fmt.Errorf("config: track.lane_count must be positive: %w", ErrInvalid)
	case c.Track.LanePadding < 0:
		return fmt.Errorf("config: track.lane_padding must not be negative: %w", ErrInvalid)
	case c.Track.LevelDuration <= 0:
		return fmt.Errorf("config: track.level_duration must be positive: %w", ErrInvalid)
	case c.Track.BaseSpeed < 0 || c.Track.LevelSpeedStep < 0:
		return fmt.Errorf("config: track speeds must not be negative: %w", ErrInvalid)
	case c.Powerups.TurboBonus < 0:
		return fmt.Errorf("config: powerups.turbo_bonus must not be negative: %w", ErrInvalid)
	case c.Track.MaxStep <= 0:
		return fmt.Errorf("config: track.max_step must be positive: %w", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive: %w", ErrInvalid)
	case c.Player.SteerDamping < 0 || c.Player.SteerDamping > 1:
		return fmt.Errorf("config: player.steer_damping must be in [0, 1]: %w", ErrInvalid)
	case c.Player.DampingReferenceHz <= 0:
		return fmt.Errorf("config: player.damping_reference_hz must be positive: %w", ErrInvalid)
	case c.Spawn.ObstacleRate < 0 || c.Spawn.RivalRate < 0 || c.Spawn.PowerupRate < 0:
		return fmt.Errorf("config: spawn rates must not be negative: %w", ErrInvalid)
	case c.Spawn.RivalOffsetMax < c.Spawn.RivalOffsetMin || c.Spawn.RivalSpeedMax < c.Spawn.RivalSpeedMin:
		return fmt.Errorf("config: spawn ranges must have max >= min: %w", ErrInvalid)
	case c.Particles.SpeedRange <= 0:
		return fmt.Errorf("config: particles.speed_range must be positive: %w", ErrInvalid)
	case c.Particles.LifeMax <= 0:
		return fmt.Errorf("config: particles.life_max must be positive: %w", ErrInvalid)
	case c.Persistence.Slot == "":
		return fmt.Errorf("config: persistence.slot must not be empty: %w", ErrInvalid)
	}
	return nil
}
