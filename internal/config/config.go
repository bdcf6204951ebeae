// Package config provides YAML-based game configuration loading and
// difficulty presets for Neon Velocity.
package config

// VelocityConfig contains all tuning for the Neon Velocity game.
// Distances are world pixels, times are seconds, rates are per second.
type VelocityConfig struct {
	Track       TrackConfig       `yaml:"track"`
	Player      PlayerConfig      `yaml:"player"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Powerups    PowerupConfig     `yaml:"powerups"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Particles   ParticleConfig    `yaml:"particles"`
	Culling     CullingConfig     `yaml:"culling"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// TrackConfig defines lane geometry, speed and level progression.
type TrackConfig struct {
	LaneCount       int     `yaml:"lane_count"`
	LanePadding     float64 `yaml:"lane_padding"`
	BaseSpeed       float64 `yaml:"base_speed"`
	LevelSpeedStep  float64 `yaml:"level_speed_step"` // Target speed added per level above 1
	LevelDuration   float64 `yaml:"level_duration"`   // Seconds per level
	SpeedResponse   float64 `yaml:"speed_response"`   // First-order lag rate constant (1/s)
	ScrollScale     float64 `yaml:"scroll_scale"`     // Track offset per pixel travelled
	IdleScrollSpeed float64 `yaml:"idle_scroll_speed"`
	MaxStep         float64 `yaml:"max_step"` // Largest dt a single step integrates
}

// PlayerConfig defines the player car and its steering.
type PlayerConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	SpawnX             float64 `yaml:"spawn_x"` // Fraction of viewport width for the car center
	SpawnY             float64 `yaml:"spawn_y"` // Fraction of viewport height for the car top
	SteerAccel         float64 `yaml:"steer_accel"`
	SteerDamping       float64 `yaml:"steer_damping"`        // Velocity kept per reference step
	DampingReferenceHz float64 `yaml:"damping_reference_hz"` // Step rate SteerDamping was tuned at
}

// SpawnConfig defines spawn rates and spawned entity geometry.
type SpawnConfig struct {
	ObstacleRate       float64 `yaml:"obstacle_rate"`
	RivalRate          float64 `yaml:"rival_rate"`
	PowerupRate        float64 `yaml:"powerup_rate"`
	SpawnY             float64 `yaml:"spawn_y"` // Y for obstacles and power-ups (above the viewport)
	ObstacleWidthRatio float64 `yaml:"obstacle_width_ratio"`
	ObstacleHeight     float64 `yaml:"obstacle_height"`
	RivalWidth         float64 `yaml:"rival_width"`
	RivalHeight        float64 `yaml:"rival_height"`
	RivalOffsetMin     float64 `yaml:"rival_offset_min"` // Spawn distance below the viewport
	RivalOffsetMax     float64 `yaml:"rival_offset_max"`
	RivalSpeedMin      float64 `yaml:"rival_speed_min"` // Own upward speed
	RivalSpeedMax      float64 `yaml:"rival_speed_max"`
	PowerupSize        float64 `yaml:"powerup_size"` // Half extent
}

// PowerupConfig defines power-up durations and effects.
type PowerupConfig struct {
	TurboBonus     float64 `yaml:"turbo_bonus"`
	PickupDuration float64 `yaml:"pickup_duration"`
	ManualDuration float64 `yaml:"manual_duration"`
	PickupScore    int     `yaml:"pickup_score"`
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	OvertakeBase        int     `yaml:"overtake_base"`
	OvertakeSpeedFactor float64 `yaml:"overtake_speed_factor"`
	PassiveSpeedFactor  float64 `yaml:"passive_speed_factor"`
}

// ParticleConfig defines speed-line emission.
type ParticleConfig struct {
	SpeedThreshold float64 `yaml:"speed_threshold"`
	SpeedRange     float64 `yaml:"speed_range"`
	MaxPerStep     float64 `yaml:"max_per_step"`
	ReferenceHz    float64 `yaml:"reference_hz"`
	LengthMin      float64 `yaml:"length_min"`
	LengthMax      float64 `yaml:"length_max"`
	LifeMin        float64 `yaml:"life_min"`
	LifeMax        float64 `yaml:"life_max"`
	VelocityMin    float64 `yaml:"velocity_min"` // Multiple of track speed
	VelocityMax    float64 `yaml:"velocity_max"`
}

// CullingConfig defines how far past the viewport entities live.
type CullingConfig struct {
	BelowMargin    float64 `yaml:"below_margin"`
	AboveMargin    float64 `yaml:"above_margin"`
	ParticleMargin float64 `yaml:"particle_margin"`
}

// PersistenceConfig defines the high-score slot.
type PersistenceConfig struct {
	Slot          string  `yaml:"slot"`
	FlushInterval float64 `yaml:"flush_interval"` // Seconds between writes while the best keeps rising
}
