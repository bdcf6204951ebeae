package config

import (
	_ "embed"
)

//go:embed defaults/velocity.yaml
var defaultVelocityYAML []byte

// DefaultVelocityConfig returns the default Neon Velocity configuration.
// It mirrors defaults/velocity.yaml.
func DefaultVelocityConfig() VelocityConfig {
	return VelocityConfig{
		Track: TrackConfig{
			LaneCount:       5,
			LanePadding:     18,
			BaseSpeed:       380,
			LevelSpeedStep:  60,
			LevelDuration:   20,
			SpeedResponse:   4,
			ScrollScale:     0.06,
			IdleScrollSpeed: 120,
			MaxStep:         0.033,
		},
		Player: PlayerConfig{
			Width:              36,
			Height:             56,
			SpawnX:             0.5,
			SpawnY:             0.78,
			SteerAccel:         1800,
			SteerDamping:       0.86,
			DampingReferenceHz: 60,
		},
		Spawn: SpawnConfig{
			ObstacleRate:       0.9,
			RivalRate:          0.8,
			PowerupRate:        0.15,
			SpawnY:             -60,
			ObstacleWidthRatio: 0.7,
			ObstacleHeight:     24,
			RivalWidth:         34,
			RivalHeight:        54,
			RivalOffsetMin:     120,
			RivalOffsetMax:     240,
			RivalSpeedMin:      180,
			RivalSpeedMax:      260,
			PowerupSize:        20,
		},
		Powerups: PowerupConfig{
			TurboBonus:     180,
			PickupDuration: 3,
			ManualDuration: 1.2,
			PickupScore:    50,
		},
		Scoring: ScoringConfig{
			OvertakeBase:        100,
			OvertakeSpeedFactor: 0.2,
			PassiveSpeedFactor:  0.04,
		},
		Particles: ParticleConfig{
			SpeedThreshold: 280,
			SpeedRange:     240,
			MaxPerStep:     10,
			ReferenceHz:    60,
			LengthMin:      8,
			LengthMax:      18,
			LifeMin:        0.18,
			LifeMax:        0.32,
			VelocityMin:    1.2,
			VelocityMax:    1.8,
		},
		Culling: CullingConfig{
			BelowMargin:    60,
			AboveMargin:    120,
			ParticleMargin: 40,
		},
		Persistence: PersistenceConfig{
			Slot:          "neon-velocity:highScore",
			FlushInterval: 1,
		},
	}
}
