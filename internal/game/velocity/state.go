// Package velocity implements Neon Velocity, a lane-based arcade racer.
// The player dodges obstacles and rival cars on a scrolling multi-lane track,
// collects power-ups and scores until the first collision.
//
// World units are pixels with the origin at the top-left of the viewport;
// the track scrolls downward and y grows toward the player.
package velocity

import (
	"slices"

	"github.com/vovakirdan/neon-velocity/internal/core"
)

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseIdle     Phase = iota // Attract mode, waiting for start
	PhaseRunning               // Simulation active
	PhaseGameOver              // Crashed, showing the final score
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// EntityKind names the four kinds of track entity.
type EntityKind int

const (
	KindObstacle EntityKind = iota
	KindRival
	KindPowerup
	KindParticle
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindRival:
		return "rival"
	case KindPowerup:
		return "powerup"
	case KindParticle:
		return "particle"
	default:
		return "unknown"
	}
}

// PowerupKind is the effect a power-up grants on pickup.
type PowerupKind int

const (
	PowerupTurbo PowerupKind = iota // Raises target speed
	PowerupGhost                    // Collision immunity
)

// String returns the kind name.
func (k PowerupKind) String() string {
	if k == PowerupGhost {
		return "ghost"
	}
	return "turbo"
}

// Label returns the HUD label for the kind.
func (k PowerupKind) Label() string {
	if k == PowerupGhost {
		return "Ghost"
	}
	return "Turbo"
}

// NoPowerupLabel is shown when no power-up is active.
const NoPowerupLabel = "—"

// Tint is the color tag of a speed-line particle.
type Tint int

const (
	TintCyan Tint = iota
	TintMagenta
)

// Player is the player's car.
// GhostUntil and TurboUntil are absolute run times, not durations.
type Player struct {
	X, Y       float64
	W, H       float64
	VX         float64
	Steering   float64 // Net steer applied on the last step
	GhostUntil float64
	TurboUntil float64
}

// Box returns the player's bounding box.
func (p *Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// TurboActive reports whether turbo is running at time t.
func (p *Player) TurboActive(t float64) bool {
	return p.TurboUntil > t
}

// GhostActive reports whether ghost is running at time t.
func (p *Player) GhostActive(t float64) bool {
	return p.GhostUntil > t
}

// Obstacle is a static block that scrolls with the track.
type Obstacle struct {
	X, Y, W, H float64
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Rival is an opposing car. VY is its own velocity, negative meaning upward;
// net screen motion is track speed plus VY.
type Rival struct {
	X, Y, W, H float64
	VY         float64
	Passed     bool // Set once the rival has moved above the player
}

// Box returns the rival's bounding box.
func (r Rival) Box() core.Box {
	return core.Box{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Powerup is a collectible that scrolls with the track.
type Powerup struct {
	Kind       PowerupKind
	X, Y, W, H float64
}

// Box returns the power-up's bounding box.
func (u Powerup) Box() core.Box {
	return core.Box{X: u.X, Y: u.Y, W: u.W, H: u.H}
}

// Particle is a visual-only speed line.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Len    float64
	Life   float64 // Remaining seconds
	Tint   Tint
}

// State is the complete state of one session. Advance is its only writer;
// renderers must treat it as read-only.
type State struct {
	Phase     Phase
	Time      float64
	Score     int
	HighScore int
	Overtakes int
	Level     int
	Speed     float64

	LaneCount   int
	LanePadding float64
	TrackOffset float64

	Player    *Player
	Obstacles []Obstacle
	Rivals    []Rival
	Powerups  []Powerup
	Particles []Particle

	// Viewport size seen by the last step or reset.
	ViewW, ViewH float64
}

// Running reports whether the active branch of the simulation runs.
func (s *State) Running() bool {
	return s.Phase == PhaseRunning
}

// GameOver reports whether the run ended in a crash.
func (s *State) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// ActivePowerup returns the power-up currently in effect. Turbo wins when
// both timers are running.
func (s *State) ActivePowerup() (PowerupKind, bool) {
	if s.Player == nil {
		return 0, false
	}
	if s.Player.TurboActive(s.Time) {
		return PowerupTurbo, true
	}
	if s.Player.GhostActive(s.Time) {
		return PowerupGhost, true
	}
	return 0, false
}

// Count returns how many live entities of a kind exist.
func (s *State) Count(k EntityKind) int {
	switch k {
	case KindObstacle:
		return len(s.Obstacles)
	case KindRival:
		return len(s.Rivals)
	case KindPowerup:
		return len(s.Powerups)
	case KindParticle:
		return len(s.Particles)
	default:
		return 0
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	if s.Player != nil {
		p := *s.Player
		c.Player = &p
	}
	c.Obstacles = slices.Clone(s.Obstacles)
	c.Rivals = slices.Clone(s.Rivals)
	c.Powerups = slices.Clone(s.Powerups)
	c.Particles = slices.Clone(s.Particles)
	return &c
}
