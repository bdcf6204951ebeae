package velocity

import (
	"math"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/core"
)

// lanes describes the lane grid for one viewport width.
type lanes struct {
	count   int
	padding float64
	width   float64 // Width of one lane, never negative
	viewW   float64
}

func newLanes(count int, padding, viewW float64) lanes {
	if count < 1 {
		count = 1
	}
	w := (viewW - 2*padding) / float64(count)
	if w < 0 || !core.Finite(w) {
		w = 0
	}
	return lanes{count: count, padding: padding, width: w, viewW: viewW}
}

// left returns the x of the left edge of lane i.
func (l lanes) left(i int) float64 {
	return l.padding + float64(i)*l.width
}

// place centers an entity of width w in lane i and keeps it on the track.
func (l lanes) place(i int, w float64) float64 {
	x := l.left(i) + (l.width-w)/2
	return l.clampX(x, w)
}

// clampX keeps an entity of width w inside [padding, viewW-padding-w].
// On a track narrower than the entity the left bound wins.
func (l lanes) clampX(x, w float64) float64 {
	return core.ClampF(x, l.padding, l.viewW-l.padding-w)
}

func (l lanes) pick(src core.Source) int {
	return core.RandIntn(src, l.count)
}

// at returns the lane containing x, clamped to the track.
func (l lanes) at(x float64) int {
	if l.width == 0 {
		return 0
	}
	i := int(math.Floor((x - l.padding) / l.width))
	return core.Clamp(i, 0, l.count-1)
}

// LaneCenter returns the x of the center of lane i for the viewport seen
// by the last step.
func (s *State) LaneCenter(i int) float64 {
	l := newLanes(s.LaneCount, s.LanePadding, s.ViewW)
	return l.left(i) + l.width/2
}

// LaneAt returns the lane containing x for the viewport seen by the last step.
func (s *State) LaneAt(x float64) int {
	return newLanes(s.LaneCount, s.LanePadding, s.ViewW).at(x)
}

// NewPlayer creates the player car at its spawn point for the given viewport.
func NewPlayer(cfg config.VelocityConfig, viewW, viewH float64) *Player {
	w, h := cfg.Player.Width, cfg.Player.Height
	l := newLanes(cfg.Track.LaneCount, cfg.Track.LanePadding, viewW)
	return &Player{
		X: l.clampX(viewW*cfg.Player.SpawnX-w/2, w),
		Y: viewH * cfg.Player.SpawnY,
		W: w,
		H: h,
	}
}

func newObstacle(cfg config.VelocityConfig, l lanes, src core.Source) Obstacle {
	lane := l.pick(src)
	w := l.width * cfg.Spawn.ObstacleWidthRatio
	return Obstacle{
		X: l.place(lane, w),
		Y: cfg.Spawn.SpawnY,
		W: w,
		H: cfg.Spawn.ObstacleHeight,
	}
}

// newRival spawns below the viewport; its negative VY carries it upward
// once the player is faster than the track.
func newRival(cfg config.VelocityConfig, l lanes, viewH float64, src core.Source) Rival {
	lane := l.pick(src)
	w := cfg.Spawn.RivalWidth
	return Rival{
		X:  l.place(lane, w),
		Y:  viewH + core.RandRange(src, cfg.Spawn.RivalOffsetMin, cfg.Spawn.RivalOffsetMax),
		W:  w,
		H:  cfg.Spawn.RivalHeight,
		VY: -core.RandRange(src, cfg.Spawn.RivalSpeedMin, cfg.Spawn.RivalSpeedMax),
	}
}

func newPowerup(cfg config.VelocityConfig, l lanes, src core.Source) Powerup {
	lane := l.pick(src)
	kind := PowerupTurbo
	if core.RandIntn(src, 2) == 1 {
		kind = PowerupGhost
	}
	size := cfg.Spawn.PowerupSize
	x := l.left(lane) + l.width/2 - size
	return Powerup{
		Kind: kind,
		X:    l.clampX(x, 2*size),
		Y:    cfg.Spawn.SpawnY,
		W:    2 * size,
		H:    2 * size,
	}
}

// newParticle emits one speed line behind the player.
func newParticle(cfg config.VelocityConfig, p *Player, speed float64, src core.Source) Particle {
	pc := cfg.Particles
	x := p.X + p.W/2 + core.RandRange(src, -p.W*0.6, p.W*0.6)
	y := p.Y + p.H*0.7 + core.RandRange(src, -6, 6)
	vy := speed * core.RandRange(src, pc.VelocityMin, pc.VelocityMax)
	length := core.RandRange(src, pc.LengthMin, pc.LengthMax)
	life := core.RandRange(src, pc.LifeMin, pc.LifeMax)
	tint := TintCyan
	if core.Chance(src, 0.5) {
		tint = TintMagenta
	}
	return Particle{X: x, Y: y, VY: vy, Len: length, Life: life, Tint: tint}
}
