package velocity

import (
	"math"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/core"
)

// StepEvents summarizes what one simulation step did.
type StepEvents struct {
	Overtakes int           // Rivals passed this step
	Pickups   []PowerupKind // Power-ups collected this step
	Activated bool          // Manual turbo granted
	Crashed   bool
	CrashedOn EntityKind // Valid when Crashed
	NewBest   bool       // High score raised this step
}

// clampStep bounds dt to [0, max]. Non-finite dt counts as no time.
func clampStep(dt, max float64) float64 {
	if !core.Finite(dt) || dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

// levelAt returns the level for a run time. It is a pure function of time,
// never incremented.
func levelAt(t, levelDuration float64) int {
	return int(math.Floor(t/levelDuration)) + 1
}

// advance runs one simulation step on st for a viewport of viewW x viewH.
// All randomness is drawn from src in a fixed order, so equal seeds and
// inputs replay identically.
func advance(st *State, cfg config.VelocityConfig, in core.Input, dt, viewW, viewH float64, src core.Source) StepEvents {
	var ev StepEvents
	dt = clampStep(dt, cfg.Track.MaxStep)
	st.ViewW, st.ViewH = viewW, viewH

	if !st.Running() {
		st.TrackOffset += cfg.Track.IdleScrollSpeed * dt
		return ev
	}
	if st.Player == nil {
		st.Player = NewPlayer(cfg, viewW, viewH)
	}
	p := st.Player
	l := newLanes(st.LaneCount, st.LanePadding, viewW)

	// Time and speed
	st.Time += dt
	target := cfg.Track.BaseSpeed + float64(st.Level-1)*cfg.Track.LevelSpeedStep
	if p.TurboActive(st.Time) {
		target += cfg.Powerups.TurboBonus
	}
	st.Speed += (target - st.Speed) * math.Min(1, cfg.Track.SpeedResponse*dt)
	st.TrackOffset += st.Speed * dt * cfg.Track.ScrollScale
	st.Level = levelAt(st.Time, cfg.Track.LevelDuration)

	// Steering
	steer := in.Steer()
	p.Steering = steer
	p.VX += steer * cfg.Player.SteerAccel * dt
	p.VX *= math.Pow(cfg.Player.SteerDamping, dt*cfg.Player.DampingReferenceHz)
	p.X += p.VX * dt
	if core.Finite(in.DragDX) {
		p.X += in.DragDX
	}
	p.X = l.clampX(p.X, p.W)

	// Spawning: all three trials are drawn every step.
	if core.Chance(src, cfg.Spawn.ObstacleRate*dt) {
		st.Obstacles = append(st.Obstacles, newObstacle(cfg, l, src))
	}
	if core.Chance(src, cfg.Spawn.RivalRate*dt) {
		st.Rivals = append(st.Rivals, newRival(cfg, l, viewH, src))
	}
	if core.Chance(src, cfg.Spawn.PowerupRate*dt) {
		st.Powerups = append(st.Powerups, newPowerup(cfg, l, src))
	}

	move(st, dt)
	cull(st, cfg, viewH)

	// Overtakes
	for i := range st.Rivals {
		r := &st.Rivals[i]
		if !r.Passed && r.Y < p.Y {
			r.Passed = true
			st.Overtakes++
			st.Score += cfg.Scoring.OvertakeBase + int(math.Floor(st.Speed*cfg.Scoring.OvertakeSpeedFactor))
			ev.Overtakes++
		}
	}

	// Collisions end the step.
	if !p.GhostActive(st.Time) {
		if kind, hit := collide(st, p.Box()); hit {
			st.Phase = PhaseGameOver
			ev.Crashed = true
			ev.CrashedOn = kind
			ev.NewBest = recordBest(st)
			return ev
		}
	}

	// Pickups, newest first so removal keeps indices valid.
	for i := len(st.Powerups) - 1; i >= 0; i-- {
		u := st.Powerups[i]
		if !p.Box().Overlaps(u.Box()) {
			continue
		}
		st.Powerups = append(st.Powerups[:i], st.Powerups[i+1:]...)
		until := st.Time + cfg.Powerups.PickupDuration
		switch u.Kind {
		case PowerupTurbo:
			p.TurboUntil = until
		case PowerupGhost:
			p.GhostUntil = until
		}
		st.Score += cfg.Powerups.PickupScore
		ev.Pickups = append(ev.Pickups, u.Kind)
	}

	// Manual use only converts to turbo when nothing is running.
	if in.UsePower && !p.TurboActive(st.Time) && !p.GhostActive(st.Time) {
		p.TurboUntil = st.Time + cfg.Powerups.ManualDuration
		ev.Activated = true
	}

	emitParticles(st, cfg, dt, src)

	st.Score += int(math.Floor(st.Speed * cfg.Scoring.PassiveSpeedFactor))
	ev.NewBest = recordBest(st)
	return ev
}

func move(st *State, dt float64) {
	for i := range st.Obstacles {
		st.Obstacles[i].Y += st.Speed * dt
	}
	for i := range st.Rivals {
		st.Rivals[i].Y += (st.Speed + st.Rivals[i].VY) * dt
	}
	for i := range st.Powerups {
		st.Powerups[i].Y += st.Speed * dt
	}
	for i := range st.Particles {
		part := &st.Particles[i]
		part.X += part.VX * dt
		part.Y += part.VY * dt
		part.Life -= dt
	}
}

// cull drops entities that left the viewport for good.
func cull(st *State, cfg config.VelocityConfig, viewH float64) {
	bottom := viewH + cfg.Culling.BelowMargin

	obstacles := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		if o.Y < bottom {
			obstacles = append(obstacles, o)
		}
	}
	st.Obstacles = obstacles

	powerups := st.Powerups[:0]
	for _, u := range st.Powerups {
		if u.Y < bottom {
			powerups = append(powerups, u)
		}
	}
	st.Powerups = powerups

	// A rival below its spawn band never returns once the slowest speed the
	// track can still reach outruns it. Target speed never drops below
	// base_speed, and a track slower than that only accelerates.
	lost := viewH + cfg.Spawn.RivalOffsetMax + cfg.Culling.BelowMargin
	floor := math.Min(st.Speed, cfg.Track.BaseSpeed)
	rivals := st.Rivals[:0]
	for _, r := range st.Rivals {
		if r.Y <= -cfg.Culling.AboveMargin {
			continue
		}
		if r.Y > lost && floor+r.VY >= 0 {
			continue
		}
		rivals = append(rivals, r)
	}
	st.Rivals = rivals

	particles := st.Particles[:0]
	for _, part := range st.Particles {
		if part.Life > 0 && part.Y < viewH+cfg.Culling.ParticleMargin {
			particles = append(particles, part)
		}
	}
	st.Particles = particles
}

// collide returns the kind of the first obstacle or rival overlapping box.
func collide(st *State, box core.Box) (EntityKind, bool) {
	for _, o := range st.Obstacles {
		if box.Overlaps(o.Box()) {
			return KindObstacle, true
		}
	}
	for _, r := range st.Rivals {
		if box.Overlaps(r.Box()) {
			return KindRival, true
		}
	}
	return 0, false
}

func emitParticles(st *State, cfg config.VelocityConfig, dt float64, src core.Source) {
	pc := cfg.Particles
	factor := core.ClampF((st.Speed-pc.SpeedThreshold)/pc.SpeedRange, 0, 1)
	n := int(math.Floor(pc.MaxPerStep * factor * dt * pc.ReferenceHz))
	for range n {
		st.Particles = append(st.Particles, newParticle(cfg, st.Player, st.Speed, src))
	}
}

func recordBest(st *State) bool {
	if st.Score > st.HighScore {
		st.HighScore = st.Score
		return true
	}
	return false
}
