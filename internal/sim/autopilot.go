// Package sim runs Neon Velocity headless: seeded batch runs driven by a
// lane-keeping autopilot, with aggregate statistics and CSV export.
// It never touches the high-score store.
package sim

import (
	"github.com/vovakirdan/neon-velocity/internal/core"
	"github.com/vovakirdan/neon-velocity/internal/game/velocity"
)

// Autopilot steers between lanes to dodge obstacles and rivals.
type Autopilot struct {
	Lookahead float64 // World pixels above the player scanned for blockers
	Behind    float64 // World pixels below the player scanned for climbing rivals
	Deadband  float64 // Distance from the lane center that counts as centered
}

// NewAutopilot returns an autopilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: 260, Behind: 80, Deadband: 6}
}

// Decide returns the input for the next step. It only reads st.
//
// When the current lane is blocked it heads for the nearest free lane;
// when every lane is blocked it fires the power-up. Otherwise it drifts
// toward the nearest power-up ahead whose lane is clear.
func (a *Autopilot) Decide(st *velocity.State) core.Input {
	p := st.Player
	if p == nil || !st.Running() {
		return core.Input{}
	}

	var in core.Input
	center := p.X + p.W/2
	cur := st.LaneAt(center)
	target := cur

	if a.blocked(st, cur) {
		if lane, ok := a.freeLane(st, cur); ok {
			target = lane
		} else if _, active := st.ActivePowerup(); !active {
			in.UsePower = true
		}
	} else if lane, ok := a.powerupLane(st); ok && !a.blocked(st, lane) && a.pathClear(st, cur, lane) {
		target = lane
	}

	dx := st.LaneCenter(target) - center
	switch {
	case dx > a.Deadband:
		in.SteerRight = true
	case dx < -a.Deadband:
		in.SteerLeft = true
	}
	return in
}

// inBand reports whether a box is close enough vertically to matter.
func (a *Autopilot) inBand(p *velocity.Player, b core.Box) bool {
	return b.Bottom() >= p.Y-a.Lookahead && b.Y <= p.Y+p.H+a.Behind
}

// blocked reports whether an obstacle or rival occupies lane near the player.
func (a *Autopilot) blocked(st *velocity.State, lane int) bool {
	p := st.Player
	for _, o := range st.Obstacles {
		b := o.Box()
		if a.inBand(p, b) && st.LaneAt(b.X+b.W/2) == lane {
			return true
		}
	}
	for _, r := range st.Rivals {
		b := r.Box()
		if a.inBand(p, b) && st.LaneAt(b.X+b.W/2) == lane {
			return true
		}
	}
	return false
}

// freeLane searches outward from cur, left before right at equal distance.
func (a *Autopilot) freeLane(st *velocity.State, cur int) (int, bool) {
	for d := 1; d < st.LaneCount; d++ {
		for _, lane := range [2]int{cur - d, cur + d} {
			if lane < 0 || lane >= st.LaneCount {
				continue
			}
			if !a.blocked(st, lane) && a.pathClear(st, cur, lane) {
				return lane, true
			}
		}
	}
	return 0, false
}

// pathClear reports whether every lane strictly between from and to is free.
func (a *Autopilot) pathClear(st *velocity.State, from, to int) bool {
	if from == to {
		return true
	}
	step := 1
	if to < from {
		step = -1
	}
	for lane := from + step; lane != to; lane += step {
		if a.blocked(st, lane) {
			return false
		}
	}
	return true
}

// powerupLane returns the lane of the closest power-up still ahead.
func (a *Autopilot) powerupLane(st *velocity.State) (int, bool) {
	p := st.Player
	best, found := 0.0, false
	lane := 0
	for _, u := range st.Powerups {
		b := u.Box()
		if b.Bottom() > p.Y || b.Y < p.Y-a.Lookahead {
			continue
		}
		if !found || b.Y > best {
			best, found = b.Y, true
			lane = st.LaneAt(b.X + b.W/2)
		}
	}
	return lane, found
}
