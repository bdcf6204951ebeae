package velocity

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a compact summary of the session used for determinism checks
// and run reports.
type Snapshot struct {
	Phase     Phase
	Time      float64
	Score     int
	HighScore int
	Overtakes int
	Level     int
	Speed     float64
	PlayerX   float64

	Obstacles int
	Rivals    int
	Powerups  int
	Particles int

	hash uint64
}

// Snapshot returns a summary of the current state.
func (g *Game) Snapshot() Snapshot {
	st := &g.state
	snap := Snapshot{
		Phase:     st.Phase,
		Time:      st.Time,
		Score:     st.Score,
		HighScore: st.HighScore,
		Overtakes: st.Overtakes,
		Level:     st.Level,
		Speed:     st.Speed,
		Obstacles: len(st.Obstacles),
		Rivals:    len(st.Rivals),
		Powerups:  len(st.Powerups),
		Particles: len(st.Particles),
	}
	if st.Player != nil {
		snap.PlayerX = st.Player.X
	}
	snap.hash = hashState(st)
	return snap
}

// Hash returns a hash over every entity position in the state the snapshot
// was taken from.
func (snap Snapshot) Hash() uint64 {
	return snap.hash
}

func hashState(st *State) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	f := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:]) //nolint:errcheck
	}
	i := func(v int) { f(float64(v)) }

	i(int(st.Phase))
	f(st.Time)
	i(st.Score)
	i(st.Overtakes)
	f(st.Speed)
	f(st.TrackOffset)
	if p := st.Player; p != nil {
		f(p.X)
		f(p.VX)
		f(p.TurboUntil)
		f(p.GhostUntil)
	}
	for _, o := range st.Obstacles {
		f(o.X)
		f(o.Y)
	}
	for _, r := range st.Rivals {
		f(r.X)
		f(r.Y)
		f(r.VY)
	}
	for _, u := range st.Powerups {
		i(int(u.Kind))
		f(u.X)
		f(u.Y)
	}
	for _, part := range st.Particles {
		f(part.X)
		f(part.Y)
		f(part.Life)
	}
	return h.Sum64()
}
