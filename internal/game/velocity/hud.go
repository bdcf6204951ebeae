package velocity

import (
	"fmt"
	"math"
)

// HUD is the presentation snapshot published after each step.
type HUD struct {
	Score     int
	HighScore int
	Overtakes int
	Speed     int // Rounded
	Level     int
	Powerup   string // "Turbo", "Ghost" or NoPowerupLabel
	Phase     Phase
	Paused    bool
}

// Fields returns the HUD as label/value pairs in display order.
func (h HUD) Fields() [][2]string {
	return [][2]string{
		{"Score", fmt.Sprint(h.Score)},
		{"Best", fmt.Sprint(h.HighScore)},
		{"Overtakes", fmt.Sprint(h.Overtakes)},
		{"Speed", fmt.Sprint(h.Speed)},
		{"Level", fmt.Sprint(h.Level)},
		{"Power-up", h.Powerup},
	}
}

// HUD returns the current presentation snapshot.
func (g *Game) HUD() HUD {
	return hudOf(&g.state, g.paused)
}

func hudOf(st *State, paused bool) HUD {
	label := NoPowerupLabel
	if kind, ok := st.ActivePowerup(); ok {
		label = kind.Label()
	}
	return HUD{
		Score:     st.Score,
		HighScore: st.HighScore,
		Overtakes: st.Overtakes,
		Speed:     int(math.Round(st.Speed)),
		Level:     st.Level,
		Powerup:   label,
		Phase:     st.Phase,
		Paused:    paused,
	}
}
