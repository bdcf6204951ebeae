package window

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/core"
	"github.com/vovakirdan/neon-velocity/internal/game/velocity"
)

func TestLayoutDrivesViewport(t *testing.T) {
	a := New(config.DefaultVelocityConfig(), 60, nil, velocity.WithSeed(1))

	if w, h := a.Layout(640, 360); w != 640 || h != 360 {
		t.Errorf("Layout = %dx%d, expected the outside size", w, h)
	}
	a.Game().Start()
	a.Game().Step(core.Input{}, 1.0/60)
	if st := a.Game().State(); st.ViewW != 640 || st.ViewH != 360 {
		t.Errorf("view = %vx%v, expected 640x360", st.ViewW, st.ViewH)
	}

	if w, h := a.Layout(0, -5); w != 1 || h != 1 {
		t.Errorf("degenerate layout = %dx%d, expected 1x1", w, h)
	}
}

func TestTextX(t *testing.T) {
	tests := []struct {
		x     float64
		w     int
		align core.TextAlign
		want  int
	}{
		{100, 40, core.AlignLeft, 100},
		{100, 40, core.AlignCenter, 80},
		{10.6, 0, core.AlignLeft, 11},
	}
	for _, tc := range tests {
		if got := textX(tc.x, tc.w, tc.align); got != tc.want {
			t.Errorf("textX(%v, %d, %v) = %d, expected %d", tc.x, tc.w, tc.align, got, tc.want)
		}
	}
}

func TestVignetteSteps(t *testing.T) {
	rings := vignetteSteps(100, 260, 0.35)
	if len(rings) != vignetteRings {
		t.Fatalf("rings = %d, expected %d", len(rings), vignetteRings)
	}
	if rings[0].r != 105 || rings[0].width != 10 {
		t.Errorf("first ring = %+v", rings[0])
	}
	for i := 1; i < len(rings); i++ {
		if rings[i].alpha <= rings[i-1].alpha {
			t.Fatal("alpha should grow outward")
		}
	}
	if last := rings[len(rings)-1].alpha; last >= 0.35 || math.Abs(last-0.35) > 0.35/vignetteRings {
		t.Errorf("outer alpha = %f, expected just under 0.35", last)
	}
}

func TestToColor(t *testing.T) {
	c := toColor(core.RGB(0x00, 0xe5, 0xff).WithAlpha(0.5))
	if c.R != 0 || c.G != 0xe5 || c.B != 0xff || c.A != 128 {
		t.Errorf("toColor = %+v", c)
	}
}

func TestFinite(t *testing.T) {
	if !finite(1, 2, 3) {
		t.Error("finite values rejected")
	}
	if finite(1, math.NaN()) || finite(math.Inf(-1)) {
		t.Error("non-finite values accepted")
	}
}

func TestDrawHUD(t *testing.T) {
	c := &core.RecordingCanvas{}
	drawHUD(c, velocity.HUD{Score: 5, Powerup: velocity.NoPowerupLabel, Paused: true})
	texts := c.Texts()
	if len(texts) != 1 {
		t.Fatalf("texts = %q", texts)
	}
	for _, want := range []string{"Score 5", "Power-up " + velocity.NoPowerupLabel, "PAUSED"} {
		if !strings.Contains(texts[0], want) {
			t.Errorf("HUD %q missing %q", texts[0], want)
		}
	}
}
