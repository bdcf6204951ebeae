package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/core"
	"github.com/vovakirdan/neon-velocity/internal/game/velocity"
)

var white = core.RGB(255, 255, 255)

func newCanvas(w, h int) (*ScreenCanvas, *core.Screen) {
	s := core.NewScreen(w, h)
	return NewScreenCanvas(s), s
}

func TestCanvasViewSize(t *testing.T) {
	c, _ := newCanvas(60, 50)
	w, h := c.ViewSize()
	if w != 480 || h != 800 {
		t.Errorf("view = %vx%v, expected 480x800", w, h)
	}
}

func TestCanvasLines(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		width          float64
		want           rune
		cells          [][2]int
	}{
		{"vertical", 4, 0, 4, 64, 2, '│', [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
		{"thick vertical", 12, 0, 12, 32, 3, '┃', [][2]int{{1, 0}, {1, 1}}},
		{"horizontal", 0, 8, 24, 8, 2, '─', [][2]int{{0, 0}, {1, 0}, {2, 0}}},
		{"diagonal down", 0, 0, 16, 32, 2, '╲', [][2]int{{0, 0}, {1, 1}}},
		{"diagonal up", 0, 32, 16, 0, 2, '╱', [][2]int{{0, 2}, {1, 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, s := newCanvas(10, 10)
			c.StrokeLine(tc.x1, tc.y1, tc.x2, tc.y2, tc.width, white)
			for _, cell := range tc.cells {
				if got := s.Get(cell[0], cell[1]); got != tc.want {
					t.Errorf("cell %v = %q, expected %q", cell, got, tc.want)
				}
			}
		})
	}
}

func TestCanvasIgnoresNonFinite(t *testing.T) {
	c, s := newCanvas(10, 10)
	nan, inf := math.NaN(), math.Inf(1)

	c.StrokeLine(nan, 0, 10, 10, 1, white)
	c.StrokeLine(0, 0, inf, 10, 1, white)
	c.FillRoundRect(0, nan, 10, 10, 2, white)
	c.FillPolygon([]core.Point{{X: 0, Y: 0}, {X: inf, Y: 0}, {X: 0, Y: 10}}, white)
	c.StrokePolyline([]core.Point{{X: 0, Y: 0}, {X: nan, Y: nan}}, 1, white)
	c.StrokeCircle(nan, 10, 5, 1, white)
	c.FillText(inf, 10, "x", core.Font{Size: 16}, core.AlignLeft, white)

	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("expected blank screen, got:\n%s", s.String())
	}
}

func TestCanvasHugeLineIsBounded(t *testing.T) {
	c, s := newCanvas(10, 10)
	c.StrokeLine(0, 0, 1e12, 0, 1, white)
	if s.Get(9, 0) != '─' {
		t.Error("line should still cross the screen")
	}
}

func TestCanvasFillRoundRect(t *testing.T) {
	c, s := newCanvas(10, 10)
	// 20x40 px at (8, 16) covers cells x 1..3, y 1..3.
	c.FillRoundRect(8, 16, 20, 40, 6, core.RGB(255, 0, 255))

	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '█' || cell.Color != core.ColorBrightMagenta {
				t.Errorf("cell (%d,%d) = %+v", x, y, cell)
			}
		}
	}
	if s.Get(4, 1) != ' ' || s.Get(1, 4) != ' ' {
		t.Error("fill leaked outside the rectangle")
	}

	c.FillRoundRect(0, 0, 0, 10, 0, white)
	if s.Get(0, 0) != ' ' {
		t.Error("empty rectangle should draw nothing")
	}
}

func TestCanvasShadeFollowsAlpha(t *testing.T) {
	tests := []struct {
		a    float64
		want rune
	}{
		{1, '█'},
		{0.5, '▓'},
		{0.35, '▒'},
		{0.1, '░'},
	}
	for _, tc := range tests {
		if got := shade(tc.a); got != tc.want {
			t.Errorf("shade(%v) = %q, expected %q", tc.a, got, tc.want)
		}
	}
}

func TestCanvasFillPolygon(t *testing.T) {
	c, s := newCanvas(10, 10)
	square := []core.Point{{X: 0, Y: 0}, {X: 32, Y: 0}, {X: 32, Y: 64}, {X: 0, Y: 64}}
	c.FillPolygon(square, white)

	for y := range 4 {
		for x := range 4 {
			if s.Get(x, y) != '█' {
				t.Errorf("cell (%d,%d) not filled", x, y)
			}
		}
	}

	// A sliver smaller than a cell still marks one cell.
	c2, s2 := newCanvas(10, 10)
	c2.FillPolygon([]core.Point{{X: 40, Y: 40}, {X: 42, Y: 40}, {X: 41, Y: 42}}, white)
	if s2.Get(5, 2) != '█' {
		t.Errorf("sliver not drawn:\n%s", s2.String())
	}
}

func TestInsidePolygon(t *testing.T) {
	tri := []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	if !insidePolygon(tri, core.Point{X: 2, Y: 2}) {
		t.Error("(2,2) should be inside")
	}
	if insidePolygon(tri, core.Point{X: 8, Y: 8}) {
		t.Error("(8,8) should be outside")
	}
}

func TestCanvasCircle(t *testing.T) {
	c, s := newCanvas(20, 20)
	c.StrokeCircle(44, 40, 4, 2, white)
	if s.Get(5, 2) != 'O' {
		t.Error("small ring should collapse to one glyph")
	}

	c.Clear()
	c.StrokeCircle(80, 160, 40, 2, white)
	if s.Get(15, 10) != 'o' || s.Get(5, 10) != 'o' {
		t.Errorf("ring missing its sides:\n%s", s.String())
	}
	if s.Get(10, 10) != ' ' {
		t.Error("ring should be hollow")
	}
}

func TestCanvasText(t *testing.T) {
	c, s := newCanvas(20, 4)
	c.FillText(80, 24, "Crash", core.Font{Size: 26, Weight: core.FontBold}, core.AlignCenter, white)
	if got := strings.TrimSpace(s.Row(1)); got != "Crash" {
		t.Errorf("row 1 = %q", got)
	}
	if s.Get(8, 1) != 'C' {
		t.Errorf("text should be centered on column 10, got %q", s.Row(1))
	}

	c.FillText(0, 40, "Go", core.Font{Size: 16}, core.AlignLeft, white)
	if s.Get(0, 2) != 'G' {
		t.Error("left-aligned text should start at the anchor")
	}
}

func TestCanvasRendersGame(t *testing.T) {
	c, s := newCanvas(60, 48)
	vw, vh := c.ViewSize()
	g := velocity.New(config.DefaultVelocityConfig(),
		velocity.WithSeed(3),
		velocity.WithViewport(core.FixedViewport{W: vw, H: vh}))

	g.Render(c)
	out := s.String()
	if !strings.Contains(out, "Neon Velocity") {
		t.Errorf("idle banner missing:\n%s", out)
	}
	if !strings.ContainsRune(out, '│') {
		t.Error("lane boundaries missing")
	}

	g.Start()
	for range 30 {
		g.Step(core.Input{}, 1.0/60)
	}
	g.Render(c)
	if strings.Contains(s.String(), "Neon Velocity") {
		t.Error("banner should be gone while running")
	}
	if !strings.ContainsAny(s.String(), "█▓▒") {
		t.Error("player body missing")
	}
}
