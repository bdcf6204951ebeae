package tui

import (
	"math"

	"github.com/vovakirdan/neon-velocity/internal/core"
)

// Cell size in world pixels. Terminal cells are roughly twice as tall as
// they are wide.
const (
	CellW = 8.0
	CellH = 16.0
)

// ScreenCanvas rasterizes canvas calls onto a character screen.
// One cell covers CellW×CellH world pixels.
type ScreenCanvas struct {
	screen *core.Screen
}

// NewScreenCanvas wraps s.
func NewScreenCanvas(s *core.Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: s}
}

// ViewSize returns the world size covered by the screen.
func (c *ScreenCanvas) ViewSize() (float64, float64) {
	return float64(c.screen.Width()) * CellW, float64(c.screen.Height()) * CellH
}

// Clear blanks every cell.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// StrokeLine plots the segment cell by cell.
func (c *ScreenCanvas) StrokeLine(x1, y1, x2, y2, width float64, p core.Paint) {
	if !core.Finite(x1) || !core.Finite(y1) || !core.Finite(x2) || !core.Finite(y2) {
		return
	}
	r := lineRune(x2-x1, y2-y1, width)
	c.plotLine(x1/CellW, y1/CellH, x2/CellW, y2/CellH, r, p.Nearest())
}

// plotLine walks a DDA in cell space after clipping to the screen.
func (c *ScreenCanvas) plotLine(cx1, cy1, cx2, cy2 float64, r rune, col core.Color) {
	w, h := float64(c.screen.Width()), float64(c.screen.Height())
	var ok bool
	if cx1, cy1, cx2, cy2, ok = clipSegment(cx1, cy1, cx2, cy2, w, h); !ok {
		return
	}

	dx, dy := cx2-cx1, cy2-cy1
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.screen.SetCell(int(math.Floor(cx1)), int(math.Floor(cy1)), r, col)
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	x, y := cx1, cy1
	for i := 0; i <= steps; i++ {
		c.screen.SetCell(int(math.Floor(x)), int(math.Floor(y)), r, col)
		x += sx
		y += sy
	}
}

// clipSegment clips a segment to [0, w]×[0, h] (Liang-Barsky).
func clipSegment(x1, y1, x2, y2, w, h float64) (float64, float64, float64, float64, bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1},
		{dx, w - x1},
		{-dy, y1},
		{dy, h - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// lineRune picks a glyph that follows the segment's direction on screen.
func lineRune(dx, dy, width float64) rune {
	adx, ady := math.Abs(dx)/CellW, math.Abs(dy)/CellH
	switch {
	case ady >= 2*adx:
		if width >= 3 {
			return '┃'
		}
		return '│'
	case adx >= 2*ady:
		if width >= 3 {
			return '━'
		}
		return '─'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// shade returns a block glyph whose density follows the paint alpha.
func shade(a float64) rune {
	switch {
	case a >= 0.7:
		return '█'
	case a >= 0.45:
		return '▓'
	case a >= 0.2:
		return '▒'
	default:
		return '░'
	}
}

// FillRoundRect fills every cell the rectangle touches. Corners are too
// small to show at cell resolution.
func (c *ScreenCanvas) FillRoundRect(x, y, w, h, _ float64, p core.Paint) {
	if !core.Finite(x) || !core.Finite(y) || !core.Finite(w) || !core.Finite(h) || w <= 0 || h <= 0 {
		return
	}
	x0, x1 := cellSpan(x, w, CellW)
	y0, y1 := cellSpan(y, h, CellH)
	c.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), shade(p.A), p.Nearest())
}

// cellSpan returns the half-open cell range covered by [pos, pos+size).
func cellSpan(pos, size, cell float64) (int, int) {
	lo := int(math.Floor(pos / cell))
	hi := int(math.Ceil((pos + size) / cell))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// FillPolygon fills the cells whose centers fall inside pts.
func (c *ScreenCanvas) FillPolygon(pts []core.Point, p core.Paint) {
	if len(pts) < 3 || !finitePoints(pts) {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range pts {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}

	r, col := shade(p.A), p.Nearest()
	x0, x1 := cellSpan(minX, maxX-minX, CellW)
	y0, y1 := cellSpan(minY, maxY-minY, CellH)
	hit := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			center := core.Point{X: (float64(cx) + 0.5) * CellW, Y: (float64(cy) + 0.5) * CellH}
			if insidePolygon(pts, center) {
				c.screen.SetCell(cx, cy, r, col)
				hit = true
			}
		}
	}
	// Shapes smaller than a cell still leave a mark.
	if !hit {
		c.screen.SetCell(int(math.Floor((minX+maxX)/2/CellW)), int(math.Floor((minY+maxY)/2/CellH)), r, col)
	}
}

// insidePolygon runs the even-odd crossing test.
func insidePolygon(pts []core.Point, q core.Point) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > q.Y) != (b.Y > q.Y) && q.X < (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func finitePoints(pts []core.Point) bool {
	for _, pt := range pts {
		if !core.Finite(pt.X) || !core.Finite(pt.Y) {
			return false
		}
	}
	return true
}

// StrokePolyline strokes each segment in turn.
func (c *ScreenCanvas) StrokePolyline(pts []core.Point, width float64, p core.Paint) {
	if !finitePoints(pts) {
		return
	}
	for i := 1; i < len(pts); i++ {
		c.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, p)
	}
}

// StrokeCircle draws a ring, or a single glyph when the ring fits in a cell.
func (c *ScreenCanvas) StrokeCircle(cx, cy, r, _ float64, p core.Paint) {
	if !core.Finite(cx) || !core.Finite(cy) || !core.Finite(r) || r < 0 {
		return
	}
	col := p.Nearest()
	if r < CellW {
		c.screen.SetCell(int(math.Floor(cx/CellW)), int(math.Floor(cy/CellH)), 'O', col)
		return
	}
	n := max(8, int(2*math.Pi*r/CellW))
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		c.screen.SetCell(int(math.Floor(x/CellW)), int(math.Floor(y/CellH)), 'o', col)
	}
}

// FillText writes text on the row containing the baseline.
func (c *ScreenCanvas) FillText(x, y float64, text string, _ core.Font, align core.TextAlign, p core.Paint) {
	if !core.Finite(x) || !core.Finite(y) {
		return
	}
	col := int(math.Floor(x / CellW))
	row := int(math.Floor(y / CellH))
	if align == core.AlignCenter {
		c.screen.DrawTextCentered(col, row, text, p.Nearest())
		return
	}
	c.screen.DrawText(col, row, text, p.Nearest())
}

// Vignette is skipped; terminal cells carry no background alpha.
func (c *ScreenCanvas) Vignette(_, _, _, _ float64, _ core.Paint) {}
