package velocity

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-velocity/internal/core"
)

// Neon palette
var (
	neonCyan    = core.RGB(0, 255, 240)
	neonMagenta = core.RGB(255, 0, 230)
	neonLime    = core.RGB(124, 255, 0)
	black       = core.RGB(0, 0, 0)
	white       = core.RGB(255, 255, 255)

	laneLinePaint  = neonCyan.WithAlpha(0.35)
	laneDashPaint  = neonMagenta.WithAlpha(0.4)
	ghostBodyPaint = neonCyan.WithAlpha(0.35)
	outlinePaint   = neonCyan.WithAlpha(0.7)
	jetPaint       = neonMagenta.WithAlpha(0.8)
	obstaclePaint  = neonMagenta.WithAlpha(0.75)
	rivalPaint     = neonLime.WithAlpha(0.8)
	vignettePaint  = black.WithAlpha(0.35)
	bannerPaint    = white.WithAlpha(0.9)
)

const (
	dashMeter        = 28.0
	maxTilt          = 0.25
	tiltVelocity     = 600.0
	particleFadeLife = 0.32
	lightningJitterX = 6.0
	lightningJitterY = 4.0
	vignetteInner    = 40.0
	playerRadius     = 10.0
	cornerSegments   = 4
)

var (
	titleFont   = core.Font{Size: 28, Weight: core.FontBold}
	crashFont   = core.Font{Size: 26, Weight: core.FontBold}
	captionFont = core.Font{Size: 16, Weight: core.FontRegular}
)

// Render draws st onto c for a viewport of viewW x viewH. It never mutates
// st; lightning jitter is drawn from jitter, which may be nil for a steady
// bolt. A nil or zero state renders an empty track.
func Render(c core.Canvas, st *State, viewW, viewH float64, jitter core.Source) {
	c.Clear()
	if !core.Finite(viewW) || !core.Finite(viewH) || viewW <= 0 || viewH <= 0 {
		return
	}
	if st == nil {
		st = &State{}
	}

	drawTrack(c, st, viewW, viewH)
	if st.Player != nil {
		drawPlayer(c, st.Player, st.Time)
	}
	for _, o := range st.Obstacles {
		if finiteBox(o.Box()) {
			c.FillRoundRect(o.X, o.Y, o.W, o.H, roundRadius(6, o.W, o.H), obstaclePaint)
		}
	}
	for _, r := range st.Rivals {
		if finiteBox(r.Box()) {
			c.FillRoundRect(r.X, r.Y, r.W, r.H, roundRadius(10, r.W, r.H), rivalPaint)
		}
	}
	for _, u := range st.Powerups {
		drawPowerup(c, u, jitter)
	}
	drawParticles(c, st.Particles)

	c.Vignette(viewW/2, viewH*0.7, vignetteInner, math.Max(viewW, viewH), vignettePaint)
	drawBanner(c, st, viewW, viewH)
}

func drawTrack(c core.Canvas, st *State, viewW, viewH float64) {
	l := newLanes(st.LaneCount, st.LanePadding, viewW)

	for i := 0; i <= l.count; i++ {
		x := math.Floor(l.left(i)) + 0.5
		c.StrokeLine(x, 0, x, viewH, 2, laneLinePaint)
	}

	offset := math.Mod(st.TrackOffset, dashMeter)
	if !core.Finite(offset) {
		offset = 0
	}
	right := viewW - l.padding
	for i := 0; i < l.count; i++ {
		x := l.left(i) + l.width/2
		if x >= right {
			break
		}
		for y := -dashMeter; y < viewH+dashMeter; y += dashMeter * 2 {
			c.StrokeLine(x, y+offset, x, y+dashMeter+offset, 3, laneDashPaint)
		}
	}
}

// drawPlayer draws the car tilted by its lateral velocity.
func drawPlayer(c core.Canvas, p *Player, now float64) {
	if !finiteBox(p.Box()) {
		return
	}
	tilt := core.ClampF(p.VX/tiltVelocity, -maxTilt, maxTilt)
	if !core.Finite(tilt) {
		tilt = 0
	}
	cx, cy := p.Box().Center()
	rot := rotator(cx, cy, tilt)
	w, h := p.W, p.H

	outline := roundedOutline(w, h, roundRadius(playerRadius, w, h))
	body := make([]core.Point, len(outline), len(outline)+1)
	for i, o := range outline {
		body[i] = rot(o.X, o.Y)
	}
	fill := neonCyan
	if p.GhostActive(now) {
		fill = ghostBodyPaint
	}
	c.FillPolygon(body, fill)
	c.StrokePolyline(append(body, body[0]), 2, outlinePaint)

	if p.TurboActive(now) {
		l1, l2 := rot(-w*0.3, h*0.6), rot(-w*0.45, h*0.95)
		r1, r2 := rot(w*0.3, h*0.6), rot(w*0.45, h*0.95)
		c.StrokeLine(l1.X, l1.Y, l2.X, l2.Y, 4, jetPaint)
		c.StrokeLine(r1.X, r1.Y, r2.X, r2.Y, 4, jetPaint)
	}
}

// roundedOutline returns the outline of a w x h rectangle centered on the
// origin with corners of radius r, clockwise from the top-left arc.
func roundedOutline(w, h, r float64) []core.Point {
	centers := [4]core.Point{
		{X: -w/2 + r, Y: -h/2 + r},
		{X: w/2 - r, Y: -h/2 + r},
		{X: w/2 - r, Y: h/2 - r},
		{X: -w/2 + r, Y: h/2 - r},
	}
	pts := make([]core.Point, 0, 4*(cornerSegments+1))
	for i, c := range centers {
		start := math.Pi + float64(i)*math.Pi/2
		for j := 0; j <= cornerSegments; j++ {
			a := start + float64(j)*math.Pi/2/cornerSegments
			pts = append(pts, core.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
		}
	}
	return pts
}

// rotator maps offsets from (cx, cy) through a rotation by angle.
func rotator(cx, cy, angle float64) func(dx, dy float64) core.Point {
	sin, cos := math.Sincos(angle)
	return func(dx, dy float64) core.Point {
		return core.Point{X: cx + dx*cos - dy*sin, Y: cy + dx*sin + dy*cos}
	}
}

func drawPowerup(c core.Canvas, u Powerup, jitter core.Source) {
	if !finiteBox(u.Box()) {
		return
	}
	cx, cy := u.Box().Center()
	size := math.Max(0, math.Min(u.W, u.H)*0.6)
	if u.Kind == PowerupTurbo {
		c.StrokePolyline(lightning(cx-size/2, cy, cx+size/2, cy, 4, jitter), 3, neonMagenta)
		return
	}
	c.StrokeCircle(cx, cy, size/2, 3, neonCyan)
}

// lightning returns a bolt from (x1, y1) to (x2, y2) whose inner vertices
// are displaced by jitter.
func lightning(x1, y1, x2, y2 float64, segments int, jitter core.Source) []core.Point {
	pts := make([]core.Point, 0, segments+1)
	pts = append(pts, core.Point{X: x1, Y: y1})
	for i := 1; i < segments; i++ {
		t := float64(i) / float64(segments)
		x := x1 + (x2-x1)*t
		y := y1 + (y2-y1)*t
		if jitter != nil {
			x += core.RandRange(jitter, -lightningJitterX, lightningJitterX)
			y += core.RandRange(jitter, -lightningJitterY, lightningJitterY)
		}
		pts = append(pts, core.Point{X: x, Y: y})
	}
	return append(pts, core.Point{X: x2, Y: y2})
}

func drawParticles(c core.Canvas, particles []Particle) {
	for _, part := range particles {
		if !core.Finite(part.X) || !core.Finite(part.Y) || !core.Finite(part.Len) {
			continue
		}
		alpha := core.ClampF(part.Life/particleFadeLife, 0, 1)
		c.StrokeLine(part.X, part.Y, part.X, part.Y+part.Len, 2, tintPaint(part.Tint).WithAlpha(alpha))
	}
}

func tintPaint(t Tint) core.Paint {
	if t == TintMagenta {
		return neonMagenta
	}
	return neonCyan
}

func drawBanner(c core.Canvas, st *State, viewW, viewH float64) {
	cx := viewW / 2
	switch st.Phase {
	case PhaseIdle:
		c.FillText(cx, viewH*0.36, "Neon Velocity", titleFont, core.AlignCenter, bannerPaint)
		c.FillText(cx, viewH*0.42, "Press Enter or Tap to Start", captionFont, core.AlignCenter, bannerPaint)
	case PhaseGameOver:
		c.FillText(cx, viewH*0.4, "Crash! Game Over", crashFont, core.AlignCenter, bannerPaint)
		c.FillText(cx, viewH*0.46, fmt.Sprintf("Score %d  •  Best %d", st.Score, st.HighScore), captionFont, core.AlignCenter, bannerPaint)
		c.FillText(cx, viewH*0.52, "Press Enter or Tap to Retry", captionFont, core.AlignCenter, bannerPaint)
	}
}

// roundRadius limits a corner radius to half the shorter side.
func roundRadius(r, w, h float64) float64 {
	return math.Max(0, math.Min(r, math.Min(w/2, h/2)))
}

func finiteBox(b core.Box) bool {
	return core.Finite(b.X) && core.Finite(b.Y) && core.Finite(b.W) && core.Finite(b.H)
}
