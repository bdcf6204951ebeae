package window

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/vovakirdan/neon-velocity/internal/core"
)

// vignetteRings is how many rings approximate the radial gradient.
const vignetteRings = 16

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whitePixel returns the single-pixel source used for solid path fills.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// ImageCanvas draws onto an ebiten image with anti-aliased vector paths.
type ImageCanvas struct {
	dst        *ebiten.Image
	background color.Color
}

// NewImageCanvas wraps dst. Clear fills it with background.
func NewImageCanvas(dst *ebiten.Image, background color.Color) *ImageCanvas {
	return &ImageCanvas{dst: dst, background: background}
}

// toColor converts a paint to a straight-alpha color.
func toColor(p core.Paint) color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.Alpha8()}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if !core.Finite(v) {
			return false
		}
	}
	return true
}

// Clear fills the image with the background color.
func (c *ImageCanvas) Clear() {
	c.dst.Fill(c.background)
}

// StrokeLine draws a segment.
func (c *ImageCanvas) StrokeLine(x1, y1, x2, y2, width float64, p core.Paint) {
	if !finite(x1, y1, x2, y2, width) {
		return
	}
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), toColor(p), true)
}

// FillRoundRect fills a rounded rectangle.
func (c *ImageCanvas) FillRoundRect(x, y, w, h, r float64, p core.Paint) {
	if !finite(x, y, w, h, r) || w <= 0 || h <= 0 {
		return
	}
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 {
		vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), toColor(p), true)
		return
	}
	c.fill(roundRectPath(float32(x), float32(y), float32(w), float32(h), float32(r)), p)
}

// roundRectPath traces the outline clockwise from the top edge.
func roundRectPath(x, y, w, h, r float32) *vector.Path {
	var path vector.Path
	path.MoveTo(x+r, y)
	path.LineTo(x+w-r, y)
	path.ArcTo(x+w, y, x+w, y+r, r)
	path.LineTo(x+w, y+h-r)
	path.ArcTo(x+w, y+h, x+w-r, y+h, r)
	path.LineTo(x+r, y+h)
	path.ArcTo(x, y+h, x, y+h-r, r)
	path.LineTo(x, y+r)
	path.ArcTo(x, y, x+r, y, r)
	path.Close()
	return &path
}

// FillPolygon fills a convex polygon.
func (c *ImageCanvas) FillPolygon(pts []core.Point, p core.Paint) {
	if len(pts) < 3 || !finitePoints(pts) {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()
	c.fill(&path, p)
}

// fill rasterizes a closed path with a solid paint.
func (c *ImageCanvas) fill(path *vector.Path, p core.Paint) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	col := toColor(p)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(col.R) / 0xff
		vs[i].ColorG = float32(col.G) / 0xff
		vs[i].ColorB = float32(col.B) / 0xff
		vs[i].ColorA = float32(col.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModeStraightAlpha
	op.AntiAlias = true
	c.dst.DrawTriangles(vs, is, whitePixel(), op)
}

func finitePoints(pts []core.Point) bool {
	for _, pt := range pts {
		if !finite(pt.X, pt.Y) {
			return false
		}
	}
	return true
}

// StrokePolyline draws connected segments.
func (c *ImageCanvas) StrokePolyline(pts []core.Point, width float64, p core.Paint) {
	if len(pts) < 2 || !finitePoints(pts) || !finite(width) {
		return
	}
	for i := 1; i < len(pts); i++ {
		c.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, p)
	}
}

// StrokeCircle draws a ring.
func (c *ImageCanvas) StrokeCircle(cx, cy, r, width float64, p core.Paint) {
	if !finite(cx, cy, r, width) || r <= 0 {
		return
	}
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), toColor(p), true)
}

// FillText draws text with its baseline at y.
func (c *ImageCanvas) FillText(x, y float64, s string, f core.Font, align core.TextAlign, p core.Paint) {
	if !finite(x, y) || s == "" {
		return
	}
	ff, err := face(f)
	if err != nil {
		return
	}
	w := font.MeasureString(ff, s).Ceil()
	text.Draw(c.dst, s, ff, textX(x, w, align), int(math.Round(y)), toColor(p))
}

// textX returns the pen start for text of width w anchored at x.
func textX(x float64, w int, align core.TextAlign) int {
	if align == core.AlignCenter {
		return int(math.Round(x - float64(w)/2))
	}
	return int(math.Round(x))
}

// Vignette approximates a radial gradient with rings whose alpha grows
// from zero at inner to p's alpha at outer.
func (c *ImageCanvas) Vignette(cx, cy, inner, outer float64, p core.Paint) {
	if !finite(cx, cy, inner, outer) || outer <= inner {
		return
	}
	for _, ring := range vignetteSteps(inner, outer, p.A) {
		vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(ring.r), float32(ring.width), toColor(p.WithAlpha(ring.alpha)), true)
	}
	// Beyond the outer radius the corners get the full alpha.
	c.fillOutside(cx, cy, outer, toColor(p))
}

type vignetteRing struct {
	r, width, alpha float64
}

// vignetteSteps splits [inner, outer] into rings. Each ring's alpha is the
// gradient's value at its center radius.
func vignetteSteps(inner, outer, alpha float64) []vignetteRing {
	step := (outer - inner) / vignetteRings
	rings := make([]vignetteRing, vignetteRings)
	for i := range rings {
		t := (float64(i) + 0.5) / vignetteRings
		rings[i] = vignetteRing{
			r:     inner + step*(float64(i)+0.5),
			width: step,
			alpha: alpha * t,
		}
	}
	return rings
}

// fillOutside covers the area outside the circle of radius r that lies
// within the image.
func (c *ImageCanvas) fillOutside(cx, cy, r float64, col color.NRGBA) {
	b := c.dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	corners := [4]core.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	far := 0.0
	for _, pt := range corners {
		far = math.Max(far, math.Hypot(pt.X-cx, pt.Y-cy))
	}
	if far <= r {
		return
	}
	width := far - r
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r+width/2), float32(width), col, true)
}
