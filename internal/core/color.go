package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Paint is a straight (non-premultiplied) RGB color with an alpha in [0, 1].
type Paint struct {
	R, G, B uint8
	A       float64
}

// RGB returns an opaque paint.
func RGB(r, g, b uint8) Paint {
	return Paint{R: r, G: g, B: b, A: 1}
}

// WithAlpha returns a copy of the paint with the given alpha, clamped to [0, 1].
func (p Paint) WithAlpha(a float64) Paint {
	if !Finite(a) {
		a = 0
	}
	p.A = ClampF(a, 0, 1)
	return p
}

// Alpha8 returns the alpha as a byte.
func (p Paint) Alpha8() uint8 {
	return uint8(ClampF(p.A, 0, 1)*255 + 0.5)
}

// palette holds the approximate RGB value of each terminal color.
var palette = []struct {
	color   Color
	r, g, b int
}{
	{ColorRed, 205, 0, 0},
	{ColorGreen, 0, 205, 0},
	{ColorYellow, 205, 205, 0},
	{ColorBlue, 0, 0, 238},
	{ColorMagenta, 205, 0, 205},
	{ColorCyan, 0, 205, 205},
	{ColorWhite, 229, 229, 229},
	{ColorBrightRed, 255, 0, 0},
	{ColorBrightGreen, 0, 255, 0},
	{ColorBrightGreen, 135, 255, 0}, // Chartreuse; keeps lime off yellow
	{ColorBrightYellow, 255, 255, 0},
	{ColorBrightBlue, 92, 92, 255},
	{ColorBrightMagenta, 255, 0, 255},
	{ColorBrightCyan, 0, 255, 255},
	{ColorBrightWhite, 255, 255, 255},
	{ColorOrange, 255, 135, 0},
	{ColorGray, 138, 138, 138},
}

// Nearest maps the paint to the closest palette color by squared RGB distance.
// Faint paints (alpha below 0.2) map to gray.
func (p Paint) Nearest() Color {
	if p.A < 0.2 {
		return ColorGray
	}
	best := ColorDefault
	bestDist := -1
	for _, e := range palette {
		dr := int(p.R) - e.r
		dg := int(p.G) - e.g
		db := int(p.B) - e.b
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = e.color
			bestDist = d
		}
	}
	return best
}
