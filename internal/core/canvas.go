package core

// Point is a position in world (pixel) units.
type Point struct {
	X, Y float64
}

// TextAlign controls horizontal placement of text relative to its anchor.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
)

// FontWeight selects between the two text styles the game uses.
type FontWeight int

const (
	FontRegular FontWeight = iota
	FontBold
)

// Font describes the text style for FillText.
type Font struct {
	Size   float64 // Nominal size in pixels
	Weight FontWeight
}

// Canvas is the drawing surface the render pass writes to.
// Coordinates are world pixels with the origin at the top-left of the viewport.
// Implementations must ignore non-finite coordinates rather than fail.
type Canvas interface {
	// Clear erases the whole surface.
	Clear()

	// StrokeLine draws a straight segment.
	StrokeLine(x1, y1, x2, y2, width float64, p Paint)

	// FillRoundRect fills an axis-aligned rectangle with rounded corners.
	FillRoundRect(x, y, w, h, radius float64, p Paint)

	// FillPolygon fills a closed convex polygon.
	FillPolygon(pts []Point, p Paint)

	// StrokePolyline draws connected segments through pts.
	StrokePolyline(pts []Point, width float64, p Paint)

	// StrokeCircle draws a ring.
	StrokeCircle(cx, cy, r, width float64, p Paint)

	// FillText draws a single line of text whose baseline-center or
	// baseline-left sits at (x, y) depending on align.
	FillText(x, y float64, text string, f Font, align TextAlign, p Paint)

	// Vignette darkens the surface radially from transparent at inner radius
	// to p at outer radius, centered on (cx, cy).
	Vignette(cx, cy, inner, outer float64, p Paint)
}
