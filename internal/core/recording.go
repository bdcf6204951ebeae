package core

import "fmt"

// DrawOp names a Canvas method.
type DrawOp string

const (
	OpClear          DrawOp = "clear"
	OpStrokeLine     DrawOp = "stroke_line"
	OpFillRoundRect  DrawOp = "fill_round_rect"
	OpFillPolygon    DrawOp = "fill_polygon"
	OpStrokePolyline DrawOp = "stroke_polyline"
	OpStrokeCircle   DrawOp = "stroke_circle"
	OpFillText       DrawOp = "fill_text"
	OpVignette       DrawOp = "vignette"
)

// DrawCall is one recorded Canvas invocation.
type DrawCall struct {
	Op    DrawOp
	Args  []float64 // Numeric arguments in call order (polygon points flattened)
	Text  string
	Paint Paint
}

// String formats the call for test failure messages.
func (c DrawCall) String() string {
	if c.Text != "" {
		return fmt.Sprintf("%s(%q, %v)", c.Op, c.Text, c.Args)
	}
	return fmt.Sprintf("%s(%v)", c.Op, c.Args)
}

// RecordingCanvas captures draw calls instead of drawing.
// Used by render tests to inspect what a frame would draw.
type RecordingCanvas struct {
	Calls []DrawCall
}

// Ensure RecordingCanvas implements Canvas
var _ Canvas = (*RecordingCanvas)(nil)

func (c *RecordingCanvas) record(op DrawOp, p Paint, text string, args ...float64) {
	c.Calls = append(c.Calls, DrawCall{Op: op, Args: args, Text: text, Paint: p})
}

// Clear records a clear and drops previously recorded calls.
func (c *RecordingCanvas) Clear() {
	c.Calls = c.Calls[:0]
	c.record(OpClear, Paint{}, "")
}

func (c *RecordingCanvas) StrokeLine(x1, y1, x2, y2, width float64, p Paint) {
	c.record(OpStrokeLine, p, "", x1, y1, x2, y2, width)
}

func (c *RecordingCanvas) FillRoundRect(x, y, w, h, radius float64, p Paint) {
	c.record(OpFillRoundRect, p, "", x, y, w, h, radius)
}

func (c *RecordingCanvas) FillPolygon(pts []Point, p Paint) {
	c.record(OpFillPolygon, p, "", flatten(pts)...)
}

func (c *RecordingCanvas) StrokePolyline(pts []Point, width float64, p Paint) {
	c.record(OpStrokePolyline, p, "", append(flatten(pts), width)...)
}

func (c *RecordingCanvas) StrokeCircle(cx, cy, r, width float64, p Paint) {
	c.record(OpStrokeCircle, p, "", cx, cy, r, width)
}

func (c *RecordingCanvas) FillText(x, y float64, text string, f Font, align TextAlign, p Paint) {
	c.record(OpFillText, p, text, x, y, f.Size)
}

func (c *RecordingCanvas) Vignette(cx, cy, inner, outer float64, p Paint) {
	c.record(OpVignette, p, "", cx, cy, inner, outer)
}

// Count returns how many calls of the given op were recorded.
func (c *RecordingCanvas) Count(op DrawOp) int {
	n := 0
	for _, call := range c.Calls {
		if call.Op == op {
			n++
		}
	}
	return n
}

// Texts returns the text of every FillText call in order.
func (c *RecordingCanvas) Texts() []string {
	var out []string
	for _, call := range c.Calls {
		if call.Op == OpFillText {
			out = append(out, call.Text)
		}
	}
	return out
}

// NonFinite returns the first call that carries a NaN or infinite argument.
func (c *RecordingCanvas) NonFinite() (DrawCall, bool) {
	for _, call := range c.Calls {
		for _, a := range call.Args {
			if !Finite(a) {
				return call, true
			}
		}
		if !Finite(call.Paint.A) {
			return call, true
		}
	}
	return DrawCall{}, false
}

func flatten(pts []Point) []float64 {
	out := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		out = append(out, p.X, p.Y)
	}
	return out
}
