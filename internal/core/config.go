package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels (window)
	ScreenH  int   // Screen height in characters (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport supplies the current drawable size in world pixels.
// The game queries it fresh on every step and render.
type Viewport interface {
	Size() (w, h float64)
}

// FixedViewport is a Viewport of constant size.
type FixedViewport struct {
	W, H float64
}

// Size returns the fixed dimensions.
func (v FixedViewport) Size() (float64, float64) {
	return v.W, v.H
}

// ViewportFunc adapts a function to the Viewport interface.
type ViewportFunc func() (float64, float64)

// Size calls f.
func (f ViewportFunc) Size() (float64, float64) {
	return f()
}
