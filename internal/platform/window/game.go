// Package window runs Neon Velocity in a desktop window through ebiten.
// World pixels map one to one onto the window's logical pixels.
package window

import (
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/core"
	"github.com/vovakirdan/neon-velocity/internal/game/velocity"
)

// Default window size in logical pixels.
const (
	DefaultWidth  = 480
	DefaultHeight = 800
)

// background is the near-black asphalt behind the track.
var background = color.NRGBA{R: 0x0b, G: 0x0b, B: 0x16, A: 0xff}

// App is the ebiten.Game for a Neon Velocity session.
type App struct {
	game   *velocity.Game
	input  *poller
	logger *log.Logger
	tps    int
	w, h   int
	canvas *ImageCanvas
	screen *ebiten.Image
}

// New creates the app and its game. The game's viewport follows the
// window's layout size, so options passed here must not set one.
func New(cfg config.VelocityConfig, tps int, logger *log.Logger, opts ...velocity.Option) *App {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	if logger == nil {
		logger = log.Default()
	}
	a := &App{
		input:  newPoller(),
		logger: logger,
		tps:    tps,
		w:      DefaultWidth,
		h:      DefaultHeight,
	}
	opts = append(opts,
		velocity.WithLogger(logger),
		velocity.WithViewport(core.ViewportFunc(a.viewSize)),
	)
	a.game = velocity.New(cfg, opts...)
	return a
}

func (a *App) viewSize() (float64, float64) {
	return float64(a.w), float64(a.h)
}

// Game returns the session's game.
func (a *App) Game() *velocity.Game {
	return a.game
}

// Update advances the game by one fixed tick.
func (a *App) Update() error {
	if a.input.poll(time.Now(), a.game.Phase() == velocity.PhaseRunning) {
		a.game.Flush()
		return ebiten.Termination
	}
	a.game.Step(a.input.state.Snapshot(time.Now()), 1/float64(a.tps))
	return nil
}

// Draw renders the game onto the window.
func (a *App) Draw(screen *ebiten.Image) {
	if a.canvas == nil || a.screen != screen {
		a.canvas = NewImageCanvas(screen, background)
		a.screen = screen
	}
	a.game.Render(a.canvas)
	drawHUD(a.canvas, a.game.HUD())
}

var (
	hudFont  = core.Font{Size: 14}
	hudPaint = core.RGB(0xe6, 0xf7, 0xff)
)

// drawHUD writes the HUD fields along the top edge.
func drawHUD(c core.Canvas, h velocity.HUD) {
	parts := make([]string, 0, 7)
	for _, f := range h.Fields() {
		parts = append(parts, f[0]+" "+f[1])
	}
	if h.Paused {
		parts = append(parts, "PAUSED")
	}
	c.FillText(8, 20, strings.Join(parts, "   "), hudFont, core.AlignLeft, hudPaint)
}

// Layout uses the outside size directly so the track fills the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.w = max(1, outsideWidth)
	a.h = max(1, outsideHeight)
	return a.w, a.h
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.VelocityConfig, tps int, logger *log.Logger, opts ...velocity.Option) error {
	app := New(cfg, tps, logger, opts...)

	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetWindowTitle("Neon Velocity")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(240, 320, -1, -1)
	ebiten.SetTPS(app.tps)

	err := ebiten.RunGame(app)
	// Closing the window skips Update's quit path.
	app.game.Flush()
	return err
}
