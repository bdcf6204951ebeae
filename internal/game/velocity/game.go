package velocity

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/core"
)

// HighScoreStore persists the best score in a named slot.
type HighScoreStore interface {
	HighScore(slot string) (int, error)
	SaveHighScore(slot string, value int) error
}

// Default viewport when the driver does not supply one.
const (
	DefaultViewW = 480
	DefaultViewH = 800
)

// Game owns one session: the state, its randomness and the high-score handoff.
// A driver calls Step then Render once per frame from a single goroutine.
type Game struct {
	cfg      config.VelocityConfig
	state    State
	seed     int64
	src      core.Source // Spawns and particles
	jitter   core.Source // Render-only randomness
	viewport core.Viewport
	store    HighScoreStore
	logger   *log.Logger

	paused      bool
	pendingBest bool    // High score raised but not yet written
	sinceFlush  float64 // Run seconds since the last write
}

// Option configures a Game.
type Option func(*Game)

// WithStore sets the high-score store. Without one the best score lives
// only for the process.
func WithStore(s HighScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithLogger sets the logger for run events and store failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSeed makes the session deterministic. Render jitter gets its own
// stream so drawing never shifts the simulation.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.seed = seed
		g.src = rand.New(rand.NewSource(seed))
		g.jitter = rand.New(rand.NewSource(seed + 1))
	}
}

// WithSource sets the simulation randomness directly.
func WithSource(src core.Source) Option {
	return func(g *Game) { g.src = src }
}

// WithViewport sets the viewport queried on every step and render.
func WithViewport(v core.Viewport) Option {
	return func(g *Game) { g.viewport = v }
}

// New creates a game in the idle phase.
func New(cfg config.VelocityConfig, opts ...Option) *Game {
	seed := time.Now().UnixNano()
	g := &Game{
		cfg:      cfg,
		seed:     seed,
		src:      rand.New(rand.NewSource(seed)),
		jitter:   rand.New(rand.NewSource(seed + 1)),
		viewport: core.FixedViewport{W: DefaultViewW, H: DefaultViewH},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Seed returns the seed the session's randomness was created from. It
// means nothing for the simulation when WithSource replaced the source.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.VelocityConfig {
	return g.cfg
}

// Reset returns to the idle phase with a fresh player and empty track, and
// reloads the high score. A pending best is written first.
func (g *Game) Reset() {
	g.Flush()
	vw, vh := g.viewport.Size()
	g.state = State{
		Phase:       PhaseIdle,
		Level:       1,
		HighScore:   g.loadHighScore(),
		LaneCount:   g.cfg.Track.LaneCount,
		LanePadding: g.cfg.Track.LanePadding,
		Player:      NewPlayer(g.cfg, vw, vh),
		ViewW:       vw,
		ViewH:       vh,
	}
	g.paused = false
	g.sinceFlush = 0
}

// Start resets and begins a run. It is ignored while a run is active.
func (g *Game) Start() bool {
	if g.state.Phase == PhaseRunning {
		return false
	}
	g.Reset()
	g.state.Phase = PhaseRunning
	g.logger.Info("run started", "seed", g.seed, "lanes", g.state.LaneCount, "view", [2]float64{g.state.ViewW, g.state.ViewH})
	return true
}

// Advance runs one simulation step without persistence.
func (g *Game) Advance(in core.Input, dt float64) StepEvents {
	vw, vh := g.viewport.Size()
	return advance(&g.state, g.cfg, in, dt, vw, vh, g.src)
}

// Step handles start and pause requests, advances one step and hands a
// raised high score to the store.
func (g *Game) Step(in core.Input, dt float64) StepEvents {
	if in.Start && g.state.Phase != PhaseRunning {
		g.Start()
		return StepEvents{}
	}
	if in.Pause && g.state.Phase == PhaseRunning {
		g.paused = !g.paused
	}
	if g.paused {
		return StepEvents{}
	}

	ev := g.Advance(in, dt)
	if ev.NewBest {
		g.pendingBest = true
	}
	if g.pendingBest {
		g.sinceFlush += clampStep(dt, g.cfg.Track.MaxStep)
	}

	if ev.Crashed {
		g.logger.Info("game over",
			"score", g.state.Score,
			"time", g.state.Time,
			"overtakes", g.state.Overtakes,
			"hit", ev.CrashedOn)
		if g.pendingBest {
			g.logger.Info("new high score", "score", g.state.HighScore)
		}
		g.Flush()
	} else if g.pendingBest && g.sinceFlush >= g.cfg.Persistence.FlushInterval {
		g.Flush()
	}
	return ev
}

// Flush writes a pending high score. Write failures are logged and dropped.
func (g *Game) Flush() {
	if !g.pendingBest {
		return
	}
	g.pendingBest = false
	g.sinceFlush = 0
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.cfg.Persistence.Slot, g.state.HighScore); err != nil {
		g.logger.Warn("save high score", "slot", g.cfg.Persistence.Slot, "err", err)
	}
}

func (g *Game) loadHighScore() int {
	if g.store == nil {
		return g.state.HighScore
	}
	v, err := g.store.HighScore(g.cfg.Persistence.Slot)
	if err != nil {
		g.logger.Warn("load high score", "slot", g.cfg.Persistence.Slot, "err", err)
		return 0
	}
	return v
}

// Render draws the current state onto c.
func (g *Game) Render(c core.Canvas) {
	vw, vh := g.viewport.Size()
	Render(c, &g.state, vw, vh, g.jitter)
}

// State returns the live state. Callers must not modify it.
func (g *Game) State() *State {
	return &g.state
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Paused reports whether a running game is paused.
func (g *Game) Paused() bool {
	return g.paused
}
