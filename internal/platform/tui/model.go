package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-velocity/internal/config"
	"github.com/vovakirdan/neon-velocity/internal/core"
	"github.com/vovakirdan/neon-velocity/internal/game/velocity"
)

// chromeRows is the number of terminal rows taken by the HUD and help bars.
const chromeRows = 2

// Model is the Bubble Tea model for a Neon Velocity session.
type Model struct {
	game     *velocity.Game
	screen   *core.Screen
	canvas   *ScreenCanvas
	input    *core.InputState
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int
	width    int
	lastTick time.Time
	dragging bool
	dragX    int
	quitting bool
}

// NewModel creates the model and its game. The game's viewport tracks the
// terminal size, so options passed here must not set one.
func NewModel(cfg config.VelocityConfig, rc core.RuntimeConfig, logger *log.Logger, opts ...velocity.Option) Model {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(rc.ScreenW, playRows(rc.ScreenH))
	canvas := NewScreenCanvas(screen)

	opts = append(opts,
		velocity.WithLogger(logger),
		velocity.WithViewport(core.ViewportFunc(canvas.ViewSize)),
	)
	// Zero keeps the game's time-based seed.
	if rc.Seed != 0 {
		opts = append(opts, velocity.WithSeed(rc.Seed))
	}

	return Model{
		game:     velocity.New(cfg, opts...),
		screen:   screen,
		canvas:   canvas,
		input:    core.NewInputState(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger,
		tickRate: rc.TickRate,
		width:    rc.ScreenW,
	}
}

func playRows(h int) int {
	return max(1, h-chromeRows)
}

// Game returns the session's game.
func (m Model) Game() *velocity.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records a key press. Terminals do not report releases, so
// steering is held for the input hold window after each press or repeat.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.game.Flush()
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Press(action, time.Now())
	}
	return m, nil
}

// handleMouse maps a left click to start and a left drag to direct steering.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if m.game.Phase() != velocity.PhaseRunning {
			m.input.Press(core.ActionStart, time.Now())
		}
		m.dragging = true
		m.dragX = msg.X
	case tea.MouseActionMotion:
		if m.dragging {
			m.input.Drag(float64(msg.X-m.dragX) * CellW)
			m.dragX = msg.X
		}
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

// handleResize follows the terminal size. The run continues; the game picks
// up the new viewport on its next step.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
// The game clamps long gaps itself.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.game.Step(m.input.Snapshot(now), dt)

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderHUD(m.game.HUD(), m.width),
		RenderScreen(m.screen),
		m.help.View(m.keys),
	)
}

// Run starts a terminal session and blocks until the player quits.
func Run(cfg config.VelocityConfig, rc core.RuntimeConfig, logger *log.Logger, opts ...velocity.Option) error {
	model := NewModel(cfg, rc, logger, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to steer
	)

	_, err := p.Run()
	// Covers exits that bypass the quit key.
	model.game.Flush()
	return err
}
