package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-velocity/internal/core"
)

// Keyboard bindings. Steering keys are read as levels; the rest as edges.
var (
	steerLeftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	steerRightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	edgeKeys       = map[ebiten.Key]core.Action{
		ebiten.KeySpace:       core.ActionUsePower,
		ebiten.KeyEnter:       core.ActionStart,
		ebiten.KeyNumpadEnter: core.ActionStart,
		ebiten.KeyP:           core.ActionPause,
		ebiten.KeyEscape:      core.ActionPause,
		ebiten.KeyQ:           core.ActionQuit,
	}
)

// pointer tracks the primary drag: the left mouse button or the first touch.
type pointer struct {
	active  bool
	touch   bool
	touchID ebiten.TouchID
	lastX   int
}

// poller reads ebiten's input state once per tick into an InputState.
type poller struct {
	state *core.InputState
	ptr   pointer
}

func newPoller() *poller {
	return &poller{state: core.NewInputState()}
}

// poll records this tick's input. running tells whether a tap should start
// a run. It reports whether quit was requested.
func (p *poller) poll(now time.Time, running bool) (quit bool) {
	p.state.SetHeld(core.ActionSteerLeft, anyPressed(steerLeftKeys))
	p.state.SetHeld(core.ActionSteerRight, anyPressed(steerRightKeys))

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		a, ok := edgeKeys[k]
		if !ok {
			continue
		}
		if a == core.ActionQuit {
			quit = true
			continue
		}
		p.state.Press(a, now)
	}

	p.pollMouse(now, running)
	p.pollTouches(now, running)
	return quit
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (p *poller) pollMouse(now time.Time, running bool) {
	x, _ := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if !running {
			p.state.Press(core.ActionStart, now)
		}
		p.ptr = pointer{active: true, lastX: x}
	case p.ptr.active && !p.ptr.touch:
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			p.ptr.active = false
			return
		}
		p.state.Drag(float64(x - p.ptr.lastX))
		p.ptr.lastX = x
	}
}

// pollTouches handles tap to start, a second finger to use the power-up and
// drag on the first finger to steer.
func (p *poller) pollTouches(now time.Time, running bool) {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if !running {
			p.state.Press(core.ActionStart, now)
		}
		if len(ebiten.AppendTouchIDs(nil)) >= 2 {
			p.state.Press(core.ActionUsePower, now)
			continue
		}
		x, _ := ebiten.TouchPosition(id)
		p.ptr = pointer{active: true, touch: true, touchID: id, lastX: x}
	}

	if !p.ptr.active || !p.ptr.touch {
		return
	}
	if inpututil.IsTouchJustReleased(p.ptr.touchID) {
		p.ptr.active = false
		return
	}
	x, _ := ebiten.TouchPosition(p.ptr.touchID)
	p.state.Drag(float64(x - p.ptr.lastX))
	p.ptr.lastX = x
}
