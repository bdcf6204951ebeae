package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionSteerLeft         // Left arrow, A - level triggered
	ActionSteerRight        // Right arrow, D - level triggered
	ActionUsePower          // Space, two-finger tap - edge triggered
	ActionStart             // Enter, tap - start or retry a run
	ActionPause             // P - pause/unpause
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSteerLeft:
		return "SteerLeft"
	case ActionSteerRight:
		return "SteerRight"
	case ActionUsePower:
		return "UsePower"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is the snapshot of control signals read once per simulation step.
type Input struct {
	SteerLeft  bool    // Held
	SteerRight bool    // Held
	UsePower   bool    // One-shot: true for exactly one snapshot per press
	Start      bool    // One-shot start/retry request
	Pause      bool    // One-shot pause toggle
	DragDX     float64 // Direct horizontal drag in world pixels since last snapshot
}

// Steer returns the net steering direction: -1, 0 or +1.
// Both directions held cancel out.
func (in Input) Steer() float64 {
	s := 0.0
	if in.SteerRight {
		s++
	}
	if in.SteerLeft {
		s--
	}
	return s
}

// DefaultHoldWindow is how long a steer key counts as held after its last
// press when the backend cannot report key releases.
const DefaultHoldWindow = 150 * time.Millisecond

// InputState collects asynchronous input events and turns them into one
// Input snapshot per step. Event handlers write here; the simulation only
// ever sees the snapshot, never this struct.
//
// Steering is level triggered. Backends that report releases call SetHeld;
// backends that only report presses (terminals) call Press and rely on the
// hold window. UsePower, Start and Pause are latched and cleared by Snapshot.
type InputState struct {
	HoldWindow time.Duration

	held      map[Action]bool
	lastPress map[Action]time.Time
	latched   map[Action]bool
	dragDX    float64
}

// NewInputState creates an input state with the default hold window.
func NewInputState() *InputState {
	return &InputState{
		HoldWindow: DefaultHoldWindow,
		held:       make(map[Action]bool),
		lastPress:  make(map[Action]time.Time),
		latched:    make(map[Action]bool),
	}
}

// Press records a key press or key repeat at time now.
func (s *InputState) Press(a Action, now time.Time) {
	switch a {
	case ActionSteerLeft, ActionSteerRight:
		s.lastPress[a] = now
	case ActionUsePower, ActionStart, ActionPause:
		s.latched[a] = true
	}
}

// SetHeld sets the level state of a steering action explicitly.
func (s *InputState) SetHeld(a Action, held bool) {
	s.held[a] = held
}

// Drag accumulates a direct horizontal displacement in world pixels.
func (s *InputState) Drag(dx float64) {
	if Finite(dx) {
		s.dragDX += dx
	}
}

// Snapshot returns the input for one step and consumes every latched edge
// and the accumulated drag.
func (s *InputState) Snapshot(now time.Time) Input {
	in := Input{
		SteerLeft:  s.isHeld(ActionSteerLeft, now),
		SteerRight: s.isHeld(ActionSteerRight, now),
		UsePower:   s.latched[ActionUsePower],
		Start:      s.latched[ActionStart],
		Pause:      s.latched[ActionPause],
		DragDX:     s.dragDX,
	}
	for k := range s.latched {
		delete(s.latched, k)
	}
	s.dragDX = 0
	return in
}

// Reset drops all held keys, latches and drag.
func (s *InputState) Reset() {
	for k := range s.held {
		delete(s.held, k)
	}
	for k := range s.lastPress {
		delete(s.lastPress, k)
	}
	for k := range s.latched {
		delete(s.latched, k)
	}
	s.dragDX = 0
}

func (s *InputState) isHeld(a Action, now time.Time) bool {
	if s.held[a] {
		return true
	}
	t, ok := s.lastPress[a]
	if !ok {
		return false
	}
	return now.Sub(t) < s.HoldWindow
}
