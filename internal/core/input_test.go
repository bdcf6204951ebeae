package core

import (
	"testing"
	"time"
)

func TestInputSteer(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		expected float64
	}{
		{"none", Input{}, 0},
		{"left", Input{SteerLeft: true}, -1},
		{"right", Input{SteerRight: true}, 1},
		{"both cancel", Input{SteerLeft: true, SteerRight: true}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Steer(); got != tc.expected {
				t.Errorf("Steer() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestInputStateHoldWindow(t *testing.T) {
	s := NewInputState()
	t0 := time.Unix(1000, 0)

	s.Press(ActionSteerLeft, t0)

	if in := s.Snapshot(t0.Add(50 * time.Millisecond)); !in.SteerLeft {
		t.Error("Steer should be held inside the hold window")
	}
	// Level signals survive repeated snapshots
	if in := s.Snapshot(t0.Add(100 * time.Millisecond)); !in.SteerLeft {
		t.Error("Steer should still be held on the next snapshot")
	}
	if in := s.Snapshot(t0.Add(DefaultHoldWindow)); in.SteerLeft {
		t.Error("Steer should be released once the hold window has elapsed")
	}

	// Key repeat extends the hold
	s.Press(ActionSteerLeft, t0.Add(time.Second))
	if in := s.Snapshot(t0.Add(time.Second + 100*time.Millisecond)); !in.SteerLeft {
		t.Error("Repeated press should extend the hold")
	}
}

func TestInputStateSetHeld(t *testing.T) {
	s := NewInputState()
	now := time.Unix(0, 0)

	s.SetHeld(ActionSteerRight, true)
	if in := s.Snapshot(now.Add(time.Hour)); !in.SteerRight {
		t.Error("SetHeld(true) should hold regardless of time")
	}
	s.SetHeld(ActionSteerRight, false)
	if in := s.Snapshot(now); in.SteerRight {
		t.Error("SetHeld(false) should release")
	}
}

func TestInputStateUsePowerIsOneShot(t *testing.T) {
	s := NewInputState()
	now := time.Unix(0, 0)

	s.Press(ActionUsePower, now)
	s.Press(ActionUsePower, now) // Repeat before consumption still yields one edge

	if in := s.Snapshot(now); !in.UsePower {
		t.Fatal("First snapshot should carry the use-power edge")
	}
	if in := s.Snapshot(now); in.UsePower {
		t.Error("Use-power edge should be consumed by the first snapshot")
	}
}

func TestInputStateStartAndPauseLatch(t *testing.T) {
	s := NewInputState()
	now := time.Unix(0, 0)

	s.Press(ActionStart, now)
	s.Press(ActionPause, now)
	in := s.Snapshot(now)
	if !in.Start || !in.Pause {
		t.Errorf("Expected start and pause latched, got %+v", in)
	}
	in = s.Snapshot(now)
	if in.Start || in.Pause {
		t.Errorf("Latches should clear after snapshot, got %+v", in)
	}
}

func TestInputStateDrag(t *testing.T) {
	s := NewInputState()
	now := time.Unix(0, 0)

	s.Drag(12)
	s.Drag(-4)
	if in := s.Snapshot(now); in.DragDX != 8 {
		t.Errorf("DragDX = %f, expected 8", in.DragDX)
	}
	if in := s.Snapshot(now); in.DragDX != 0 {
		t.Errorf("Drag should be consumed, got %f", in.DragDX)
	}
}

func TestInputStateReset(t *testing.T) {
	s := NewInputState()
	now := time.Unix(0, 0)

	s.Press(ActionSteerLeft, now)
	s.SetHeld(ActionSteerRight, true)
	s.Press(ActionUsePower, now)
	s.Drag(5)
	s.Reset()

	in := s.Snapshot(now)
	if in != (Input{}) {
		t.Errorf("Reset should clear everything, got %+v", in)
	}
}

func TestActionString(t *testing.T) {
	if ActionUsePower.String() != "UsePower" {
		t.Errorf("unexpected name %q", ActionUsePower.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown actions should stringify as Unknown")
	}
}
