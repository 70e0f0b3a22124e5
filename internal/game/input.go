package game

import "github.com/vovakirdan/ringrun/internal/core"

// Tracker turns direction key edges into the ball's velocity.
// Each component is always one of -speed, 0 or +speed.
type Tracker struct {
	speed float64
	vel   core.Vec2
}

// NewTracker creates a tracker that moves the ball by speed units per frame.
func NewTracker(speed float64) *Tracker {
	return &Tracker{speed: speed}
}

// Apply updates the velocity for one key edge. Pressing a key sets its axis;
// releasing any key of an axis stops that axis, even if the other key of the
// axis was pressed later. Unknown keys are ignored.
func (t *Tracker) Apply(ev core.KeyEvent) {
	if !ev.Down {
		switch {
		case ev.Key.Horizontal():
			t.vel.X = 0
		case ev.Key.Vertical():
			t.vel.Y = 0
		}
		return
	}

	switch ev.Key {
	case core.KeyRight:
		t.vel.X = t.speed
	case core.KeyLeft:
		t.vel.X = -t.speed
	case core.KeyUp:
		t.vel.Y = t.speed
	case core.KeyDown:
		t.vel.Y = -t.speed
	}
}

// Velocity returns the current per-frame displacement.
func (t *Tracker) Velocity() core.Vec2 {
	return t.vel
}
