package core

// Key identifies one of the four direction keys that steer the ball.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	default:
		return "None"
	}
}

// Horizontal reports whether the key drives the x axis.
func (k Key) Horizontal() bool {
	return k == KeyLeft || k == KeyRight
}

// Vertical reports whether the key drives the y axis.
func (k Key) Vertical() bool {
	return k == KeyUp || k == KeyDown
}

// KeyEvent is a single key-down or key-up edge delivered by a host.
type KeyEvent struct {
	Key  Key
	Down bool // true for press, false for release
}

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionPause        // P - pause/unpause game
	ActionAck          // Enter, Space, Esc - acknowledge an announcement
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionAck:
		return "Ack"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the host observed between two frames:
// direction key edges in arrival order and the actions that were triggered.
type InputFrame struct {
	// Keys holds key edges in the order the host received them.
	Keys []KeyEvent

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Press queues a key-down edge.
func (f *InputFrame) Press(k Key) {
	f.Keys = append(f.Keys, KeyEvent{Key: k, Down: true})
}

// Release queues a key-up edge.
func (f *InputFrame) Release(k Key) {
	f.Keys = append(f.Keys, KeyEvent{Key: k, Down: false})
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets keys and actions for the next frame.
func (f *InputFrame) Clear() {
	f.Keys = f.Keys[:0]
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
