package tui

import (
	"time"

	"github.com/vovakirdan/ringrun/internal/core"
)

// holdOrder fixes the order synthesized releases are emitted in.
var holdOrder = [...]core.Key{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyDown}

// KeyHold turns the press-only key stream of a terminal into press and
// release edges. A key counts as held while presses (including auto-repeat)
// keep arriving. Terminals wait longer before the first repeat than between
// repeats, so a fresh press gets the repeat delay and a repeating key only the
// shorter release delay before a release is synthesized.
type KeyHold struct {
	repeatDelay  time.Duration
	releaseAfter time.Duration
	held         map[core.Key]holdState
}

type holdState struct {
	lastSeen  time.Time
	repeating bool
}

// NewKeyHold creates a tracker. repeatDelay bounds the silence after the first
// press, releaseAfter the silence between auto-repeats.
func NewKeyHold(repeatDelay, releaseAfter time.Duration) *KeyHold {
	return &KeyHold{
		repeatDelay:  max(repeatDelay, releaseAfter),
		releaseAfter: releaseAfter,
		held:         make(map[core.Key]holdState),
	}
}

// Press records a press of k at now and returns the edges to queue.
// The opposite key of the same axis stops being held without a release edge:
// the press already overrides its velocity, and a later release of it would
// stop the new direction too.
func (h *KeyHold) Press(k core.Key, now time.Time) []core.KeyEvent {
	if k == core.KeyNone {
		return nil
	}
	delete(h.held, opposite(k))
	_, held := h.held[k]
	h.held[k] = holdState{lastSeen: now, repeating: held}
	if held {
		return nil
	}
	return []core.KeyEvent{{Key: k, Down: true}}
}

// Expire returns release edges for keys silent for longer than their window.
func (h *KeyHold) Expire(now time.Time) []core.KeyEvent {
	var out []core.KeyEvent
	for _, k := range holdOrder {
		st, ok := h.held[k]
		if !ok {
			continue
		}
		window := h.repeatDelay
		if st.repeating {
			window = h.releaseAfter
		}
		if now.Sub(st.lastSeen) < window {
			continue
		}
		delete(h.held, k)
		out = append(out, core.KeyEvent{Key: k, Down: false})
	}
	return out
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	case core.KeyUp:
		return core.KeyDown
	case core.KeyDown:
		return core.KeyUp
	default:
		return core.KeyNone
	}
}
