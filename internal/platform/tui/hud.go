package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ringrun/internal/core"
)

// ScoreLabel is the terminal score display. It keeps the latest text for the
// header line.
type ScoreLabel struct {
	text string
}

// SetText replaces the label text.
func (l *ScoreLabel) SetText(text string) {
	l.text = text
}

// Text returns the label text.
func (l *ScoreLabel) Text() string {
	return l.text
}

// Announcer queues announcements until the player acknowledges them.
// While one is pending the model stops advancing frames.
type Announcer struct {
	pending []string
}

// Announce queues a message.
func (a *Announcer) Announce(msg string) {
	a.pending = append(a.pending, msg)
}

// Current returns the announcement waiting for acknowledgment, if any.
func (a *Announcer) Current() (string, bool) {
	if len(a.pending) == 0 {
		return "", false
	}
	return a.pending[0], true
}

// Ack dismisses the current announcement.
func (a *Announcer) Ack() {
	if len(a.pending) > 0 {
		a.pending = a.pending[1:]
	}
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	roundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 4).
			Align(lipgloss.Center)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderHeader draws the score line above the field.
func renderHeader(score string, state core.GameState, width int) string {
	left := headerStyle.Render(score)
	right := ""
	if state.Rounds > 0 {
		right = roundStyle.Render(fmt.Sprintf("round %d", state.Rounds+1))
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

// renderModal centers an announcement box on an otherwise empty screen.
func renderModal(msg string, width, height int) string {
	box := modalStyle.Render(msg + "\n\n" + hintStyle.Render("press enter to continue"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// drawPaused overlays a pause box in the middle of the field.
func drawPaused(s *core.Screen) {
	const text = "PAUSED"
	w, h := len(text)+4, 3
	r := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(r, ' ')
	s.DrawBox(r)
	s.DrawTextCentered(r.Y+1, text)
}
