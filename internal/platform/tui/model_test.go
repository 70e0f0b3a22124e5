package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ringrun/internal/config"
	"github.com/vovakirdan/ringrun/internal/core"
	"github.com/vovakirdan/ringrun/internal/scene"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// testConfig is the default game with ring pickups disabled, so scores only
// count frames.
func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Collision.Ring = 0
	return cfg
}

func newTestModel(t *testing.T, cfg config.Config) Model {
	t.Helper()
	m := NewModel(Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:    80,
			ScreenH:    24,
			CellAspect: 2,
			TickRate:   60,
			Seed:       1,
		},
	})
	m.now = func() time.Time { return t0 }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tick(t *testing.T, m Model, at time.Duration) Model {
	t.Helper()
	return update(t, m, TickMsg(t0.Add(at)))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func ballPosition(t *testing.T, m Model) core.Vec2 {
	t.Helper()
	for _, obj := range m.game.Scene().Objects() {
		if obj.Shape == scene.ShapeSphere {
			return obj.Position.XY()
		}
	}
	t.Fatal("no ball in scene")
	return core.Vec2{}
}

func TestModelInitialView(t *testing.T) {
	m := newTestModel(t, testConfig())

	// One header line and one help line.
	if m.screen.Width() != 80 || m.screen.Height() != 22 {
		t.Errorf("field screen = %dx%d, expected 80x22", m.screen.Width(), m.screen.Height())
	}
	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should show the score")
	}
	if !strings.Contains(view, string(glyphs[scene.ShapeSphere])) {
		t.Error("view should show the ball before the first tick")
	}
}

func TestModelTickScores(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = tick(t, m, 16*time.Millisecond)

	if m.State().Score != 1 || m.State().Frame != 1 {
		t.Errorf("state after one tick = %+v", m.State())
	}
	if m.label.Text() != "Score: 1" {
		t.Errorf("label = %q, expected \"Score: 1\"", m.label.Text())
	}
}

func TestModelMovementAndSynthesizedRelease(t *testing.T) {
	m := newTestModel(t, testConfig())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, 16*time.Millisecond)
	if got := ballPosition(t, m); got.X != 0.05 {
		t.Fatalf("ball x = %v after pressing right, expected 0.05", got.X)
	}

	m = tick(t, m, 32*time.Millisecond)
	if got := ballPosition(t, m); got.X != 0.1 {
		t.Fatalf("ball x = %v while held, expected 0.1", got.X)
	}

	// Still inside the wait for the first auto-repeat.
	m = tick(t, m, 600*time.Millisecond)
	if got := ballPosition(t, m).X; got <= 0.1 {
		t.Fatalf("ball x = %v, should keep moving before the first repeat", got)
	}

	// No auto-repeat arrived: the key counts as released.
	m = tick(t, m, 800*time.Millisecond)
	x := ballPosition(t, m).X
	m = tick(t, m, 816*time.Millisecond)
	if got := ballPosition(t, m).X; got != x {
		t.Errorf("ball kept moving after release: %v -> %v", x, got)
	}
}

func TestModelWASD(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = update(t, m, runes("w"))
	m = tick(t, m, 16*time.Millisecond)

	if got := ballPosition(t, m); got.Y != 0.05 {
		t.Errorf("ball y = %v after pressing w, expected 0.05", got.Y)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = update(t, m, runes("p"))
	m = tick(t, m, 16*time.Millisecond)

	if !m.State().Paused {
		t.Fatal("game should be paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show the pause box")
	}

	frame := m.State().Frame
	m = tick(t, m, 32*time.Millisecond)
	if m.State().Frame != frame {
		t.Error("frames should not advance while paused")
	}

	m = update(t, m, runes("p"))
	m = tick(t, m, 48*time.Millisecond)
	if m.State().Paused || m.State().Frame != frame+1 {
		t.Errorf("game should resume, state = %+v", m.State())
	}
}

func TestModelGameOverBlocksUntilAck(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.Spawn[0] = config.ObstacleSpec{X: 0, Y: 0.3, Speed: 0}
	m := newTestModel(t, cfg)

	m = tick(t, m, 16*time.Millisecond)
	if m.State().Rounds != 1 {
		t.Fatalf("expected a game over, state = %+v", m.State())
	}
	if !strings.Contains(m.View(), "Game Over! Your Score: 0") {
		t.Error("view should show the announcement")
	}

	// Blocked: ticks and direction keys do nothing.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, 32*time.Millisecond)
	m = tick(t, m, 48*time.Millisecond)
	if m.State().Rounds != 1 || m.State().Frame != 0 {
		t.Errorf("frames ran while blocked, state = %+v", m.State())
	}
	if len(m.input.Keys) != 0 {
		t.Errorf("keys queued while blocked: %v", m.input.Keys)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.announcer.Current(); ok {
		t.Fatal("enter should dismiss the announcement")
	}

	// The obstacle is still there, so the next frame ends the round again.
	m = tick(t, m, 64*time.Millisecond)
	if m.State().Rounds != 2 {
		t.Errorf("expected the game to resume, state = %+v", m.State())
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, testConfig())
	m = tick(t, m, 16*time.Millisecond)
	m = tick(t, m, 32*time.Millisecond)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 38 {
		t.Errorf("screen = %dx%d after resize", m.screen.Width(), m.screen.Height())
	}
	if m.State().Score != 2 {
		t.Errorf("score = %d, resize should not reset the game", m.State().Score)
	}
	want := 120.0 / (38.0 * 2)
	if got := m.game.Camera().Aspect; got != want {
		t.Errorf("camera aspect = %v, expected %v", got, want)
	}
}

func TestModelHelpFitsTerminal(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"standard", 80, 24},
		{"wide", 200, 50},
		{"narrow", 40, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, testConfig())
			m = update(t, m, tea.WindowSizeMsg{Width: tc.width, Height: tc.height})
			m = tick(t, m, 16*time.Millisecond)
			short := m.screen.Height()

			m = update(t, m, runes("?"))
			if !m.help.ShowAll {
				t.Fatal("? should show the full help")
			}
			view := m.View()
			if lines := strings.Count(view, "\n") + 1; lines > tc.height {
				t.Errorf("view has %d lines for a %d-line terminal", lines, tc.height)
			}
			if !strings.HasPrefix(view, headerStyle.Render("Score: 1")) {
				t.Error("score header should stay on the first line")
			}
			if m.screen.Height() >= short {
				t.Errorf("field height %d should shrink below %d for the full help", m.screen.Height(), short)
			}

			m = update(t, m, runes("?"))
			if m.screen.Height() != short || m.State().Score != 1 {
				t.Errorf("closing help: field height %d, score %d", m.screen.Height(), m.State().Score)
			}
		})
	}
}

func TestModelBackground(t *testing.T) {
	m := newTestModel(t, testConfig())

	// A failed download is ignored.
	m = update(t, m, backgroundMsg{err: errors.New("boom")})
	if m.game.Scene().Background() != nil {
		t.Error("failed download should leave no background")
	}

	if cmd := loadBackgroundCmd(t.Context(), nil, config.BackgroundConfig{}); cmd != nil {
		t.Error("empty URL should not start a download")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, testConfig())

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelStats(t *testing.T) {
	stats := &SessionStats{}
	m := NewModel(Options{
		Config:  testConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Stats:   stats,
	})
	for i := 1; i <= 3; i++ {
		m = tick(t, m, time.Duration(i)*16*time.Millisecond)
	}

	if stats.Frames() != 3 || stats.Rounds() != 0 {
		t.Errorf("stats = %d frames, %d rounds", stats.Frames(), stats.Rounds())
	}
}
