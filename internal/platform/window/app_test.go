package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/ringrun/internal/config"
	"github.com/vovakirdan/ringrun/internal/core"
)

// keys is a fake edge poller.
type keys map[ebiten.Key]bool

func (k keys) poll(key ebiten.Key) bool { return k[key] }

func newTestApp(t *testing.T, cfg config.Config) *App {
	t.Helper()
	a := NewApp(Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{ScreenW: 800, ScreenH: 600, TickRate: 60, Seed: 1},
	})
	t.Cleanup(a.Close)
	return a
}

func testConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Collision.Ring = 0
	return cfg
}

func TestDirectionKeysCovered(t *testing.T) {
	if len(keyOrder) != len(directionKeys) {
		t.Fatalf("keyOrder has %d keys, directionKeys %d", len(keyOrder), len(directionKeys))
	}
	for _, k := range keyOrder {
		if _, ok := directionKeys[k]; !ok {
			t.Errorf("key %v missing from directionKeys", k)
		}
	}
}

func TestAppPressAndRelease(t *testing.T) {
	a := newTestApp(t, testConfig())
	none := keys{}

	a.poll(keys{ebiten.KeyArrowRight: true}.poll, none.poll)
	a.frame()
	a.poll(none.poll, none.poll)
	a.frame()
	if got := a.game.State().Frame; got != 2 {
		t.Fatalf("frame = %d, expected 2", got)
	}
	x := a.game.Scene().Objects()[0].Position.X
	if x != 0.1 {
		t.Fatalf("ball x = %v while held, expected 0.1", x)
	}

	a.poll(none.poll, keys{ebiten.KeyArrowRight: true}.poll)
	a.frame()
	if got := a.game.Scene().Objects()[0].Position.X; got != x {
		t.Errorf("ball moved after release: %v -> %v", x, got)
	}
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t, testConfig())
	if !a.poll(keys{ebiten.KeyQ: true}.poll, keys{}.poll) {
		t.Error("Q should quit")
	}
}

func TestAppAnnouncementBlocks(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.Spawn[0] = config.ObstacleSpec{X: 0, Y: 0.3, Speed: 0}
	a := newTestApp(t, cfg)
	none := keys{}

	a.frame()
	if _, ok := a.hud.current(); !ok {
		t.Fatal("expected a game-over announcement")
	}
	if a.hud.score != "Score: 0" {
		t.Errorf("score label = %q", a.hud.score)
	}

	// Presses are dropped while blocked, releases are kept.
	a.poll(keys{ebiten.KeyArrowUp: true}.poll, keys{ebiten.KeyArrowLeft: true}.poll)
	a.frame()
	if a.state.Rounds != 1 {
		t.Errorf("frames ran while blocked, rounds = %d", a.state.Rounds)
	}
	if len(a.input.Keys) != 1 || a.input.Keys[0].Down {
		t.Errorf("queued keys = %v, expected one release", a.input.Keys)
	}

	a.poll(keys{ebiten.KeyEnter: true}.poll, none.poll)
	a.frame()
	if a.state.Rounds != 2 {
		t.Errorf("expected the game to resume and end again, rounds = %d", a.state.Rounds)
	}
}

func TestAppPause(t *testing.T) {
	a := newTestApp(t, testConfig())
	none := keys{}

	a.poll(keys{ebiten.KeyP: true}.poll, none.poll)
	a.frame()
	if !a.state.Paused {
		t.Fatal("P should pause")
	}
	a.poll(none.poll, none.poll)
	a.frame()
	if a.state.Frame != 0 {
		t.Errorf("frames advanced while paused: %d", a.state.Frame)
	}
}

func TestAppLayoutResizes(t *testing.T) {
	a := newTestApp(t, testConfig())

	w, h := a.Layout(1000, 500)
	if w != 1000 || h != 500 {
		t.Errorf("Layout() = %dx%d, expected 1000x500", w, h)
	}
	if got := a.game.Camera().Aspect; got != 2 {
		t.Errorf("camera aspect = %v, expected 2", got)
	}
}
