// Package game implements Ring Runner: steer the ball with the arrow keys to
// collect the ring while dodging the bouncing boxes. The package owns the game
// state and the per-frame update; drawing, the score label and announcements
// are delegated to the host through scene.Renderer, ScoreDisplay and Notifier.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/ringrun/internal/backdrop"
	"github.com/vovakirdan/ringrun/internal/config"
	"github.com/vovakirdan/ringrun/internal/core"
	"github.com/vovakirdan/ringrun/internal/scene"
)

// Hooks are the host collaborators the game talks to. Nil fields are
// replaced with no-ops.
type Hooks struct {
	Renderer scene.Renderer
	Display  ScoreDisplay
	Notifier Notifier
}

// Game implements the Ring Runner game logic.
type Game struct {
	cfg    config.Config
	hooks  Hooks
	bounds core.Bounds
	rng    *rand.Rand

	scene     *scene.Scene
	camera    *scene.Camera
	ball      *scene.Object
	ring      *scene.Object
	obstacles []*Obstacle
	input     *Tracker

	score  int
	rounds int
	frame  uint64
	paused bool
}

type nopRenderer struct{}

func (nopRenderer) Render(*scene.Scene, *scene.Camera) {}

// New creates a game. Call Reset before the first Step.
func New(cfg config.Config, hooks Hooks) *Game {
	if hooks.Renderer == nil {
		hooks.Renderer = nopRenderer{}
	}
	if hooks.Display == nil {
		hooks.Display = nopDisplay{}
	}
	if hooks.Notifier == nil {
		hooks.Notifier = nopNotifier{}
	}
	return &Game{
		cfg:    cfg,
		hooks:  hooks,
		bounds: core.NewBounds(cfg.Field.BoundaryX, cfg.Field.BoundaryY),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ringrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ring Runner"
}

// Reset builds a fresh scene: ball at the origin, the configured obstacles
// and one ring. A background already set on the previous scene is kept.
func (g *Game) Reset(rc core.RuntimeConfig) {
	var bg *backdrop.Image
	if g.scene != nil {
		bg = g.scene.Background()
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.scene = scene.New()
	g.scene.SetBackground(bg)

	cam := g.cfg.Camera
	g.camera = scene.NewPerspectiveCamera(cam.FOV, rc.Aspect(), cam.Near, cam.Far)
	g.camera.Position.Z = cam.Z

	g.ball = newBall(g.scene, g.cfg.Player)
	g.obstacles = make([]*Obstacle, 0, len(g.cfg.Obstacles.Spawn))
	for _, spec := range g.cfg.Obstacles.Spawn {
		g.obstacles = append(g.obstacles, newObstacle(g.scene, g.cfg.Obstacles.Size, spec))
	}
	g.ring = nil
	g.spawnRing()

	g.input = NewTracker(g.cfg.Player.MoveSpeed)
	g.score = 0
	g.rounds = 0
	g.frame = 0
	g.paused = false
	g.showScore()
}

// Resize adapts the camera to a new surface size without touching the game.
func (g *Game) Resize(rc core.RuntimeConfig) {
	if g.camera != nil {
		g.camera.SetAspect(rc.Aspect())
	}
}

// Step runs one frame. Key edges queued on the frame are applied first, in
// the order the host received them.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, ev := range in.Keys {
		g.input.Apply(ev)
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	next := g.bounds.Clamp(g.ball.Position.XY().Add(g.input.Velocity()))

	// Obstacle hits win over everything else this frame.
	for _, o := range g.obstacles {
		if core.Collides(next, o.Position(), g.cfg.Collision.Obstacle) {
			g.gameOver()
			return core.StepResult{State: g.State(), GameOver: true}
		}
	}

	collected := false
	if core.Collides(next, g.ring.Position.XY(), g.cfg.Collision.Ring) {
		g.spawnRing()
		g.score += g.cfg.Scoring.Ring
		collected = true
	}

	g.ball.Position.X = next.X
	g.ball.Position.Y = next.Y

	for _, o := range g.obstacles {
		o.advance(g.bounds.HalfH)
	}

	g.score += g.cfg.Scoring.Survival
	g.frame++
	g.showScore()

	g.hooks.Renderer.Render(g.scene, g.camera)

	return core.StepResult{State: g.State(), Collected: collected}
}

// gameOver announces the final score and restarts the round in place.
// Obstacles keep their position and direction.
func (g *Game) gameOver() {
	g.hooks.Notifier.Announce(fmt.Sprintf("Game Over! Your Score: %d", g.score))
	g.ball.Position.Set(0, 0, 0)
	g.score = 0
	g.rounds++
	g.showScore()
	g.spawnRing()
}

func (g *Game) showScore() {
	g.hooks.Display.SetText(fmt.Sprintf("Score: %d", g.score))
}

// Redraw renders the current scene without advancing the game, for hosts
// that need a picture while paused or after a resize.
func (g *Game) Redraw() {
	g.hooks.Renderer.Render(g.scene, g.camera)
}

// Scene returns the live scene.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Camera returns the scene camera.
func (g *Game) Camera() *scene.Camera {
	return g.camera
}

// Bounds returns the play-field bounds.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Rounds: g.rounds,
		Frame:  g.frame,
		Paused: g.paused,
	}
}
