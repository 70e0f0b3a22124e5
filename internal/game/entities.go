package game

import (
	"github.com/vovakirdan/ringrun/internal/config"
	"github.com/vovakirdan/ringrun/internal/core"
	"github.com/vovakirdan/ringrun/internal/scene"
)

// Obstacle is a box that bounces vertically between the field edges.
type Obstacle struct {
	obj       *scene.Object
	speed     float64
	direction float64 // +1 up, -1 down
}

// Position returns the obstacle's centre on the field.
func (o *Obstacle) Position() core.Vec2 {
	return o.obj.Position.XY()
}

// advance moves the obstacle one frame and turns it around once it has
// crossed an edge. The step that crosses is kept; the next one heads back.
func (o *Obstacle) advance(halfH float64) {
	o.obj.Position.Y += o.speed * o.direction
	if o.obj.Position.Y > halfH || o.obj.Position.Y < -halfH {
		o.direction = -o.direction
	}
}

// newBall creates the player's ball at the origin.
func newBall(s *scene.Scene, cfg config.PlayerConfig) *scene.Object {
	ball := &scene.Object{
		Name:  "ball",
		Shape: scene.ShapeSphere,
		Size:  cfg.Radius,
		Color: core.ColorRed,
	}
	s.Add(ball)
	return ball
}

// newObstacle creates a box moving upwards first.
func newObstacle(s *scene.Scene, size float64, spec config.ObstacleSpec) *Obstacle {
	box := &scene.Object{
		Name:  "obstacle",
		Shape: scene.ShapeBox,
		Size:  size,
		Color: core.ColorBlue,
	}
	box.Position.Set(spec.X, spec.Y, 0)
	s.Add(box)
	return &Obstacle{obj: box, speed: spec.Speed, direction: 1}
}

// newRing creates the collectible at (x, y).
func newRing(s *scene.Scene, cfg config.RingConfig, x, y float64) *scene.Object {
	ring := &scene.Object{
		Name:  "ring",
		Shape: scene.ShapeTorus,
		Size:  cfg.Radius,
		Tube:  cfg.Tube,
		Color: core.ColorYellow,
	}
	ring.Position.Set(x, y, 0)
	s.Add(ring)
	return ring
}
