// Package config provides YAML (or TOML) based game configuration loading for
// Ring Runner, with an embedded default.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ObstacleCount is the fixed number of obstacles on the field.
const ObstacleCount = 5

// Config contains all tunables of the game.
type Config struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Ring       RingConfig       `yaml:"ring" toml:"ring"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles" toml:"obstacles"`
	Collision  CollisionConfig  `yaml:"collision" toml:"collision"`
	Scoring    ScoringConfig    `yaml:"scoring" toml:"scoring"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Background BackgroundConfig `yaml:"background" toml:"background"`
	Input      InputConfig      `yaml:"input" toml:"input"`
}

// FieldConfig defines the play-field half extents.
type FieldConfig struct {
	BoundaryX float64 `yaml:"boundary_x" toml:"boundary_x"`
	BoundaryY float64 `yaml:"boundary_y" toml:"boundary_y"`
}

// PlayerConfig defines the ball.
type PlayerConfig struct {
	MoveSpeed float64 `yaml:"move_speed" toml:"move_speed"` // Units per frame while a key is held
	Radius    float64 `yaml:"radius" toml:"radius"`         // Visual only
}

// RingConfig defines the collectible's visual size.
type RingConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	Tube   float64 `yaml:"tube" toml:"tube"`
}

// ObstaclesConfig defines the obstacle boxes.
type ObstaclesConfig struct {
	Size  float64        `yaml:"size" toml:"size"`
	Spawn []ObstacleSpec `yaml:"spawn" toml:"spawn"`
}

// ObstacleSpec is the starting position and vertical speed of one obstacle.
type ObstacleSpec struct {
	X     float64 `yaml:"x" toml:"x"`
	Y     float64 `yaml:"y" toml:"y"`
	Speed float64 `yaml:"speed" toml:"speed"`
}

// CollisionConfig holds the distance thresholds.
type CollisionConfig struct {
	Obstacle float64 `yaml:"obstacle" toml:"obstacle"`
	Ring     float64 `yaml:"ring" toml:"ring"`
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	Survival int `yaml:"survival" toml:"survival"` // Per surviving frame
	Ring     int `yaml:"ring" toml:"ring"`         // Per collected ring
}

// CameraConfig defines the perspective camera.
type CameraConfig struct {
	FOV  float64 `yaml:"fov" toml:"fov"` // Vertical, degrees
	Near float64 `yaml:"near" toml:"near"`
	Far  float64 `yaml:"far" toml:"far"`
	Z    float64 `yaml:"z" toml:"z"` // Distance from the play-field plane
}

// BackgroundConfig points at the optional background picture.
type BackgroundConfig struct {
	URL       string `yaml:"url" toml:"url"` // Empty disables the background
	TimeoutMS int    `yaml:"timeout_ms" toml:"timeout_ms"`
}

// Timeout returns the download timeout.
func (b BackgroundConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutMS) * time.Millisecond
}

// InputConfig tunes key handling on hosts without key-release events.
type InputConfig struct {
	RepeatDelayMS  int `yaml:"repeat_delay_ms" toml:"repeat_delay_ms"`
	ReleaseAfterMS int `yaml:"release_after_ms" toml:"release_after_ms"`
}

// RepeatDelay returns how long a freshly pressed key may stay silent before
// its first auto-repeat.
func (i InputConfig) RepeatDelay() time.Duration {
	return time.Duration(i.RepeatDelayMS) * time.Millisecond
}

// ReleaseAfter returns how long a repeating key must stay silent to count as
// released.
func (i InputConfig) ReleaseAfter() time.Duration {
	return time.Duration(i.ReleaseAfterMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("field.boundary_x", c.Field.BoundaryX)
	positive("field.boundary_y", c.Field.BoundaryY)
	positive("player.move_speed", c.Player.MoveSpeed)
	positive("player.radius", c.Player.Radius)
	positive("ring.radius", c.Ring.Radius)
	positive("obstacles.size", c.Obstacles.Size)
	positive("collision.obstacle", c.Collision.Obstacle)
	positive("collision.ring", c.Collision.Ring)
	positive("camera.near", c.Camera.Near)

	if c.Ring.Tube < 0 {
		errs = append(errs, fmt.Errorf("ring.tube must not be negative, got %v", c.Ring.Tube))
	}
	if c.Scoring.Survival < 0 || c.Scoring.Ring < 0 {
		errs = append(errs, fmt.Errorf("scoring values must not be negative"))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, 180), got %v", c.Camera.FOV))
	}
	if c.Camera.Z <= c.Camera.Near || c.Camera.Z >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera.z must lie between near and far, got %v", c.Camera.Z))
	}

	if len(c.Obstacles.Spawn) != ObstacleCount {
		errs = append(errs, fmt.Errorf("obstacles.spawn must list exactly %d obstacles, got %d", ObstacleCount, len(c.Obstacles.Spawn)))
	}
	for i, o := range c.Obstacles.Spawn {
		if o.Speed <= 0 {
			errs = append(errs, fmt.Errorf("obstacles.spawn[%d].speed must be positive, got %v", i, o.Speed))
		}
		if o.X < -c.Field.BoundaryX || o.X > c.Field.BoundaryX || o.Y < -c.Field.BoundaryY || o.Y > c.Field.BoundaryY {
			errs = append(errs, fmt.Errorf("obstacles.spawn[%d] at (%v, %v) is outside the field", i, o.X, o.Y))
		}
	}

	if c.Background.TimeoutMS < 0 {
		errs = append(errs, fmt.Errorf("background.timeout_ms must not be negative"))
	}
	if c.Input.RepeatDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("input.repeat_delay_ms must be positive, got %d", c.Input.RepeatDelayMS))
	}
	if c.Input.ReleaseAfterMS <= 0 {
		errs = append(errs, fmt.Errorf("input.release_after_ms must be positive, got %d", c.Input.ReleaseAfterMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
