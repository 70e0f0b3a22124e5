package config

import (
	"bytes"
	_ "embed"

	"github.com/BurntSushi/toml"
)

//go:embed defaults/ringrun.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/ringrun.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			BoundaryX: 4.5,
			BoundaryY: 3,
		},
		Player: PlayerConfig{
			MoveSpeed: 0.05,
			Radius:    0.3,
		},
		Ring: RingConfig{
			Radius: 0.5,
			Tube:   0.1,
		},
		Obstacles: ObstaclesConfig{
			Size: 0.8,
			Spawn: []ObstacleSpec{
				{X: -2, Y: 0, Speed: 0.02},
				{X: 1, Y: 1, Speed: 0.03},
				{X: -1, Y: -1, Speed: 0.015},
				{X: 3, Y: -2, Speed: 0.025},
				{X: -3, Y: 2, Speed: 0.02},
			},
		},
		Collision: CollisionConfig{
			Obstacle: 0.6,
			Ring:     0.7,
		},
		Scoring: ScoringConfig{
			Survival: 1,
			Ring:     10,
		},
		Camera: CameraConfig{
			FOV:  75,
			Near: 0.1,
			Far:  1000,
			Z:    5,
		},
		Background: BackgroundConfig{
			URL:       "https://img.pikbest.com/back_our/20210930/bg/45a6402923931bce3f7dc655d5b34f1f_102583.png!sw800",
			TimeoutMS: 10000,
		},
		Input: InputConfig{
			RepeatDelayMS:  750,
			ReleaseAfterMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// DefaultTOML renders the default configuration as TOML.
func DefaultTOML() ([]byte, error) {
	cfg, err := Parse(defaultYAML, FormatYAML)
	if err != nil {
		cfg = DefaultConfig()
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
