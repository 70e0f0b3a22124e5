package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringrun/internal/config"
	"github.com/vovakirdan/ringrun/internal/core"
	"github.com/vovakirdan/ringrun/internal/platform/window"
)

var (
	flagWindowConfig string
	flagScale        float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and play with real key presses and releases.

Controls:
  Arrows/WASD       - Move
  P                 - Pause
  Enter/Space/Esc   - Continue after game over
  Q                 - Quit

Examples:
  ringrun window
  ringrun window --scale 1.5`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagWindowConfig, "config", "", "Path to custom game config (YAML or TOML)")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagWindowConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	runErr := window.Run(window.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  window.DefaultWidth,
			ScreenH:  window.DefaultHeight,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Scale:      flagScale,
		Logger:     logger,
		Background: true,
	})
	if runErr != nil {
		logger.Error("window closed with an error", "error", runErr)
		closeLog()
		os.Exit(1)
	}
}
