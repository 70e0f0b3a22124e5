package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ringrun/internal/config"
	"github.com/vovakirdan/ringrun/internal/core"
	"github.com/vovakirdan/ringrun/internal/platform/tui"
)

var (
	flagConfig       string
	flagNoBackground bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD       - Move
  P                 - Pause
  Enter/Space/Esc   - Continue after game over
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Terminals do not report key releases: the ball keeps moving while the
key auto-repeats. A fresh press waits input.repeat_delay_ms for the first
repeat; after that the ball stops once the key is quiet for
input.release_after_ms.

Examples:
  ringrun play
  ringrun play --seed 7
  ringrun play --config ./my-ringrun.yaml
  ringrun play --log-file /tmp/ringrun.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().BoolVar(&flagNoBackground, "no-background", false, "Do not download the background picture")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs are dropped unless
	// --log-file is given.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	runErr := tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    rc,
		Logger:     logger,
		Background: !flagNoBackground,
	})
	if runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
