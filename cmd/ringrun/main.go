// ringrun is a small arcade game: steer the ball with the arrow keys, collect
// the ring and dodge the bouncing boxes.
//
// Usage:
//
//	ringrun play             - Play in the terminal
//	ringrun window           - Play in a desktop window
//	ringrun serve            - Start SSH server for remote play
//	ringrun sessions         - Show the SSH session journal
//	ringrun config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringrun",
	Short: "Ring Runner - collect rings, dodge boxes",
	Long: `Ring Runner is a tiny arcade game. Steer the red ball with the arrow
keys, collect the yellow ring for bonus points and stay clear of the blue
boxes bouncing up and down the field. Every frame you survive scores a point.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  sessions  - Show the SSH session journal
  config    - Print the default configuration

Examples:
  ringrun play
  ringrun play --seed 42 --no-background
  ringrun window --scale 1.5
  ringrun serve --ssh :2222
  ringrun config --format toml > ~/.ringrun/configs/ringrun.toml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}
