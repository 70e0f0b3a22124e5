package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringrun/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in game configuration. Save it as
~/.ringrun/configs/ringrun.yaml (or .toml) to customise the game.

Examples:
  ringrun config
  ringrun config --format toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	switch flagFormat {
	case "yaml", "yml":
		os.Stdout.Write(config.DefaultYAML())
	case "toml":
		data, err := config.DefaultTOML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use yaml or toml)\n", flagFormat)
		os.Exit(1)
	}
}
