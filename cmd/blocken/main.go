// blocken is a trail-dodging grid game for the terminal and the desktop.
//
// Usage:
//
//	blocken                  - Play in the terminal
//	blocken play             - Play in the terminal
//	blocken window           - Play in a desktop window
//	blocken simulate         - Run a headless autopilot game
//	blocken frontends        - List available frontends
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - Override the configured log level
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagFPS      int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocken",
	Short: "Blocken - steer a growing trail around a wrapping grid",
	Long: `Blocken moves a marker across a 25x24 board that wraps at every edge.
The marker leaves a trail that fades after a while. Eat grow blocks (+) to
lengthen the trail and speed blocks (>) to move faster. The run ends when
you hit your own trail.

Available commands:
  play       - Play in the terminal (default)
  window     - Play in a desktop window
  simulate   - Run a headless autopilot game
  frontends  - List available frontends

Examples:
  blocken
  blocken window --config ./my-blocken.yaml
  blocken simulate --seed 42 --ticks 5000`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Terminal frame rate")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(frontendsCmd)
}
