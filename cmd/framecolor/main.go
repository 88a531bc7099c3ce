// framecolor is a terminal exercise for matching a target color against a
// set of colored frames.
//
// Usage:
//
//	framecolor                 - Start the exercise
//	framecolor exercise        - Start the exercise
//	framecolor admin           - Open the administration screen
//	framecolor colors          - List the frame colors
//	framecolor volume [value]  - Show or set the feedback volume
//	framecolor history         - Show recent attempts
//
// Global flags:
//
//	--config <path>     - Use a custom YAML config
//	--db <path>         - Set database path (default from config: ~/.framecolor/framecolor.db)
//	--seed <value>      - Set RNG seed for round selection
//	--log-level <level> - debug, info, warn or error (default: warn)
//	--mute              - Disable feedback sounds
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "framecolor",
	Short: "Frame Color - match the target color in your terminal",
	Long: `Frame Color shows a target color and a row of colored frames.
Pick the frame whose color matches the target.

Available commands:
  exercise - Start the exercise (default)
  admin    - Adjust volume and target color
  colors   - List the frame colors
  volume   - Show or set the feedback volume
  history  - Show recent attempts

Examples:
  framecolor
  framecolor exercise --round-mode cycle
  framecolor admin
  framecolor volume 80
  framecolor history --limit 20`,
	SilenceUsage: true,
	RunE:         runExercise,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to settings database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable feedback sounds")

	addExerciseFlags(rootCmd)

	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(historyCmd)
}
