// starfire is a vertical arcade shooter for the terminal.
//
// Usage:
//
//	starfire play        - Play in the terminal (default)
//	starfire simulate    - Run the game headless with an autopilot
//	starfire config      - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate, 1 to 1000 (default: 50)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load game config from a YAML file
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-fire/internal/core"
	"github.com/vovakirdan/star-fire/internal/games/starfire"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfire",
	Short: "Star Fire - dodge and shoot falling obstacles in your terminal",
	Long: `Star Fire is a vertical arcade shooter. Steer the ship along the
bottom of the arena, shoot the obstacles falling from the top and dash
out of the way when a shot is not enough. Three hits end the run.

Available commands:
  play      - Play in the terminal
  simulate  - Headless autopilot run for tuning
  config    - Print the effective configuration

Examples:
  starfire
  starfire play --seed 42
  starfire simulate --ticks 30000 --log-level debug
  starfire config > ~/.starfire/configs/starfire.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := core.ValidateTickRate(flagFPS); err != nil {
			return fmt.Errorf("invalid --fps: %w", err)
		}
		starfire.SetConfigPath(flagConfig)
		return nil
	},
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second, 1-1000)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
