// jumpy is an endless runner: jump over the obstacles for as long as you can.
//
// Usage:
//
//	jumpy play               - Play in the terminal
//	jumpy play --renderer window
//	jumpy replay list        - Browse recorded runs
//	jumpy replay run <id>    - Re-simulate a recorded run
//	jumpy config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.jumpy/jumpy.db)
//	--config <path>     - Use a custom runner config YAML
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Log file (empty logs to stderr)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumpy-jack/internal/config"
	"github.com/vovakirdan/jumpy-jack/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
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
	Use:   "jumpy",
	Short: "Jumpy Jack - an endless runner",
	Long: `Jumpy Jack is an endless runner. Obstacles fly in from the right;
jump over them to keep running. Every second survived scores a point.

Available commands:
  play     - Start a run in the terminal or in a window
  replay   - List and re-run recorded runs
  config   - Print the effective configuration

Examples:
  jumpy play
  jumpy play --renderer window --record
  jumpy replay list
  jumpy replay run 3
  jumpy config --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumpy/jumpy.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultPath, "Log file path (empty = stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the runner config and applies command-line overrides.
// Errors are fatal: the game never starts with a broken config.
func loadConfig() config.RunnerConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagFPS != 0 {
		cfg.Window.FPS = flagFPS
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// resolveSeed picks a time-based seed when none is configured.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

func openLogger() *logging.Logger {
	logger, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger
}
