// flappy is a Flappy Bird-style game for the terminal, a desktop window or SSH.
//
// Usage:
//
//	flappy                   - Play the default preset in the terminal
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy list              - List available presets
//	flappy config [preset]   - Print the effective configuration as YAML
//
// Global flags:
//
//	--preset <name>     - Game preset (default: classic)
//	--config <path>     - YAML file overriding preset values
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"os"

	"github.com/spf13/cobra"

	// Import games to register their presets
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagPreset   string
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Guide the bird through the gaps between scrolling pipes.
Every pipe you pass scores a point; touching a pipe, the ground or the
top of the screen ends the round.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  list     - Show all presets
  config   - Print a preset's configuration

Examples:
  flappy
  flappy play --preset boost
  flappy window --preset compact
  flappy serve --ssh :2222
  flappy config drift > ~/.arcade/configs/flappy-drift.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagPreset, "preset", "classic", "Game preset (see 'flappy list')")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
