package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing the selected preset in the terminal.

Controls:
  Space/Up/W - Flap (restarts after game over)
  R          - Restart (after game over)
  ?          - Toggle key help
  Q/Esc      - Quit

Examples:
  flappy play
  flappy play --preset gentle
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger()
	defer closeLog()

	game, err := registry.Create(flagPreset, flagConfig)
	if err != nil {
		logger.Fatal("cannot load game", "error", err)
	}

	// Get terminal size; the model adapts when the first resize arrives
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		WallClock: true,
	}

	logger.Debug("starting terminal game", "preset", flagPreset, "size", [2]int{width, height})
	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Fatal("error running game", "error", err)
	}
}
