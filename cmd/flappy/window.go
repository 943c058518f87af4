package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window the size of the preset's screen and play there.

Controls:
  Space/Up/W - Flap (restarts after game over)
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  flappy window
  flappy window --preset wide --fps 30`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger()
	defer closeLog()

	game, err := registry.Create(flagPreset, flagConfig)
	if err != nil {
		logger.Fatal("cannot load game", "error", err)
	}
	wg, ok := game.(window.Game)
	if !ok {
		logger.Fatal("preset cannot be drawn in a window", "preset", flagPreset)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if err := window.Run(wg, cfg, logger); err != nil {
		logger.Fatal("error running game", "error", err)
	}
}
