package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all presets",
	Long:  `Shows every registered preset with its screen size, flap tuning and spawn cadence.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No presets available.")
		return nil
	}

	rows := make([]tui.PresetRow, 0, len(games))
	for _, g := range games {
		cfg, err := config.Preset(g.ID)
		if err != nil {
			return err
		}
		rows = append(rows, tui.PresetRow{ID: g.ID, Config: cfg})
	}

	fmt.Fprintln(out, tui.PresetTable(rows))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy play --preset <id>' to play a preset.")
	return nil
}
