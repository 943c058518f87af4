package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// PresetRow is one line of the preset listing.
type PresetRow struct {
	ID     string
	Config config.GameConfig
}

// PresetTable renders presets as a static table.
func PresetTable(rows []PresetRow) string {
	columns := []table.Column{
		{Title: "Preset", Width: 10},
		{Title: "Title", Width: 28},
		{Title: "Size", Width: 9},
		{Title: "Flap", Width: 12},
		{Title: "Ceiling", Width: 10},
		{Title: "Spawn (ms)", Width: 11},
	}

	trows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		c := r.Config
		spawn := fmt.Sprint(c.Spawn.MinIntervalMS)
		if c.Spawn.MaxIntervalMS != c.Spawn.MinIntervalMS {
			spawn = fmt.Sprintf("%d-%d", c.Spawn.MinIntervalMS, c.Spawn.MaxIntervalMS)
		}
		trows = append(trows, table.Row{
			r.ID,
			c.Title,
			fmt.Sprintf("%dx%d", c.Screen.Width, c.Screen.Height),
			fmt.Sprintf("%g %s", c.Physics.FlapImpulse, c.Physics.FlapPolicy),
			string(c.Physics.Ceiling),
			spawn,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(trows),
		table.WithHeight(len(trows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t.View()
}
