package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameColor(cell.FG, start.FG) || !sameColor(cell.BG, start.BG) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(r, start).Render(run.String()))
		}
	}
	return sb.String()
}

func cellStyle(r *lipgloss.Renderer, c core.Cell) lipgloss.Style {
	style := r.NewStyle()
	if c.FG != nil {
		style = style.Foreground(lipgloss.Color(c.FG.Hex()))
	}
	if c.BG != nil {
		style = style.Background(lipgloss.Color(c.BG.Hex()))
	}
	return style
}

func sameColor(a, b *core.RGB) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
