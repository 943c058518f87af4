package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '▒'
)

// BirdRune returns the character drawn for a bird shape.
func BirdRune(s sim.Shape) rune {
	switch s {
	case sim.ShapeCircle:
		return '●'
	case sim.ShapeTriangle:
		return '▲'
	default:
		return '■'
	}
}

// Draw renders a snapshot into dst, scaling world units to the buffer size.
func Draw(dst *core.Screen, s sim.Snapshot) {
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 || s.Width <= 0 || s.Height <= 0 {
		return
	}
	sx := float64(w) / s.Width
	sy := float64(h) / s.Height

	bg := s.Scenery.Background
	dst.SetBackground(&bg)
	dst.Clear()

	for _, p := range s.Pipes {
		drawPipe(dst, p, sx, sy, &bg)
	}

	land := s.Scenery.Land
	dst.Paint(s.Ground.Scale(sx, sy), GroundChar, &land, &bg)

	bird := s.Bird.Color
	dst.Paint(s.BirdBox.Scale(sx, sy), BirdRune(s.Bird.Shape), &bird, &bg)

	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d  Best: %d ", s.Score, s.Best))

	if s.Over {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", s.Score, s.Best),
			"Press SPACE to restart")
	}
}

// drawPipe renders both halves of a pipe with caps facing the gap.
func drawPipe(dst *core.Screen, p sim.PipeView, sx, sy float64, bg *core.RGB) {
	c := p.Color

	top := p.Top.Scale(sx, sy)
	dst.Paint(top, PipeChar, &c, bg)
	if top.H > 0 {
		dst.Paint(core.NewRect(top.X, top.Bottom()-1, top.W, 1), PipeCapTop, &c, bg)
	}

	bottom := p.Bottom.Scale(sx, sy)
	dst.Paint(bottom, PipeChar, &c, bg)
	if bottom.H > 0 {
		dst.Paint(core.NewRect(bottom.X, bottom.Y, bottom.W, 1), PipeCapBottom, &c, bg)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	longest := 0
	for _, l := range lines {
		longest = core.Max(longest, len([]rune(l)))
	}
	boxW := core.Clamp(longest+4, 0, w)
	boxH := len(lines) + 2
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.Paint(box, ' ', nil, nil)
	dst.DrawBox(box)

	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
