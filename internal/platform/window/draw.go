package window

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// Width and height of a glyph of ebitenutil's debug font.
const (
	glyphW = 6
	glyphH = 16
)

var (
	overlayColor = color.RGBA{A: 160}
	hudShade     = color.RGBA{A: 96}
)

// painter draws snapshots. Triangles need a solid source image, created on first use.
type painter struct {
	solid *ebiten.Image
}

func newPainter() *painter {
	return &painter{}
}

func (p *painter) draw(screen *ebiten.Image, s sim.Snapshot) {
	screen.Fill(s.Scenery.Background.RGBA())

	for _, pv := range s.Pipes {
		c := pv.Color.RGBA()
		fillBox(screen, pv.Top, c)
		fillBox(screen, pv.Bottom, c)
	}
	fillBox(screen, s.Ground, s.Scenery.Land.RGBA())

	p.drawBird(screen, s.Bird.Shape, s.BirdBox, s.Bird.Color.RGBA())

	hud := fmt.Sprintf("Score: %d  Best: %d", s.Score, s.Best)
	// The debug font is white; shade light skies so the HUD stays readable.
	if s.Scenery.Background.Luma() > 160 {
		vector.DrawFilledRect(screen, 6, 6, float32(len(hud)*glyphW+8), glyphH+4, hudShade, false)
	}
	ebitenutil.DebugPrintAt(screen, hud, 10, 8)

	if s.Over {
		vector.DrawFilledRect(screen, 0, 0, float32(s.Width), float32(s.Height), overlayColor, false)
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", s.Score, s.Best),
			"Press SPACE to restart",
		}
		y := int(s.Height)/2 - len(lines)*glyphH/2
		for i, l := range lines {
			x := (int(s.Width) - len(l)*glyphW) / 2
			ebitenutil.DebugPrintAt(screen, l, x, y+i*glyphH)
		}
	}
}

func (p *painter) drawBird(screen *ebiten.Image, shape sim.Shape, b core.Box, c color.RGBA) {
	switch shape {
	case sim.ShapeCircle:
		r := b.W / 2
		vector.DrawFilledCircle(screen, float32(b.X+r), float32(b.Y+r), float32(r), c, true)
	case sim.ShapeTriangle:
		p.fillTriangle(screen, triangle(b), c)
	default:
		fillBox(screen, b, c)
	}
}

func fillBox(screen *ebiten.Image, b core.Box, c color.RGBA) {
	if b.Empty() {
		return
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c, false)
}

// triangle returns an upward-pointing triangle inscribed in b.
func triangle(b core.Box) [3][2]float32 {
	return [3][2]float32{
		{float32(b.X + b.W/2), float32(b.Y)},
		{float32(b.X), float32(b.Bottom())},
		{float32(b.Right()), float32(b.Bottom())},
	}
}

func (p *painter) fillTriangle(screen *ebiten.Image, pts [3][2]float32, c color.RGBA) {
	if p.solid == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		p.solid = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	vs := make([]ebiten.Vertex, 0, 3)
	for _, pt := range pts {
		vs = append(vs, ebiten.Vertex{
			DstX: pt[0], DstY: pt[1],
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, p.solid, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
