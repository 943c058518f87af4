package sim

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Source is the random source used for layout and cosmetics.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Scenery holds the round-level colours.
type Scenery struct {
	Background core.RGB
	Land       core.RGB
}

// Cosmetics picks colours and shapes. It is kept apart from the simulation so
// that gameplay is identical whatever the palette.
type Cosmetics struct {
	palette config.PaletteConfig
	rng     Source
}

// NewCosmetics creates a cosmetics roller over a palette.
func NewCosmetics(palette config.PaletteConfig, rng Source) *Cosmetics {
	return &Cosmetics{palette: palette, rng: rng}
}

// Dress gives a freshly built bird its shape and colour and rolls the scenery.
// The first round uses the palette's initial background when one is set.
func (c *Cosmetics) Dress(b Bird, first bool) (Bird, Scenery) {
	b.Shape = Shape(c.rng.Intn(int(shapeCount)))
	b.Color = c.pick(c.palette.Birds)

	s := Scenery{
		Background: c.pick(c.palette.Backgrounds),
		Land:       c.pick(c.palette.Lands),
	}
	if first && c.palette.InitialBackground != nil {
		s.Background = *c.palette.InitialBackground
	}
	return b, s
}

// PipeColor picks a colour for a new pipe.
func (c *Cosmetics) PipeColor() core.RGB {
	return c.pick(c.palette.Pipes)
}

func (c *Cosmetics) pick(colors []core.RGB) core.RGB {
	if len(colors) == 0 {
		return core.RGB{}
	}
	return colors[c.rng.Intn(len(colors))]
}
