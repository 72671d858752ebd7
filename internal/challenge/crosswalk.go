package challenge

import (
	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/model"
)

// CrosswalkID is the registry id of the crosswalk challenge.
const CrosswalkID = "crosswalk"

// NewCrosswalk returns a grid challenge whose correct tiles form a
// connected walk from the left edge to the right edge.
func NewCrosswalk(gen *generator.Generator) Challenge {
	return newSelectGrid(gen, "Select all crosswalk tiles", model.Medium,
		pathLayout, drawCrosswalk, drawRoad, 2)
}

func drawCrosswalk(s Surface, inner model.Rect, variant int) {
	s.Fill(inner, ' ', model.Style{BG: model.ColorAsphalt})
	stripe := model.Style{FG: model.ColorStripe, BG: model.ColorAsphalt}
	for row := 0; row < inner.H; row++ {
		for col := variant; col < inner.W; col += 2 {
			s.Text(inner.X+col, inner.Y+row, "█", stripe)
		}
	}
}

func drawRoad(s Surface, inner model.Rect, variant int) {
	s.Fill(inner, ' ', model.Style{BG: model.ColorRoad})
	lane := model.Style{FG: model.ColorLane, BG: model.ColorRoad}
	if variant == 0 {
		centerText(s, inner, inner.Y, "╍╍╍╍", lane)
		return
	}
	for row := 0; row < inner.H; row++ {
		s.Text(inner.X+inner.W/2, inner.Y+row, "╏", lane)
	}
}
