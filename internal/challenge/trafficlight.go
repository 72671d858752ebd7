package challenge

import (
	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/model"
)

// TrafficLightID is the registry id of the traffic light challenge.
const TrafficLightID = "traffic_light"

var lampColors = []model.Color{"#E53935", "#F4B400", "#34A853"}

const unlitLamp model.Color = "#5F5F5F"

// NewTrafficLight returns a grid challenge where the player marks every
// tile that shows a traffic light. Decoy tiles show road signs.
func NewTrafficLight(gen *generator.Generator) Challenge {
	return newSelectGrid(gen, "Select all squares with traffic lights", model.Easy,
		scatterLayout, drawTrafficLight, drawRoadSign, len(lampColors))
}

func drawTrafficLight(s Surface, inner model.Rect, variant int) {
	x := inner.X + (inner.W-5)/2
	s.Text(x, inner.Y, "[", model.Style{FG: model.ColorText, BG: model.ColorTile})
	for i := range lampColors {
		fg := unlitLamp
		if i == variant {
			fg = lampColors[i]
		}
		s.Text(x+1+i, inner.Y, "●", model.Style{FG: fg, BG: model.ColorTile})
	}
	s.Text(x+4, inner.Y, "]", model.Style{FG: model.ColorText, BG: model.ColorTile})
	s.Text(x+2, inner.Y+1, "┃", model.Style{FG: model.ColorChrome, BG: model.ColorTile})
}

func drawRoadSign(s Surface, inner model.Rect, variant int) {
	switch variant {
	case 0:
		centerText(s, inner, inner.Y, " STOP ", model.Style{FG: model.ColorTextLight, BG: model.ColorFail, Bold: true})
	case 1:
		centerText(s, inner, inner.Y, "▽", model.Style{FG: model.ColorFail, BG: model.ColorTile, Bold: true})
	default:
		centerText(s, inner, inner.Y, "(50)", model.Style{FG: model.ColorText, BG: model.ColorTile, Bold: true})
	}
	centerText(s, inner, inner.Y+1, "│", model.Style{FG: model.ColorChrome, BG: model.ColorTile})
}
