package challenge

import (
	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/model"
)

// BusID is the registry id of the bus challenge.
const BusID = "bus"

var carColors = []model.Color{"#E53935", "#2A5DB0", "#757575"}

const busColor model.Color = "#F4B400"

// NewBus returns a grid challenge where the player marks every tile that
// shows a bus. Decoy tiles show cars.
func NewBus(gen *generator.Generator) Challenge {
	return newSelectGrid(gen, "Select all images with a bus", model.Easy,
		scatterLayout, drawBus, drawCar, len(carColors))
}

func drawBus(s Surface, inner model.Rect, variant int) {
	body := "▐▀▀▀▀▀▌"
	if variant%2 == 1 {
		body = "▐▀▀▀▀▀▀"
	}
	centerText(s, inner, inner.Y, body, model.Style{FG: busColor, BG: model.ColorTile})
	centerText(s, inner, inner.Y+1, " ◉   ◉ ", model.Style{FG: model.ColorText, BG: model.ColorTile})
}

func drawCar(s Surface, inner model.Rect, variant int) {
	fg := carColors[variant%len(carColors)]
	centerText(s, inner, inner.Y, "▗▟█▙▖", model.Style{FG: fg, BG: model.ColorTile})
	centerText(s, inner, inner.Y+1, "◉ ◉", model.Style{FG: model.ColorText, BG: model.ColorTile})
}
