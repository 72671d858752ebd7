package model

// Playfield geometry in terminal cells. Everything the game draws or
// hit-tests lives inside a ScreenW x ScreenH area.
const (
	ScreenW = 40
	ScreenH = 26

	HeaderH      = 3
	TimerBarH    = 1
	BottomPanelH = 5

	GridCols    = 3
	GridRows    = 3
	GridTileW   = 10
	GridTileH   = 4
	GridPadding = 1
)

// PlayTop is the first row below the header and timer bar.
const PlayTop = HeaderH + TimerBarH

// PlayBottom is the first row of the bottom panel.
const PlayBottom = ScreenH - BottomPanelH

// Color is a hex colour string such as "#2A5DB0".
type Color string

// Palette mirrors the flat corporate look of the game.
const (
	ColorBackground Color = "#F0F0F0"
	ColorTile       Color = "#FFFFFF"
	ColorTileBorder Color = "#CCCCCC"
	ColorHighlight  Color = "#2A5DB0"
	ColorTimer      Color = "#E53935"
	ColorChrome     Color = "#757575"
	ColorText       Color = "#212121"
	ColorTextLight  Color = "#FFFFFF"
	ColorPass       Color = "#34A853"
	ColorFail       Color = "#EA4335"
	ColorAsphalt    Color = "#3C3C3C"
	ColorRoad       Color = "#505050"
	ColorStripe     Color = "#F0F0F0"
	ColorLane       Color = "#DCC83C"
)

// Style describes how a cell is painted.
type Style struct {
	FG        Color
	BG        Color
	Bold      bool
	Underline bool
}
