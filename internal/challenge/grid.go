package challenge

import "github.com/verte-zerg/captcharun/internal/model"

// Cell addresses one grid tile.
type Cell struct {
	Col int
	Row int
}

// CellSet is an unordered set of tiles.
type CellSet map[Cell]struct{}

// NewCellSet builds a set from cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Equal reports whether both sets hold the same cells.
func (s CellSet) Equal(o CellSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.Has(c) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

var (
	tileStyle     = model.Style{FG: model.ColorTileBorder, BG: model.ColorTile}
	selectedStyle = model.Style{FG: model.ColorHighlight, BG: model.ColorTile, Bold: true}
	checkStyle    = model.Style{FG: model.ColorTextLight, BG: model.ColorHighlight, Bold: true}
)

// Grid lays out a cols x rows block of tiles centered in the play area and
// tracks which tiles the player has toggled on.
type Grid struct {
	cols     int
	rows     int
	tileW    int
	tileH    int
	padding  int
	origin   model.Point
	selected CellSet
}

// NewGrid returns the standard 3x3 grid.
func NewGrid() *Grid {
	g := &Grid{
		cols:     model.GridCols,
		rows:     model.GridRows,
		tileW:    model.GridTileW,
		tileH:    model.GridTileH,
		padding:  model.GridPadding,
		selected: CellSet{},
	}
	gridW := g.cols*g.tileW + (g.cols-1)*g.padding
	gridH := g.rows*g.tileH + (g.rows-1)*g.padding
	usableH := model.PlayBottom - model.PlayTop
	g.origin = model.Point{
		X: (model.ScreenW - gridW) / 2,
		Y: model.PlayTop + (usableH-gridH)/2,
	}
	return g
}

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cells lists every tile in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.cols*g.rows)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cells = append(cells, Cell{Col: col, Row: row})
		}
	}
	return cells
}

// TileRect returns the screen area of a tile.
func (g *Grid) TileRect(c Cell) model.Rect {
	return model.Rect{
		X: g.origin.X + c.Col*(g.tileW+g.padding),
		Y: g.origin.Y + c.Row*(g.tileH+g.padding),
		W: g.tileW,
		H: g.tileH,
	}
}

// CellAt hit-tests a point. Padding between tiles hits nothing.
func (g *Grid) CellAt(p model.Point) (Cell, bool) {
	for _, c := range g.Cells() {
		if g.TileRect(c).Contains(p) {
			return c, true
		}
	}
	return Cell{}, false
}

// Toggle flips the selection of c and returns its new state.
func (g *Grid) Toggle(c Cell) bool {
	if g.selected.Has(c) {
		delete(g.selected, c)
		return false
	}
	g.selected[c] = struct{}{}
	return true
}

// HandleClick toggles the tile under p.
func (g *Grid) HandleClick(p model.Point) Feedback {
	c, ok := g.CellAt(p)
	if !ok {
		return FeedbackNone
	}
	if g.Toggle(c) {
		return FeedbackSelect
	}
	return FeedbackDeselect
}

// IsSelected reports whether c is toggled on.
func (g *Grid) IsSelected(c Cell) bool {
	return g.selected.Has(c)
}

// Selected returns a copy of the selection.
func (g *Grid) Selected() CellSet {
	return g.selected.Clone()
}

// Matches reports whether the selection equals want exactly.
func (g *Grid) Matches(want CellSet) bool {
	return g.selected.Equal(want)
}

// Clear drops the selection.
func (g *Grid) Clear() {
	g.selected = CellSet{}
}

// Render draws every tile and asks icon to paint the tile interior.
func (g *Grid) Render(s Surface, icon func(s Surface, c Cell, inner model.Rect)) {
	for _, c := range g.Cells() {
		r := g.TileRect(c)
		style := tileStyle
		if g.IsSelected(c) {
			style = selectedStyle
		}
		s.Fill(r, ' ', model.Style{BG: model.ColorTile})
		s.Border(r, style)
		inner := model.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
		if icon != nil {
			icon(s, c, inner)
		}
		if g.IsSelected(c) {
			s.Text(r.X+r.W-2, r.Y, "✓", checkStyle)
		}
	}
}
