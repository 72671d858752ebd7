package challenge

import (
	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/model"
)

// Bounds on how many tiles a random layout marks correct.
const (
	minCorrect = 2
	maxCorrect = 5
)

// iconFunc paints one tile interior. variant picks a cosmetic flavour so
// neighbouring tiles do not look identical.
type iconFunc func(s Surface, inner model.Rect, variant int)

// layoutFunc draws the set of correct tiles for a fresh puzzle.
type layoutFunc func(gen *generator.Generator, cols, rows int) CellSet

// selectGrid is the shared body of the "select every tile showing X"
// challenges. Only the answer layout and the tile art differ per variant.
type selectGrid struct {
	prompt     string
	difficulty model.Difficulty
	gen        *generator.Generator
	grid       *Grid
	correct    CellSet
	variants   map[Cell]int
	layout     layoutFunc
	hit        iconFunc
	miss       iconFunc
	flavours   int
}

func newSelectGrid(gen *generator.Generator, prompt string, difficulty model.Difficulty, layout layoutFunc, hit, miss iconFunc, flavours int) *selectGrid {
	c := &selectGrid{
		prompt:     prompt,
		difficulty: difficulty,
		gen:        gen,
		grid:       NewGrid(),
		layout:     layout,
		hit:        hit,
		miss:       miss,
		flavours:   flavours,
	}
	c.Reset()
	return c
}

func (c *selectGrid) Prompt() string { return c.prompt }

func (c *selectGrid) Difficulty() model.Difficulty { return c.difficulty }

func (c *selectGrid) HandleInput(ev model.Event) Feedback {
	if !ev.IsClick() {
		return FeedbackNone
	}
	return c.grid.HandleClick(ev.Pos)
}

func (c *selectGrid) IsSolved() bool {
	return c.grid.Matches(c.correct)
}

func (c *selectGrid) Reset() {
	c.correct = c.layout(c.gen, c.grid.Cols(), c.grid.Rows())
	c.variants = make(map[Cell]int, c.grid.Cols()*c.grid.Rows())
	for _, cell := range c.grid.Cells() {
		c.variants[cell] = c.gen.Intn(c.flavours)
	}
	c.grid.Clear()
}

func (c *selectGrid) Render(s Surface) {
	c.grid.Render(s, func(s Surface, cell Cell, inner model.Rect) {
		if c.correct.Has(cell) {
			c.hit(s, inner, c.variants[cell])
			return
		}
		c.miss(s, inner, c.variants[cell])
	})
}

// Grid exposes the tile layout for hit-testing in tests and hints.
func (c *selectGrid) Grid() *Grid { return c.grid }

// Answer returns a copy of the correct tiles.
func (c *selectGrid) Answer() CellSet { return c.correct.Clone() }

// scatterLayout marks between minCorrect and maxCorrect distinct tiles.
func scatterLayout(gen *generator.Generator, cols, rows int) CellSet {
	total := cols * rows
	k := gen.Range(minCorrect, maxCorrect)
	if k > total {
		k = total
	}
	out := make(CellSet, k)
	for _, idx := range gen.Sample(total, k) {
		out[Cell{Col: idx % cols, Row: idx / cols}] = struct{}{}
	}
	return out
}

// pathLayout marks the tiles covered by a random left-to-right walk.
func pathLayout(gen *generator.Generator, cols, rows int) CellSet {
	return PathCells(GeneratePath(gen, cols, rows))
}

// centerText writes s horizontally centered on row y of r.
func centerText(s Surface, r model.Rect, y int, text string, style model.Style) {
	x := r.X + (r.W-len([]rune(text)))/2
	if x < r.X {
		x = r.X
	}
	s.Text(x, y, text, style)
}
