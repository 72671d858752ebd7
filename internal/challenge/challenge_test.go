package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/model"
)

type nullSurface struct {
	texts int
}

func (s *nullSurface) Fill(model.Rect, rune, model.Style) {}
func (s *nullSurface) Text(int, int, string, model.Style) { s.texts++ }
func (s *nullSurface) Border(model.Rect, model.Style)     {}

func click(p model.Point) model.Event {
	return model.Event{Kind: model.EventPointerDown, Button: model.ButtonLeft, Pos: p}
}

func key(r rune) model.Event {
	return model.Event{Kind: model.EventKeyDown, Key: model.KeyRune, Rune: r}
}

func TestIsSolvedIdempotent(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		gen := generator.NewSeeded(seed)
		for _, def := range DefaultDefinitions(nil) {
			c := def.New(gen)
			first := c.IsSolved()
			assert.Equal(t, first, c.IsSolved(), "%s seed %d", def.ID, seed)
			assert.False(t, first, "%s starts solved", def.ID)
			c.Render(&nullSurface{})
			assert.Equal(t, first, c.IsSolved(), "%s changed after render", def.ID)
		}
	}
}

func TestScatterLayoutSize(t *testing.T) {
	gen := generator.NewSeeded(7)
	for i := 0; i < 200; i++ {
		cells := scatterLayout(gen, 3, 3)
		assert.GreaterOrEqual(t, len(cells), minCorrect)
		assert.LessOrEqual(t, len(cells), maxCorrect)
		for c := range cells {
			assert.True(t, c.Col >= 0 && c.Col < 3 && c.Row >= 0 && c.Row < 3)
		}
	}
}

func TestGeneratePathIsEdgeToEdge(t *testing.T) {
	gen := generator.NewSeeded(11)
	for i := 0; i < 500; i++ {
		walk := GeneratePath(gen, 3, 3)
		require.NotEmpty(t, walk)
		assert.Equal(t, 0, walk[0].Col)
		assert.Equal(t, 2, walk[len(walk)-1].Col)
		for j := 1; j < len(walk); j++ {
			d := abs(walk[j].Col-walk[j-1].Col) + abs(walk[j].Row-walk[j-1].Row)
			require.Equal(t, 1, d, "gap between %v and %v", walk[j-1], walk[j])
		}
		assert.True(t, connectsEdges(PathCells(walk), 3), "walk %v", walk)
	}
}

// connectsEdges runs a BFS over the set from every column-0 cell.
func connectsEdges(set CellSet, cols int) bool {
	var queue []Cell
	seen := CellSet{}
	for c := range set {
		if c.Col == 0 {
			queue = append(queue, c)
			seen[c] = struct{}{}
		}
	}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c.Col == cols-1 {
			return true
		}
		for _, n := range []Cell{{c.Col + 1, c.Row}, {c.Col - 1, c.Row}, {c.Col, c.Row + 1}, {c.Col, c.Row - 1}} {
			if set.Has(n) && !seen.Has(n) {
				seen[n] = struct{}{}
				queue = append(queue, n)
			}
		}
	}
	return false
}

func TestGridHitTesting(t *testing.T) {
	g := NewGrid()
	for _, c := range g.Cells() {
		r := g.TileRect(c)
		assert.GreaterOrEqual(t, r.Y, model.PlayTop)
		assert.LessOrEqual(t, r.Y+r.H, model.PlayBottom)
		got, ok := g.CellAt(r.Center())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
	first := g.TileRect(Cell{0, 0})
	_, ok := g.CellAt(model.Point{X: first.X + first.W, Y: first.Y})
	assert.False(t, ok, "padding column must not hit a tile")

	assert.Equal(t, FeedbackSelect, g.HandleClick(first.Center()))
	assert.True(t, g.IsSelected(Cell{0, 0}))
	assert.Equal(t, FeedbackDeselect, g.HandleClick(first.Center()))
	assert.Empty(t, g.Selected())
	assert.Equal(t, FeedbackNone, g.HandleClick(model.Point{X: 0, Y: 0}))
}

func TestSelectGridSolvesOnExactAnswer(t *testing.T) {
	for _, newFn := range []Constructor{NewTrafficLight, NewBus, NewCrosswalk} {
		c := newFn(generator.NewSeeded(3)).(*selectGrid)
		answer := c.Answer()
		for cell := range answer {
			assert.Equal(t, FeedbackSelect, c.HandleInput(click(c.Grid().TileRect(cell).Center())))
		}
		assert.True(t, c.IsSolved())

		var extra Cell
		for _, cell := range c.Grid().Cells() {
			if !answer.Has(cell) {
				extra = cell
				break
			}
		}
		c.HandleInput(click(c.Grid().TileRect(extra).Center()))
		assert.False(t, c.IsSolved(), "extra tile must fail")

		moved := model.Event{Kind: model.EventPointerMove, Pos: c.Grid().TileRect(extra).Center()}
		assert.Equal(t, FeedbackNone, c.HandleInput(moved))

		c.Reset()
		assert.Empty(t, c.Grid().Selected())
	}
}

func TestCrosswalkAnswerIsPath(t *testing.T) {
	gen := generator.NewSeeded(5)
	for i := 0; i < 50; i++ {
		c := NewCrosswalk(gen).(*selectGrid)
		assert.True(t, connectsEdges(c.Answer(), 3))
		assert.Equal(t, model.Medium, c.Difficulty())
	}
}

func TestCheckboxFleesThenYields(t *testing.T) {
	c := NewCheckbox(generator.NewSeeded(9)).(*Checkbox)
	for i := 0; i < MaxDodges; i++ {
		before := c.Rect()
		fb := c.HandleInput(model.Event{Kind: model.EventPointerMove, Pos: before.Center()})
		require.Equal(t, FeedbackFlee, fb, "dodge %d", i+1)
		after := c.Rect()
		assert.True(t, farEnough(model.Point{X: before.X, Y: before.Y}, model.Point{X: after.X, Y: after.Y}))
		assert.GreaterOrEqual(t, after.X, boxMinX)
		assert.LessOrEqual(t, after.X, boxMaxX)
		assert.GreaterOrEqual(t, after.Y, boxMinY)
		assert.LessOrEqual(t, after.Y, boxMaxY)
	}
	assert.Equal(t, MaxDodges, c.Dodges())

	center := c.Rect().Center()
	assert.Equal(t, FeedbackNone, c.HandleInput(model.Event{Kind: model.EventPointerMove, Pos: center}))
	assert.False(t, c.IsSolved())
	assert.Equal(t, FeedbackSelect, c.HandleInput(click(center)))
	assert.True(t, c.IsSolved())
	assert.Equal(t, FeedbackNone, c.HandleInput(click(center)))
}

func TestCheckboxIgnoresFarPointer(t *testing.T) {
	c := NewCheckbox(generator.NewSeeded(2)).(*Checkbox)
	r := c.Rect()
	far := model.Point{X: r.X + 20, Y: r.Y}
	if far.X >= model.ScreenW {
		far.X = r.X - 20
	}
	assert.Equal(t, FeedbackNone, c.HandleInput(model.Event{Kind: model.EventPointerMove, Pos: far}))
	assert.Equal(t, FeedbackNone, c.HandleInput(click(far)))
	assert.Equal(t, 0, c.Dodges())
	assert.Equal(t, r, c.Rect())
}

func TestCheckboxClickSolvesBeforeDodgesRunOut(t *testing.T) {
	c := NewCheckbox(generator.NewSeeded(4)).(*Checkbox)
	assert.Equal(t, FeedbackSelect, c.HandleInput(click(c.Rect().Center())))
	assert.True(t, c.Checked())
	c.Reset()
	assert.False(t, c.Checked())
	assert.Equal(t, 0, c.Dodges())
}

func TestShuffleTextTyping(t *testing.T) {
	c := NewShuffleText(generator.NewSeeded(1), []string{"CRANE"}).(*ShuffleText)
	require.Equal(t, "CRANE", c.Word())

	assert.Equal(t, FeedbackNone, c.HandleInput(model.Event{Kind: model.EventKeyDown, Key: model.KeyBackspace}))
	for _, r := range "cran" {
		assert.Equal(t, FeedbackSelect, c.HandleInput(key(r)))
	}
	assert.Equal(t, FeedbackNone, c.HandleInput(key('7')))
	assert.Equal(t, FeedbackNone, c.HandleInput(key('é')), "only ASCII letters count")
	assert.Equal(t, FeedbackNone, c.HandleInput(key('Ж')))
	assert.Equal(t, "CRAN", c.Typed())
	assert.False(t, c.IsSolved())
	assert.Equal(t, FeedbackSelect, c.HandleInput(key('x')))
	assert.Equal(t, "CRANX", c.Typed())
	assert.Equal(t, FeedbackNone, c.HandleInput(key('e')), "input is capped at word length")
	assert.Equal(t, FeedbackDeselect, c.HandleInput(model.Event{Kind: model.EventKeyDown, Key: model.KeyBackspace}))
	c.HandleInput(key('e'))
	assert.True(t, c.IsSolved())
	assert.True(t, c.IsSolved())

	c.Reset()
	assert.Empty(t, c.Typed())
	assert.False(t, c.IsSolved())
}

func TestShuffleTextEmptyBankUsesDefault(t *testing.T) {
	c := NewShuffleText(generator.NewSeeded(1), nil).(*ShuffleText)
	assert.NotEmpty(t, c.Word())
	assert.Equal(t, model.Hard, c.Difficulty())
}

func TestFeedbackCue(t *testing.T) {
	cue, ok := FeedbackFlee.Cue()
	assert.True(t, ok)
	assert.Equal(t, model.CueFlee, cue)
	_, ok = FeedbackNone.Cue()
	assert.False(t, ok)
}
