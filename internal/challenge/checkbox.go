package challenge

import (
	"fmt"

	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/model"
)

// CheckboxID is the registry id of the fleeing checkbox challenge.
const CheckboxID = "checkbox"

// Checkbox geometry in cells. Rows are roughly twice as tall as columns
// are wide, so vertical distance counts double when measuring proximity.
const (
	BoxW       = 7
	BoxH       = 3
	FleeRadius = 9
	MaxDodges  = 4

	relocateTries = 64
)

// Usable area for the box, leaving a row under it for the hint.
var (
	boxMinX = 2
	boxMaxX = model.ScreenW - BoxW - 2
	boxMinY = model.PlayTop + 1
	boxMaxY = model.PlayBottom - BoxH - 2
)

// Checkbox is a single box that jumps away from the pointer a limited
// number of times before it lets itself be ticked.
type Checkbox struct {
	gen     *generator.Generator
	pos     model.Point
	dodges  int
	checked bool
}

// NewCheckbox returns a fleeing checkbox challenge.
func NewCheckbox(gen *generator.Generator) Challenge {
	c := &Checkbox{gen: gen}
	c.Reset()
	return c
}

func (c *Checkbox) Prompt() string { return "Click the checkbox to verify" }

func (c *Checkbox) Difficulty() model.Difficulty { return model.Easy }

// Rect is the current box area.
func (c *Checkbox) Rect() model.Rect {
	return model.Rect{X: c.pos.X, Y: c.pos.Y, W: BoxW, H: BoxH}
}

// Dodges returns how many times the box has fled.
func (c *Checkbox) Dodges() int { return c.dodges }

// Checked reports whether the box was ticked.
func (c *Checkbox) Checked() bool { return c.checked }

func (c *Checkbox) Reset() {
	c.pos = model.Point{
		X: c.gen.Range(boxMinX, boxMaxX),
		Y: c.gen.Range(boxMinY, boxMaxY),
	}
	c.dodges = 0
	c.checked = false
}

func (c *Checkbox) HandleInput(ev model.Event) Feedback {
	switch {
	case ev.Kind == model.EventPointerMove:
		if c.tryFlee(ev.Pos) {
			return FeedbackFlee
		}
	case ev.IsClick():
		if c.checked || !c.Rect().Contains(ev.Pos) {
			return FeedbackNone
		}
		c.checked = true
		return FeedbackSelect
	}
	return FeedbackNone
}

func (c *Checkbox) IsSolved() bool { return c.checked }

// near reports whether p is within FleeRadius of the box center.
func (c *Checkbox) near(p model.Point) bool {
	center := c.Rect().Center()
	dx := p.X - center.X
	dy := (p.Y - center.Y) * 2
	return dx*dx+dy*dy < FleeRadius*FleeRadius
}

func (c *Checkbox) tryFlee(p model.Point) bool {
	if c.checked || c.dodges >= MaxDodges || !c.near(p) {
		return false
	}
	c.relocate()
	c.dodges++
	return true
}

// relocate moves the box at least two box sizes away on one axis.
func (c *Checkbox) relocate() {
	old := c.pos
	for i := 0; i < relocateTries; i++ {
		next := model.Point{
			X: c.gen.Range(boxMinX, boxMaxX),
			Y: c.gen.Range(boxMinY, boxMaxY),
		}
		if farEnough(old, next) {
			c.pos = next
			return
		}
	}
	// The farther horizontal edge is always more than 2*BoxW away.
	x := boxMinX
	if old.X-boxMinX < boxMaxX-old.X {
		x = boxMaxX
	}
	c.pos = model.Point{X: x, Y: c.gen.Range(boxMinY, boxMaxY)}
}

func farEnough(a, b model.Point) bool {
	return abs(a.X-b.X) >= 2*BoxW || abs(a.Y-b.Y) >= 2*BoxH
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (c *Checkbox) Render(s Surface) {
	r := c.Rect()
	if c.checked {
		s.Fill(r, ' ', model.Style{BG: model.ColorHighlight})
		s.Border(r, model.Style{FG: model.ColorHighlight, BG: model.ColorHighlight})
		centerText(s, r, r.Y+1, "✓", model.Style{FG: model.ColorTextLight, BG: model.ColorHighlight, Bold: true})
	} else {
		s.Fill(r, ' ', model.Style{BG: model.ColorTile})
		s.Border(r, model.Style{FG: model.ColorChrome, BG: model.ColorTile})
	}
	hint := "I'm not a robot"
	if left := MaxDodges - c.dodges; !c.checked && left > 0 && c.dodges > 0 {
		hint = fmt.Sprintf("nice try (%d)", left)
	}
	x := r.X + (BoxW-len(hint))/2
	if x < 0 {
		x = 0
	}
	if x+len(hint) > model.ScreenW {
		x = model.ScreenW - len(hint)
	}
	s.Text(x, r.Y+BoxH, hint, model.Style{FG: model.ColorChrome, BG: model.ColorBackground})
}
