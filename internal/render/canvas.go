// Package render paints game frames onto a fixed-size cell canvas and
// turns it into styled terminal text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/captcharun/internal/model"
)

type cell struct {
	ch    rune
	style model.Style
	// raw is a pre-styled segment that covers rawWidth cells.
	raw      string
	rawWidth int
	// cont marks the right half of a wide rune or the tail of a raw run.
	cont bool
}

// Canvas is a grid of styled cells. It implements challenge.Surface.
type Canvas struct {
	w      int
	h      int
	cells  []cell
	styles map[model.Style]lipgloss.Style
}

// NewCanvas returns a w x h canvas cleared to the background colour.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		w:      w,
		h:      h,
		cells:  make([]cell, w*h),
		styles: map[model.Style]lipgloss.Style{},
	}
	c.Clear(model.ColorBackground)
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.h }

// Clear resets every cell to a blank of colour bg.
func (c *Canvas) Clear(bg model.Color) {
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', style: model.Style{BG: bg}}
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

func (c *Canvas) at(x, y int) *cell {
	return &c.cells[y*c.w+x]
}

// set writes one rune. An empty background keeps the cell's current one.
func (c *Canvas) set(x, y int, ch rune, style model.Style) {
	if !c.inside(x, y) {
		return
	}
	dst := c.at(x, y)
	for i := 1; i < dst.rawWidth && x+i < c.w; i++ {
		c.at(x+i, y).cont = false
	}
	if style.BG == "" {
		style.BG = dst.style.BG
	}
	*dst = cell{ch: ch, style: style}
}

// Fill paints every cell of r with ch.
func (c *Canvas) Fill(r model.Rect, ch rune, style model.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.set(x, y, ch, style)
		}
	}
}

// Text writes s starting at (x, y), clipping at the right edge. Wide runes
// take two cells.
func (c *Canvas) Text(x, y int, s string, style model.Style) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > c.w {
			return
		}
		c.set(x, y, r, style)
		if w == 2 && c.inside(x+1, y) {
			c.set(x+1, y, ' ', style)
			c.at(x+1, y).cont = true
		}
		x += w
	}
}

// Border draws a rounded box outline along the edge of r.
func (c *Canvas) Border(r model.Rect, style model.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right := r.X + r.W - 1
	bottom := r.Y + r.H - 1
	for x := r.X + 1; x < right; x++ {
		c.set(x, r.Y, '─', style)
		c.set(x, bottom, '─', style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.set(r.X, y, '│', style)
		c.set(right, y, '│', style)
	}
	c.set(r.X, r.Y, '╭', style)
	c.set(right, r.Y, '╮', style)
	c.set(r.X, bottom, '╰', style)
	c.set(right, bottom, '╯', style)
}

// PutRaw places an already styled segment that occupies width cells.
func (c *Canvas) PutRaw(x, y, width int, s string) {
	if !c.inside(x, y) || width <= 0 {
		return
	}
	if x+width > c.w {
		width = c.w - x
	}
	head := c.at(x, y)
	*head = cell{ch: ' ', style: head.style, raw: s, rawWidth: width}
	for i := 1; i < width; i++ {
		tail := c.at(x+i, y)
		*tail = cell{ch: ' ', style: tail.style, cont: true}
	}
}

// Tint blends the background of every cell in r toward color by alpha.
func (c *Canvas) Tint(r model.Rect, color model.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	target, err := colorful.Hex(string(color))
	if err != nil {
		return
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if !c.inside(x, y) {
				continue
			}
			dst := c.at(x, y)
			base, err := colorful.Hex(string(dst.style.BG))
			if err != nil {
				continue
			}
			dst.style.BG = model.Color(base.BlendRgb(target, alpha).Clamped().Hex())
		}
	}
}

// Rune returns the rune and style stored at (x, y).
func (c *Canvas) Rune(x, y int) (rune, model.Style) {
	if !c.inside(x, y) {
		return 0, model.Style{}
	}
	cl := c.at(x, y)
	return cl.ch, cl.style
}

// PlainLine returns row y without styling. Raw segments show as blanks.
func (c *Canvas) PlainLine(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		cl := c.at(x, y)
		if cl.rawWidth > 0 {
			b.WriteString(strings.Repeat(" ", cl.rawWidth))
			x += cl.rawWidth - 1
			continue
		}
		if cl.cont {
			continue
		}
		b.WriteRune(cl.ch)
	}
	return b.String()
}

func (c *Canvas) lipStyle(s model.Style) lipgloss.Style {
	if st, ok := c.styles[s]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if s.FG != "" {
		st = st.Foreground(lipgloss.Color(s.FG))
	}
	if s.BG != "" {
		st = st.Background(lipgloss.Color(s.BG))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	c.styles[s] = st
	return st
}

// String renders the canvas, one line per row, merging runs of equally
// styled cells into a single styled segment.
func (c *Canvas) String() string {
	var out strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		var runStyle model.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(c.lipStyle(runStyle).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			cl := c.at(x, y)
			if cl.cont {
				continue
			}
			if cl.raw != "" {
				flush()
				out.WriteString(cl.raw)
				continue
			}
			if run.Len() > 0 && cl.style != runStyle {
				flush()
			}
			runStyle = cl.style
			run.WriteRune(cl.ch)
		}
		flush()
	}
	return out.String()
}
