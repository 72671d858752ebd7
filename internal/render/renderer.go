package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/captcharun/internal/game"
	"github.com/verte-zerg/captcharun/internal/model"
)

var (
	headerStyle   = model.Style{FG: model.ColorTextLight, BG: model.ColorHighlight, Bold: true}
	headerDim     = model.Style{FG: "#C9D6EE", BG: model.ColorHighlight}
	panelStyle    = model.Style{FG: model.ColorText, BG: model.ColorTile}
	panelDim      = model.Style{FG: model.ColorChrome, BG: model.ColorTile}
	textStyle     = model.Style{FG: model.ColorText, BG: model.ColorBackground}
	dimStyle      = model.Style{FG: model.ColorChrome, BG: model.ColorBackground}
	buttonColor   = model.ColorHighlight
	buttonHover   = model.Color("#3F78D6")
	buttonDisable = model.ColorTileBorder

	playArea = model.Rect{X: 0, Y: model.PlayTop, W: model.ScreenW, H: model.PlayBottom - model.PlayTop}
)

// Renderer draws game frames onto a canvas. It implements game.Renderer.
type Renderer struct {
	canvas *Canvas
	menu   *MenuScene
	timer  progress.Model
	level  progress.Model
	inMenu bool
}

// New returns a renderer with its own canvas and menu animation.
func New() *Renderer {
	timerBar := progress.New(
		progress.WithSolidFill(string(model.ColorTimer)),
		progress.WithWidth(model.ScreenW),
		progress.WithoutPercentage(),
	)
	timerBar.EmptyColor = string(model.ColorTileBorder)
	levelBar := progress.New(
		progress.WithSolidFill(string(model.ColorHighlight)),
		progress.WithWidth(model.ScreenW-10),
		progress.WithoutPercentage(),
	)
	levelBar.EmptyColor = string(model.ColorTileBorder)
	return &Renderer{
		canvas: NewCanvas(model.ScreenW, model.ScreenH),
		menu:   NewMenuScene(),
		timer:  timerBar,
		level:  levelBar,
	}
}

// Canvas exposes the last painted frame.
func (r *Renderer) Canvas() *Canvas { return r.canvas }

// MenuScene exposes the title animation.
func (r *Renderer) MenuScene() *MenuScene { return r.menu }

// Menu draws the title screen and returns the start button.
func (r *Renderer) Menu(f game.MenuFrame) model.Rect {
	if !r.inMenu {
		r.menu.Reset()
		r.inMenu = true
	}
	r.menu.Tick(f.Dt)
	c := r.canvas
	c.Clear(model.ColorBackground)
	r.menu.Draw(c)

	centerLine(c, 9, "Prove you are human. Quickly.", textStyle)
	centerLine(c, 11, "Solve each challenge, then VERIFY.", dimStyle)
	centerLine(c, 12, "The clock gets shorter every round.", dimStyle)
	centerLine(c, 13, "Three strikes and you are a robot.", dimStyle)

	button := model.Rect{X: (model.ScreenW - 14) / 2, Y: 16, W: 14, H: 3}
	drawButton(c, button, "START", f.Hover, true)
	centerLine(c, model.ScreenH-2, "esc to quit", dimStyle)
	return button
}

// Playing draws a round: prompt header, timer bar, challenge and the
// bottom panel with the verify button.
func (r *Renderer) Playing(f game.PlayingFrame) model.Rect {
	r.inMenu = false
	c := r.canvas
	c.Clear(model.ColorBackground)

	c.Fill(model.Rect{W: model.ScreenW, H: model.HeaderH}, ' ', headerStyle)
	prompt := ""
	if f.Challenge != nil {
		prompt = f.Challenge.Prompt()
	}
	for i, line := range wrapText(prompt, model.ScreenW-4) {
		if i >= model.HeaderH-1 {
			break
		}
		c.Text(2, i, line, headerStyle)
	}
	c.Text(2, model.HeaderH-1, fmt.Sprintf("SECURITY LEVEL %d", f.Session.Level), headerDim)
	round := fmt.Sprintf("ROUND %d", f.Session.Round)
	c.Text(model.ScreenW-2-len(round), model.HeaderH-1, round, headerDim)

	c.PutRaw(0, model.HeaderH, model.ScreenW, r.timer.ViewAs(f.Fill))

	if f.Challenge != nil {
		f.Challenge.Render(c)
	}

	panel := model.Rect{Y: model.PlayBottom, W: model.ScreenW, H: model.BottomPanelH}
	c.Fill(panel, ' ', panelStyle)
	c.Text(0, model.PlayBottom, strings.Repeat("─", model.ScreenW), panelDim)
	c.Text(2, model.PlayBottom+1, fmt.Sprintf("Score %d", f.Session.Score), model.Style{FG: model.ColorText, BG: model.ColorTile, Bold: true})
	c.Text(2, model.PlayBottom+2, fmt.Sprintf("Streak x%d", f.Session.Multiplier), panelDim)
	c.Text(2, model.PlayBottom+3, "Strikes ", panelDim)
	spent := f.Session.MaxStrikes - f.Session.StrikesLeft
	for i := 0; i < f.Session.MaxStrikes; i++ {
		glyph, fg := "○", model.ColorTileBorder
		if i < spent {
			glyph, fg = "●", model.ColorFail
		}
		c.Text(10+i*2, model.PlayBottom+3, glyph, model.Style{FG: fg, BG: model.ColorTile})
	}

	button := model.Rect{X: model.ScreenW - 15, Y: model.PlayBottom + 1, W: 13, H: 3}
	drawButton(c, button, "VERIFY", f.Hover, f.Interactive)

	if f.Flash != model.FlashNone {
		drawFlash(c, f.Flash, f.FlashAlpha)
	}
	return button
}

// LevelUp draws the interstitial between security levels.
func (r *Renderer) LevelUp(f game.LevelUpFrame) {
	r.inMenu = false
	c := r.canvas
	c.Clear(model.ColorBackground)
	centerLine(c, 6, "ACCESS ESCALATED", model.Style{FG: model.ColorPass, BG: model.ColorBackground, Bold: true})
	banner := model.Rect{X: 6, Y: 8, W: model.ScreenW - 12, H: 3}
	c.Fill(banner, ' ', model.Style{BG: model.ColorHighlight})
	centerLine(c, 9, fmt.Sprintf("SECURITY LEVEL %d", f.Session.Level), headerStyle)
	centerLine(c, 12, fmt.Sprintf("Round %d  ·  Score %d", f.Session.Round, f.Session.Score), textStyle)
	c.PutRaw(5, 15, model.ScreenW-10, r.level.ViewAs(f.Progress))
	centerLine(c, 17, "Tightening the clock...", dimStyle)
}

// GameOver draws the final scoreboard and returns the retry button.
func (r *Renderer) GameOver(f game.GameOverFrame) model.Rect {
	r.inMenu = false
	c := r.canvas
	c.Clear(model.ColorBackground)
	centerLine(c, 4, "VERIFICATION FAILED", model.Style{FG: model.ColorFail, BG: model.ColorBackground, Bold: true})
	reason := "Too many wrong answers."
	if f.TimedOut {
		reason = "Too slow on the last challenge."
	}
	centerLine(c, 6, reason, textStyle)
	centerLine(c, 7, "We could not confirm you are human.", dimStyle)

	card := model.Rect{X: 8, Y: 9, W: model.ScreenW - 16, H: 6}
	c.Fill(card, ' ', panelStyle)
	c.Border(card, model.Style{FG: model.ColorTileBorder, BG: model.ColorTile})
	rows := []string{
		fmt.Sprintf("Score           %6d", f.Session.Score),
		fmt.Sprintf("Rounds cleared  %6d", f.Session.Round-1),
		fmt.Sprintf("Security level  %6d", f.Session.Level),
	}
	for i, row := range rows {
		c.Text(card.X+2, card.Y+1+i, row, panelStyle)
	}

	button := model.Rect{X: (model.ScreenW - 14) / 2, Y: 17, W: 14, H: 3}
	drawButton(c, button, "RETRY", f.Hover, true)
	return button
}

// View returns the canvas centered in a w x h terminal.
func (r *Renderer) View(w, h int) string {
	out := r.canvas.String()
	if w <= 0 || h <= 0 {
		return out
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, out)
}

// Offset returns where the playfield's top-left corner lands when View
// centers it in a w x h terminal.
func Offset(w, h int) model.Point {
	p := model.Point{X: (w - model.ScreenW) / 2, Y: (h - model.ScreenH) / 2}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}

func centerLine(c *Canvas, y int, text string, style model.Style) {
	x := (model.ScreenW - lipgloss.Width(text)) / 2
	if x < 0 {
		x = 0
	}
	c.Text(x, y, text, style)
}

func drawButton(c *Canvas, r model.Rect, label string, hover, enabled bool) {
	bg := buttonColor
	switch {
	case !enabled:
		bg = buttonDisable
	case hover:
		bg = buttonHover
	}
	c.Fill(r, ' ', model.Style{BG: bg})
	c.Border(r, model.Style{FG: bg, BG: bg})
	x := r.X + (r.W-len(label))/2
	c.Text(x, r.Y+r.H/2, label, model.Style{FG: model.ColorTextLight, BG: bg, Bold: true})
}

func drawFlash(c *Canvas, flash model.Flash, alpha float64) {
	color, label := model.ColorPass, " ✓ VERIFIED "
	if flash == model.FlashFail {
		color, label = model.ColorFail, " ✗ TRY AGAIN "
	}
	c.Tint(model.Rect{W: model.ScreenW, H: model.PlayBottom}, color, alpha*0.6)
	mid := playArea.Y + playArea.H/2
	centerLine(c, mid, label, model.Style{FG: model.ColorTextLight, BG: color, Bold: true})
}
