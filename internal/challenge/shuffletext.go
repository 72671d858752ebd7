package challenge

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/model"
	"github.com/verte-zerg/captcharun/internal/wordlist"
)

// ShuffleID is the registry id of the distorted-text challenge.
const ShuffleID = "shuffle"

const noiseCount = 14

var (
	displayRect = model.Rect{X: 4, Y: model.PlayTop + 2, W: model.ScreenW - 8, H: 5}
	inputRect   = model.Rect{X: 8, Y: model.PlayTop + 10, W: model.ScreenW - 16, H: 3}

	glyphColors = []model.Color{"#212121", "#2A5DB0", "#6A1B9A", "#00695C", "#BF360C"}
	noiseRunes  = []string{"·", "╱", "╲", "~", "°"}
)

// glyph holds the per-letter distortion drawn once per puzzle.
type glyph struct {
	ch        rune
	dy        int
	gap       int
	fg        model.Color
	bold      bool
	underline bool
}

type speck struct {
	at model.Point
	ch string
}

// ShuffleText shows a distorted word and asks the player to type it.
// Matching ignores case.
type ShuffleText struct {
	gen    *generator.Generator
	words  []string
	word   string
	typed  []rune
	glyphs []glyph
	noise  []speck
}

// NewShuffleText returns a typed-text challenge drawing from words. An
// empty bank falls back to the builtin one.
func NewShuffleText(gen *generator.Generator, words []string) Challenge {
	if len(words) == 0 {
		words = wordlist.Default()
	}
	c := &ShuffleText{gen: gen, words: words}
	c.Reset()
	return c
}

func (c *ShuffleText) Prompt() string { return "Type the characters you see" }

func (c *ShuffleText) Difficulty() model.Difficulty { return model.Hard }

// Word returns the target word.
func (c *ShuffleText) Word() string { return c.word }

// Typed returns what the player has entered so far.
func (c *ShuffleText) Typed() string { return string(c.typed) }

func (c *ShuffleText) Reset() {
	c.word = c.words[c.gen.Intn(len(c.words))]
	c.typed = c.typed[:0]
	c.glyphs = c.glyphs[:0]
	for _, ch := range c.word {
		g := glyph{
			ch:        ch,
			dy:        c.gen.Range(-1, 1),
			gap:       c.gen.Range(0, 1),
			fg:        glyphColors[c.gen.Intn(len(glyphColors))],
			bold:      c.gen.Chance(0.5),
			underline: c.gen.Chance(0.2),
		}
		if c.gen.Chance(0.3) {
			g.ch = unicode.ToLower(ch)
		}
		c.glyphs = append(c.glyphs, g)
	}
	c.noise = c.noise[:0]
	for i := 0; i < noiseCount; i++ {
		c.noise = append(c.noise, speck{
			at: model.Point{
				X: displayRect.X + 1 + c.gen.Intn(displayRect.W-2),
				Y: displayRect.Y + 1 + c.gen.Intn(displayRect.H-2),
			},
			ch: noiseRunes[c.gen.Intn(len(noiseRunes))],
		})
	}
}

func (c *ShuffleText) HandleInput(ev model.Event) Feedback {
	if ev.Kind != model.EventKeyDown {
		return FeedbackNone
	}
	switch ev.Key {
	case model.KeyBackspace:
		if len(c.typed) == 0 {
			return FeedbackNone
		}
		c.typed = c.typed[:len(c.typed)-1]
		return FeedbackDeselect
	case model.KeyRune:
		if !isASCIILetter(ev.Rune) || len(c.typed) >= len([]rune(c.word)) {
			return FeedbackNone
		}
		c.typed = append(c.typed, unicode.ToUpper(ev.Rune))
		return FeedbackSelect
	}
	return FeedbackNone
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func (c *ShuffleText) IsSolved() bool {
	return strings.EqualFold(string(c.typed), c.word)
}

func (c *ShuffleText) Render(s Surface) {
	panel := model.Style{FG: model.ColorTileBorder, BG: model.ColorTile}
	s.Fill(displayRect, ' ', model.Style{BG: model.ColorTile})
	s.Border(displayRect, panel)
	for _, n := range c.noise {
		s.Text(n.at.X, n.at.Y, n.ch, model.Style{FG: model.ColorTileBorder, BG: model.ColorTile})
	}

	width := 0
	for _, g := range c.glyphs {
		width += 2 + g.gap
	}
	x := displayRect.X + (displayRect.W-width)/2
	mid := displayRect.Y + displayRect.H/2
	for _, g := range c.glyphs {
		s.Text(x, mid+g.dy, string(g.ch), model.Style{FG: g.fg, BG: model.ColorTile, Bold: g.bold, Underline: g.underline})
		x += 2 + g.gap
	}

	s.Fill(inputRect, ' ', model.Style{BG: model.ColorTile})
	s.Border(inputRect, model.Style{FG: model.ColorHighlight, BG: model.ColorTile})
	entry := string(c.typed)
	if len(c.typed) < len([]rune(c.word)) {
		entry += "_"
	}
	s.Text(inputRect.X+2, inputRect.Y+1, entry, model.Style{FG: model.ColorText, BG: model.ColorTile, Bold: true})

	counter := fmt.Sprintf("%d/%d characters", len(c.typed), len([]rune(c.word)))
	centerText(s, model.Rect{X: 0, W: model.ScreenW}, inputRect.Y+inputRect.H, counter,
		model.Style{FG: model.ColorChrome, BG: model.ColorBackground})
}
