package render

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/verte-zerg/captcharun/internal/model"
)

const (
	titleStartY = -3.0
	titleRestY  = 4.0
	titleFreq   = 6.0
	titleDamp   = 0.35
)

type sprite struct {
	x     float64
	y     int
	speed float64
	glyph string
	color model.Color
}

// MenuScene is the animated title screen background. Each renderer owns
// its own scene, so its clock starts over whenever the menu is shown again.
type MenuScene struct {
	elapsed  time.Duration
	titleY   float64
	titleVel float64
	sprites  []sprite
}

// NewMenuScene returns a scene at its initial frame.
func NewMenuScene() *MenuScene {
	s := &MenuScene{}
	s.Reset()
	return s
}

// Reset rewinds the animation.
func (s *MenuScene) Reset() {
	s.elapsed = 0
	s.titleY = titleStartY
	s.titleVel = 0
	glyphs := []string{"☐", "☑", "✓", "▦"}
	colors := []model.Color{model.ColorTileBorder, "#9DB5DE"}
	s.sprites = s.sprites[:0]
	for i := 0; i < 9; i++ {
		s.sprites = append(s.sprites, sprite{
			x:     float64((i * 13) % model.ScreenW),
			y:     1 + (i*7)%(model.ScreenH-2),
			speed: 2 + float64(i%4),
			glyph: glyphs[i%len(glyphs)],
			color: colors[i%len(colors)],
		})
	}
}

// Tick advances the animation by dt. Non-positive dt is ignored.
func (s *MenuScene) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt
	spring := harmonica.NewSpring(dt.Seconds(), titleFreq, titleDamp)
	s.titleY, s.titleVel = spring.Update(s.titleY, s.titleVel, titleRestY)
	for i := range s.sprites {
		sp := &s.sprites[i]
		sp.x += sp.speed * dt.Seconds()
		if sp.x >= model.ScreenW {
			sp.x -= model.ScreenW
		}
	}
}

// Elapsed returns the time the scene has been running.
func (s *MenuScene) Elapsed() time.Duration { return s.elapsed }

// TitleRow returns the row the title is drawn on this frame.
func (s *MenuScene) TitleRow() int {
	return int(math.Round(s.titleY))
}

// Draw paints the background sprites and the title.
func (s *MenuScene) Draw(c *Canvas) {
	for _, sp := range s.sprites {
		c.Text(int(sp.x), sp.y, sp.glyph, model.Style{FG: sp.color})
	}
	row := s.TitleRow()
	title := "CAPTCHArun"
	x := (model.ScreenW - len(title)) / 2
	frame := model.Rect{X: x - 3, Y: row - 1, W: len(title) + 6, H: 3}
	c.Fill(frame, ' ', model.Style{BG: model.ColorTile})
	c.Border(frame, model.Style{FG: model.ColorHighlight, BG: model.ColorTile})
	c.Text(x, row, title, model.Style{FG: model.ColorHighlight, BG: model.ColorTile, Bold: true})
	// Blinking caret after the title, twice a second.
	if (s.elapsed/(500*time.Millisecond))%2 == 0 {
		c.Text(x+len(title), row, "▌", model.Style{FG: model.ColorHighlight, BG: model.ColorTile})
	}
}
