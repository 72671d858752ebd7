package game

import (
	"time"

	"github.com/verte-zerg/captcharun/internal/challenge"
	"github.com/verte-zerg/captcharun/internal/model"
	"github.com/verte-zerg/captcharun/internal/session"
)

// MenuFrame is everything the title screen needs.
type MenuFrame struct {
	Hover bool
	// Dt is the time advanced since the previous frame, for animation.
	Dt time.Duration
}

// PlayingFrame describes one frame of an active round. During the flash
// after a verification Interactive is false and Flash is set.
type PlayingFrame struct {
	Challenge   challenge.Challenge
	Session     session.Snapshot
	Fill        float64
	Remaining   time.Duration
	Hover       bool
	Interactive bool
	Flash       model.Flash
	FlashAlpha  float64
}

// LevelUpFrame is shown between levels.
type LevelUpFrame struct {
	Session   session.Snapshot
	Remaining time.Duration
	// Progress runs from 0 to 1 over the level-up display.
	Progress float64
}

// GameOverFrame is the final scoreboard.
type GameOverFrame struct {
	Session  session.Snapshot
	Hover    bool
	TimedOut bool
}

// Renderer paints a frame. Methods for interactive screens return the
// action button area so the next input batch can hit-test against it.
type Renderer interface {
	Menu(f MenuFrame) model.Rect
	Playing(f PlayingFrame) model.Rect
	LevelUp(f LevelUpFrame)
	GameOver(f GameOverFrame) model.Rect
}

// Audio plays symbolic cues. Implementations must be safe to call when no
// output device is present.
type Audio interface {
	Play(cue model.Cue)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play does nothing.
func (NopAudio) Play(model.Cue) {}

// Source hands out challenges. *factory.Factory satisfies it.
type Source interface {
	Next(round int) (challenge.Challenge, error)
	ResetHistory()
}
