// Package session tracks score, streak, strikes and security level for
// one playthrough.
package session

import (
	"time"

	"github.com/verte-zerg/captcharun/internal/model"
)

// Snapshot is a read-only copy of the session used for presentation.
type Snapshot struct {
	Round       int
	Score       int
	Streak      int
	Strikes     int
	StrikesLeft int
	MaxStrikes  int
	Level       int
	LevelUp     bool
	Multiplier  int
}

// Session is the mutable scoreboard. The orchestrator is its sole owner.
type Session struct {
	baseScore      int
	maxStrikes     int
	roundsPerLevel int
	flashDuration  time.Duration

	round   int
	score   int
	streak  int
	strikes int
	level   int
	levelUp bool

	flash      model.Flash
	flashTimer time.Duration
}

// New returns a session in its initial state.
func New(rules model.Rules) *Session {
	s := &Session{
		baseScore:      rules.BaseScore,
		maxStrikes:     rules.MaxStrikes,
		roundsPerLevel: rules.RoundsPerLevel,
		flashDuration:  rules.FlashDuration,
	}
	s.Reset()
	return s
}

// Reset starts a fresh game.
func (s *Session) Reset() {
	s.round = 1
	s.score = 0
	s.streak = 0
	s.strikes = 0
	s.level = 1
	s.levelUp = false
	s.flash = model.FlashNone
	s.flashTimer = 0
}

// RegisterPass records a correct answer. The streak bonus is computed
// before the streak grows, so the first pass of a streak earns BaseScore.
func (s *Session) RegisterPass() {
	s.score += s.baseScore * (1 + s.streak)
	s.streak++
	s.round++
	newLevel := s.levelFor(s.round)
	if newLevel > s.level {
		s.level = newLevel
		s.levelUp = true
	} else {
		s.levelUp = false
	}
	s.startFlash(model.FlashPass)
}

// RegisterFail records a wrong answer or timeout. The round does not
// advance.
func (s *Session) RegisterFail() {
	s.strikes++
	s.streak = 0
	s.levelUp = false
	s.startFlash(model.FlashFail)
}

// IsGameOver reports whether all strikes are used up.
func (s *Session) IsGameOver() bool {
	return s.strikes >= s.maxStrikes
}

func (s *Session) levelFor(round int) int {
	return (round-1)/s.roundsPerLevel + 1
}

func (s *Session) startFlash(f model.Flash) {
	s.flash = f
	s.flashTimer = s.flashDuration
}

// UpdateFlash decays the flash overlay linearly. Negative dt is ignored.
func (s *Session) UpdateFlash(dt time.Duration) {
	if dt <= 0 || s.flashTimer <= 0 {
		return
	}
	s.flashTimer -= dt
	if s.flashTimer <= 0 {
		s.flashTimer = 0
		s.flash = model.FlashNone
	}
}

// FlashState returns the active flash and its alpha in [0, 1].
func (s *Session) FlashState() (model.Flash, float64) {
	if s.flash == model.FlashNone || s.flashDuration <= 0 {
		return model.FlashNone, 0
	}
	return s.flash, float64(s.flashTimer) / float64(s.flashDuration)
}

// Round returns the current round, starting at 1.
func (s *Session) Round() int { return s.round }

// Score returns the cumulative score.
func (s *Session) Score() int { return s.score }

// Streak returns the number of consecutive passes.
func (s *Session) Streak() int { return s.streak }

// Strikes returns the number of fails so far.
func (s *Session) Strikes() int { return s.strikes }

// Level returns the security level.
func (s *Session) Level() int { return s.level }

// LevelUp reports whether the last pass crossed a level boundary.
func (s *Session) LevelUp() bool { return s.levelUp }

// Multiplier returns the score multiplier the next pass will earn.
func (s *Session) Multiplier() int { return 1 + s.streak }

// StrikesRemaining returns how many fails are left before game over.
func (s *Session) StrikesRemaining() int {
	if s.strikes >= s.maxStrikes {
		return 0
	}
	return s.maxStrikes - s.strikes
}

// Snapshot copies the presentation-relevant state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Round:       s.round,
		Score:       s.score,
		Streak:      s.streak,
		Strikes:     s.strikes,
		StrikesLeft: s.StrikesRemaining(),
		MaxStrikes:  s.maxStrikes,
		Level:       s.level,
		LevelUp:     s.levelUp,
		Multiplier:  s.Multiplier(),
	}
}
