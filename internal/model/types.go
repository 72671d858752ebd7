// Package model defines shared data structures.
package model

import (
	"fmt"
	"time"
)

// Difficulty is a challenge tier used for round gating.
type Difficulty string

// Difficulty tiers.
const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the tiers in unlock order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// Thresholds maps each difficulty to the first round it may appear in.
type Thresholds map[Difficulty]int

// DefaultThresholds returns the stock unlock table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Easy:   0,
		Medium: 5,
		Hard:   8,
	}
}

// Rules holds the tunable game constants.
type Rules struct {
	TimerStart      time.Duration
	TimerMin        time.Duration
	TimerDecay      time.Duration
	MaxStrikes      int
	RoundsPerLevel  int
	BaseScore       int
	FlashDuration   time.Duration
	LevelUpDuration time.Duration
}

// DefaultRules returns the stock game constants.
func DefaultRules() Rules {
	return Rules{
		TimerStart:      12 * time.Second,
		TimerMin:        4 * time.Second,
		TimerDecay:      400 * time.Millisecond,
		MaxStrikes:      3,
		RoundsPerLevel:  5,
		BaseScore:       100,
		FlashDuration:   450 * time.Millisecond,
		LevelUpDuration: 2800 * time.Millisecond,
	}
}

// Validate reports the first rule that cannot drive a game.
func (r Rules) Validate() error {
	if r.TimerMin <= 0 {
		return fmt.Errorf("timer-min must be > 0")
	}
	if r.TimerStart < r.TimerMin {
		return fmt.Errorf("timer-start must be >= timer-min")
	}
	if r.TimerDecay < 0 {
		return fmt.Errorf("timer-decay must be >= 0")
	}
	if r.MaxStrikes <= 0 {
		return fmt.Errorf("max-strikes must be > 0")
	}
	if r.RoundsPerLevel <= 0 {
		return fmt.Errorf("rounds-per-level must be > 0")
	}
	if r.BaseScore <= 0 {
		return fmt.Errorf("base-score must be > 0")
	}
	if r.FlashDuration <= 0 {
		return fmt.Errorf("flash must be > 0")
	}
	if r.LevelUpDuration < 0 {
		return fmt.Errorf("level-up must be >= 0")
	}
	return nil
}

// Config defines play settings resolved from flags and the config file.
type Config struct {
	FPS        int
	Seed       int64
	WordBank   string
	Mute       bool
	Volume     float64
	Rules      Rules
	Thresholds Thresholds
	Weights    map[string]int
}

// Flash identifies the feedback overlay shown after a verification.
type Flash int

// Flash kinds.
const (
	FlashNone Flash = iota
	FlashPass
	FlashFail
)

func (f Flash) String() string {
	switch f {
	case FlashPass:
		return "pass"
	case FlashFail:
		return "fail"
	default:
		return "none"
	}
}
