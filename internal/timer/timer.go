// Package timer provides the per-round countdown.
package timer

import (
	"time"

	"github.com/verte-zerg/captcharun/internal/model"
)

// Timer counts down the time allotted for one round. The limit shrinks
// with the round number:
//
//	limit = max(min, start - (round-1)*decay)
type Timer struct {
	start time.Duration
	min   time.Duration
	decay time.Duration

	limit   time.Duration
	elapsed time.Duration
	running bool
}

// New returns a stopped timer configured from rules.
func New(rules model.Rules) *Timer {
	return &Timer{
		start: rules.TimerStart,
		min:   rules.TimerMin,
		decay: rules.TimerDecay,
		limit: rules.TimerStart,
	}
}

// LimitFor returns the time limit for a round without touching the timer.
func (t *Timer) LimitFor(round int) time.Duration {
	if round < 1 {
		round = 1
	}
	limit := t.start - time.Duration(round-1)*t.decay
	if limit < t.min {
		return t.min
	}
	return limit
}

// Start resets elapsed time and begins counting down for round.
func (t *Timer) Start(round int) {
	t.limit = t.LimitFor(round)
	t.elapsed = 0
	t.running = true
}

// Stop freezes the timer without resetting it.
func (t *Timer) Stop() {
	t.running = false
}

// Update advances the timer by dt while it is running.
func (t *Timer) Update(dt time.Duration) {
	if !t.running || dt <= 0 || t.elapsed >= t.limit {
		return
	}
	if dt >= t.limit-t.elapsed {
		t.elapsed = t.limit
		return
	}
	t.elapsed += dt
}

// Fill returns the remaining fraction of the limit in [0, 1].
func (t *Timer) Fill() float64 {
	if t.limit <= 0 {
		return 0
	}
	f := 1 - float64(t.elapsed)/float64(t.limit)
	if f < 0 {
		return 0
	}
	return f
}

// Remaining returns the time left in the round.
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.limit {
		return 0
	}
	return t.limit - t.elapsed
}

// Expired reports whether the limit has been reached.
func (t *Timer) Expired() bool {
	return t.elapsed >= t.limit
}

// Limit returns the limit for the current round.
func (t *Timer) Limit() time.Duration {
	return t.limit
}

// Elapsed returns the time spent in the current round.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Running reports whether the timer is ticking.
func (t *Timer) Running() bool {
	return t.running
}
