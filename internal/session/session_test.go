package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/captcharun/internal/model"
)

func TestResetState(t *testing.T) {
	s := New(model.DefaultRules())
	s.RegisterPass()
	s.RegisterFail()
	s.Reset()
	snap := s.Snapshot()
	assert.Equal(t, Snapshot{Round: 1, StrikesLeft: 3, MaxStrikes: 3, Level: 1, Multiplier: 1}, snap)
	flash, alpha := s.FlashState()
	assert.Equal(t, model.FlashNone, flash)
	assert.Zero(t, alpha)
}

func TestScoreLaw(t *testing.T) {
	for n := 1; n <= 12; n++ {
		s := New(model.DefaultRules())
		for i := 0; i < n; i++ {
			s.RegisterPass()
		}
		require.Equal(t, 100*n*(n+1)/2, s.Score(), "n=%d", n)
		require.Equal(t, 1+n, s.Round(), "n=%d", n)
		require.Equal(t, n, s.Streak(), "n=%d", n)
	}
}

func TestStrikeLaw(t *testing.T) {
	s := New(model.DefaultRules())
	s.RegisterFail()
	s.RegisterFail()
	assert.False(t, s.IsGameOver())
	assert.Equal(t, 1, s.StrikesRemaining())
	assert.Equal(t, 1, s.Snapshot().StrikesLeft)
	s.RegisterFail()
	assert.True(t, s.IsGameOver())
	assert.Equal(t, 0, s.StrikesRemaining())
}

func TestPassDoesNotClearStrikes(t *testing.T) {
	s := New(model.DefaultRules())
	s.RegisterPass()
	s.RegisterPass()
	s.RegisterFail()
	assert.Equal(t, 0, s.Streak())
	assert.Equal(t, 1, s.Strikes())
	assert.Equal(t, 3, s.Round())
	s.RegisterPass()
	assert.Equal(t, 1, s.Strikes())
	assert.Equal(t, 1, s.Streak())
}

func TestLevelUpLaw(t *testing.T) {
	s := New(model.DefaultRules())
	for i := 1; i <= 12; i++ {
		s.RegisterPass()
		wantUp := i == 5 || i == 10
		require.Equal(t, wantUp, s.LevelUp(), "pass %d", i)
		require.Equal(t, (s.Round()-1)/5+1, s.Level(), "pass %d", i)
	}
	assert.Equal(t, 3, s.Level())
}

func TestFailClearsLevelUp(t *testing.T) {
	s := New(model.DefaultRules())
	for i := 0; i < 5; i++ {
		s.RegisterPass()
	}
	require.True(t, s.LevelUp())
	s.RegisterFail()
	assert.False(t, s.LevelUp())
	assert.Equal(t, 2, s.Level())
}

func TestFlashDecay(t *testing.T) {
	s := New(model.DefaultRules())
	s.RegisterPass()
	flash, alpha := s.FlashState()
	assert.Equal(t, model.FlashPass, flash)
	assert.Equal(t, 1.0, alpha)

	s.UpdateFlash(-time.Second)
	_, alpha = s.FlashState()
	assert.Equal(t, 1.0, alpha)

	s.UpdateFlash(225 * time.Millisecond)
	_, alpha = s.FlashState()
	assert.InDelta(t, 0.5, alpha, 1e-9)

	s.UpdateFlash(time.Second)
	flash, alpha = s.FlashState()
	assert.Equal(t, model.FlashNone, flash)
	assert.Zero(t, alpha)

	s.RegisterFail()
	flash, _ = s.FlashState()
	assert.Equal(t, model.FlashFail, flash)
}

func TestMultiplier(t *testing.T) {
	s := New(model.DefaultRules())
	assert.Equal(t, 1, s.Multiplier())
	s.RegisterPass()
	s.RegisterPass()
	assert.Equal(t, 3, s.Multiplier())
	s.RegisterFail()
	assert.Equal(t, 1, s.Multiplier())
}
