package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/captcharun/internal/challenge"
	"github.com/verte-zerg/captcharun/internal/generator"
	"github.com/verte-zerg/captcharun/internal/model"
)

func defaultFactory(t *testing.T, seed int64) *Factory {
	t.Helper()
	reg, err := challenge.NewRegistry(model.DefaultThresholds(), challenge.DefaultDefinitions(nil)...)
	require.NoError(t, err)
	return New(reg, generator.NewSeeded(seed))
}

func TestNextNeverRepeats(t *testing.T) {
	f := defaultFactory(t, 1)
	for _, round := range []int{1, 5, 8, 20} {
		prev := ""
		for i := 0; i < 200; i++ {
			c, err := f.Next(round)
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NotEqual(t, prev, f.LastID(), "round %d draw %d", round, i)
			prev = f.LastID()
		}
	}
}

func TestNextRespectsUnlockRound(t *testing.T) {
	f := defaultFactory(t, 2)
	for i := 0; i < 300; i++ {
		c, err := f.Next(1)
		require.NoError(t, err)
		assert.Equal(t, model.Easy, c.Difficulty())
	}
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		_, err := f.Next(8)
		require.NoError(t, err)
		seen[f.LastID()] = true
	}
	assert.Len(t, seen, 5)
}

func TestNextFallsBackWithSingleType(t *testing.T) {
	reg, err := challenge.NewRegistry(model.DefaultThresholds(),
		challenge.Definition{ID: challenge.BusID, New: challenge.NewBus, Weight: 1, Difficulty: model.Easy},
		challenge.Definition{ID: challenge.ShuffleID, New: challenge.NewCheckbox, Weight: 1, Difficulty: model.Hard},
	)
	require.NoError(t, err)
	f := New(reg, generator.NewSeeded(3))
	for i := 0; i < 10; i++ {
		_, err := f.Next(1)
		require.NoError(t, err)
		assert.Equal(t, challenge.BusID, f.LastID())
	}
}

func TestNextWeightedDraw(t *testing.T) {
	reg, err := challenge.NewRegistry(model.DefaultThresholds(),
		challenge.Definition{ID: "heavy", New: challenge.NewBus, Weight: 9, Difficulty: model.Easy},
		challenge.Definition{ID: "light", New: challenge.NewBus, Weight: 1, Difficulty: model.Easy},
		challenge.Definition{ID: "other", New: challenge.NewBus, Weight: 9, Difficulty: model.Easy},
	)
	require.NoError(t, err)
	f := New(reg, generator.NewSeeded(4))
	counts := map[string]int{}
	for i := 0; i < 4000; i++ {
		f.ResetHistory()
		_, err := f.Next(1)
		require.NoError(t, err)
		counts[f.LastID()]++
	}
	assert.Greater(t, counts["heavy"], counts["light"]*4)
	assert.Greater(t, counts["other"], counts["light"]*4)
	assert.Positive(t, counts["light"])
}

func TestNextErrorsWhenNothingEligible(t *testing.T) {
	f := defaultFactory(t, 5)
	_, err := f.Next(-1)
	require.ErrorIs(t, err, challenge.ErrNoEligible)
}

func TestResetHistory(t *testing.T) {
	f := defaultFactory(t, 6)
	_, err := f.Next(1)
	require.NoError(t, err)
	require.NotEmpty(t, f.LastID())
	f.ResetHistory()
	assert.Empty(t, f.LastID())
}
