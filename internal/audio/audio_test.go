package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/captcharun/internal/model"
)

func drain(t *testing.T, buf *beep.Buffer) [][2]float64 {
	t.Helper()
	s := buf.Streamer(0, buf.Len())
	out := make([][2]float64, buf.Len())
	filled := 0
	for filled < len(out) {
		n, ok := s.Stream(out[filled:])
		filled += n
		if !ok {
			break
		}
	}
	require.Equal(t, buf.Len(), filled)
	return out
}

func peak(samples [][2]float64) float64 {
	top := 0.0
	for _, s := range samples {
		top = math.Max(top, math.Abs(s[0]))
	}
	return top
}

func TestEveryCueSynthesizes(t *testing.T) {
	for _, cue := range model.Cues {
		t.Run(cue.String(), func(t *testing.T) {
			buf := Synthesize(cue, SampleRate)
			require.NotNil(t, buf)
			assert.Positive(t, Duration(cue))
			assert.InDelta(t, SampleRate.N(Duration(cue)), buf.Len(), float64(len(cueSegments[cue])))

			samples := drain(t, buf)
			p := peak(samples)
			assert.Positive(t, p, "cue is not silent")
			assert.LessOrEqual(t, p, 0.36)

			last := samples[len(samples)-1]
			assert.InDelta(t, 0, last[0], 0.01, "cue fades out")
		})
	}
}

func TestSynthesizeUnknownCue(t *testing.T) {
	assert.Nil(t, Synthesize(model.Cue(99), SampleRate))
	assert.Zero(t, Duration(model.Cue(99)))
}

func TestTimeoutHasGap(t *testing.T) {
	samples := drain(t, Synthesize(model.CueTimeout, SampleRate))
	gapStart := SampleRate.N(80 * time.Millisecond)
	gap := samples[gapStart+10 : gapStart+SampleRate.N(40*time.Millisecond)-10]
	assert.Zero(t, peak(gap))
}

func TestOscillatorLength(t *testing.T) {
	osc := newOscillator(440, 440, 10*time.Millisecond, waveSine, SampleRate)
	buf := make([][2]float64, 1024)
	n, ok := osc.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, SampleRate.N(10*time.Millisecond), n)
	n, ok = osc.Stream(buf)
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer(0.8, nil)
	assert.False(t, p.Available())
	assert.NotPanics(t, func() {
		for _, cue := range model.Cues {
			p.Play(cue)
		}
		p.Close()
	})
	assert.Len(t, p.sounds, len(model.Cues))
}

func TestPlayerVolumeClamps(t *testing.T) {
	p := NewPlayer(3, nil)
	assert.Equal(t, 1.0, p.Volume())
	p.SetVolume(-1)
	assert.Equal(t, 0.0, p.Volume())
	p.SetVolume(0.4)
	assert.Equal(t, 0.4, p.Volume())
}
