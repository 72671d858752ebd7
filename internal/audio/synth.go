package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

type wave int

const (
	waveSquare wave = iota
	waveSine
)

// oscillator plays one tone, gliding linearly from `from` to `to` Hz.
type oscillator struct {
	from     float64
	to       float64
	wave     wave
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
}

func newOscillator(from, to float64, d time.Duration, w wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		wave:     w,
		rate:     rate,
		duration: rate.N(d),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		default:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.from
		if o.duration > 1 {
			freq += (o.to - o.from) * float64(o.position) / float64(o.duration-1)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fadeOut ramps the last `tail` samples of a stream of known length down
// to silence so short cues end without a click.
type fadeOut struct {
	streamer beep.Streamer
	position int
	total    int
	tail     int
}

func newFadeOut(s beep.Streamer, total, tail int) beep.Streamer {
	if tail > total {
		tail = total
	}
	return &fadeOut{streamer: s, total: total, tail: tail}
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.tail
	for i := 0; i < n; i++ {
		if f.position >= start && f.tail > 0 {
			vol := float64(f.total-f.position) / float64(f.tail)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

// newVolume scales amplitude linearly. Zero or less is silent since
// math.Log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
