package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/verte-zerg/captcharun/internal/model"
)

// SampleRate is low on purpose; the cues are chiptune blips.
const SampleRate = beep.SampleRate(22050)

const fadeTail = 50 * time.Millisecond

// segment is one note of a cue. A zero volume is a rest.
type segment struct {
	from float64
	to   float64
	dur  time.Duration
	vol  float64
	wave wave
}

func tone(freq float64, dur time.Duration, vol float64) segment {
	return segment{from: freq, to: freq, dur: dur, vol: vol}
}

func sweep(from, to float64, dur time.Duration, vol float64, w wave) segment {
	return segment{from: from, to: to, dur: dur, vol: vol, wave: w}
}

func rest(dur time.Duration) segment {
	return segment{dur: dur}
}

const ms = time.Millisecond

var cueSegments = map[model.Cue][]segment{
	model.CueTileSelect:   {tone(880, 60*ms, 0.25)},
	model.CueTileDeselect: {tone(660, 60*ms, 0.2)},
	model.CueVerify:       {tone(440, 70*ms, 0.28), tone(660, 70*ms, 0.28)},
	model.CuePass: {
		tone(261, 70*ms, 0.3), tone(329, 70*ms, 0.3),
		tone(392, 70*ms, 0.3), tone(523, 120*ms, 0.35),
	},
	model.CueFail:      {tone(329, 80*ms, 0.3), tone(261, 80*ms, 0.3), tone(220, 140*ms, 0.25)},
	model.CueTimeout:   {tone(440, 80*ms, 0.3), rest(40 * ms), tone(440, 80*ms, 0.3)},
	model.CueFlee:      {sweep(800, 200, 150*ms, 0.25, waveSquare)},
	model.CueMenuHover: {tone(1200, 30*ms, 0.12)},
	model.CueMenuStart: {sweep(200, 800, 250*ms, 0.3, waveSine)},
	model.CueLevelUp: {
		tone(392, 60*ms, 0.3), tone(523, 60*ms, 0.3),
		tone(659, 60*ms, 0.3), tone(784, 160*ms, 0.35),
	},
}

// Duration returns the length of a cue, or 0 for an unknown one.
func Duration(cue model.Cue) time.Duration {
	var total time.Duration
	for _, seg := range cueSegments[cue] {
		total += seg.dur
	}
	return total
}

// Synthesize renders a cue into a buffer at rate. Unknown cues yield nil.
func Synthesize(cue model.Cue, rate beep.SampleRate) *beep.Buffer {
	segs, ok := cueSegments[cue]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(segs))
	total := 0
	for _, seg := range segs {
		n := rate.N(seg.dur)
		total += n
		if seg.vol <= 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		parts = append(parts, newVolume(newOscillator(seg.from, seg.to, seg.dur, seg.wave, rate), seg.vol))
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(newFadeOut(beep.Seq(parts...), total, rate.N(fadeTail)))
	return buf
}
