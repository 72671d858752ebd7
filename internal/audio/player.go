// Package audio synthesizes the game's sound cues and plays them through
// the system speaker.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/verte-zerg/captcharun/internal/model"
)

// Player plays cues. Until Init succeeds, or after Close, every Play is a
// no-op, so a machine without an audio device runs silently.
type Player struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	sounds    map[model.Cue]*beep.Buffer
	volume    float64
	available bool
	log       *slog.Logger
}

// NewPlayer synthesizes every cue up front. volume is clamped to [0, 1].
func NewPlayer(volume float64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Player{
		rate:   SampleRate,
		sounds: make(map[model.Cue]*beep.Buffer, len(model.Cues)),
		log:    logger,
	}
	p.SetVolume(volume)
	for _, cue := range model.Cues {
		p.sounds[cue] = Synthesize(cue, p.rate)
	}
	return p
}

// Init opens the speaker. On failure the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.available {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	p.available = true
	p.log.Debug("audio ready", "rate", int(p.rate), "volume", p.volume)
	return nil
}

// Available reports whether cues reach a speaker.
func (p *Player) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.available
}

// SetVolume sets the master volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.mu.Lock()
	p.volume = v
	p.mu.Unlock()
}

// Volume returns the master volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(cue model.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.available || p.volume <= 0 {
		return
	}
	buf, ok := p.sounds[cue]
	if !ok || buf == nil {
		return
	}
	speaker.Play(newVolume(buf.Streamer(0, buf.Len()), p.volume))
}

// Close releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.available {
		return
	}
	speaker.Close()
	p.available = false
}
