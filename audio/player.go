// Package audio plays short feedback tones for grid edits through beep
//
// A Player with sound disabled, or one whose speaker failed to open, is a
// silent no-op so callers never branch on audio availability.
package audio

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	// Speaker buffer; larger is steadier but adds latency
	bufferDuration = time.Second / 10
	// Volume in effects.Volume units, base 2 (-2 is a quarter amplitude)
	toneVolume = -2
)

// Cue identifies a feedback event
type Cue uint8

const (
	CueBirth Cue = iota
	CueDeath
	CueClear
	CueAutorunOn
	CueAutorunOff
)

// tone is a sine burst
type tone struct {
	freq     float64
	duration time.Duration
}

var cueTones = map[Cue]tone{
	CueBirth:      {880, 40 * time.Millisecond},
	CueDeath:      {440, 40 * time.Millisecond},
	CueClear:      {220, 120 * time.Millisecond},
	CueAutorunOn:  {660, 60 * time.Millisecond},
	CueAutorunOff: {330, 60 * time.Millisecond},
}

// Player plays cues on the default output device
type Player struct {
	enabled atomic.Bool
	played  atomic.Uint64
}

// NewPlayer opens the speaker when enabled is true
// On failure the returned player is silent and the error is informational
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferDuration)); err != nil {
		return p, fmt.Errorf("speaker init: %w", err)
	}
	p.enabled.Store(true)
	return p, nil
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool { return p.enabled.Load() }

// Played returns the number of cues sent to the speaker
func (p *Player) Played() uint64 { return p.played.Load() }

// Play queues a cue without blocking
func (p *Player) Play(c Cue) {
	if !p.enabled.Load() {
		return
	}
	s, err := cueStreamer(c)
	if err != nil {
		return
	}
	speaker.Play(s)
	p.played.Add(1)
}

// Toggled plays a rising tone for a birth and a falling one for a death
func (p *Player) Toggled(alive bool) {
	if alive {
		p.Play(CueBirth)
	} else {
		p.Play(CueDeath)
	}
}

// Cleared plays the reset cue
func (p *Player) Cleared() { p.Play(CueClear) }

// AutorunChanged plays the autorun on/off cue
func (p *Player) AutorunChanged(on bool) {
	if on {
		p.Play(CueAutorunOn)
	} else {
		p.Play(CueAutorunOff)
	}
}

// Close releases the speaker
func (p *Player) Close() {
	if p.enabled.Swap(false) {
		speaker.Close()
	}
}

// cueStreamer builds a finite, attenuated sine streamer for c
func cueStreamer(c Cue) (beep.Streamer, error) {
	t, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0fHz: %w", t.freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.duration), sine),
		Base:     2,
		Volume:   toneVolume,
	}, nil
}
