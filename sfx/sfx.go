// Package sfx plays short synthesized tones for game events.
package sfx

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/engine"
)

// SampleRate is the output rate used by Beeper.
const SampleRate = beep.SampleRate(44100)

// Cue is one kind of sound.
type Cue uint8

const (
	CueLock Cue = iota
	CueClear
	CueLevelUp
	CueGameOver
	CueHold
)

// Note is a single tone of a cue. A zero frequency is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

var cues = map[Cue][]Note{
	CueLock: {{Freq: 220, Duration: 40 * time.Millisecond}},
	CueClear: {
		{Freq: 660, Duration: 60 * time.Millisecond},
		{Freq: 880, Duration: 80 * time.Millisecond},
	},
	CueLevelUp: {
		{Freq: 523, Duration: 70 * time.Millisecond},
		{Freq: 659, Duration: 70 * time.Millisecond},
		{Freq: 784, Duration: 120 * time.Millisecond},
	},
	CueGameOver: {
		{Freq: 392, Duration: 150 * time.Millisecond},
		{Duration: 50 * time.Millisecond},
		{Freq: 262, Duration: 300 * time.Millisecond},
	},
	CueHold: {{Freq: 440, Duration: 30 * time.Millisecond}},
}

// Notes returns the tones of c, or nil for an unknown cue.
func Notes(c Cue) []Note {
	return cues[c]
}

// Duration returns the total length of c.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cues[c] {
		d += n.Duration
	}
	return d
}

// Streamer renders c at rate and volume in [0, 1].
func Streamer(c Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes := cues[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.Duration)
		if n.Freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, tone))
	}

	seq := beep.Seq(parts...)
	if volume <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Silent: true}, nil
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(min(volume, 1))}, nil
}

// Player plays cues without blocking.
type Player interface {
	Play(c Cue)
}

// Mute is a Player that does nothing.
type Mute struct{}

func (Mute) Play(Cue) {}

// Listener returns an engine listener that plays the cue for each event.
// A lock that clears layers plays the clear cue instead of the lock cue.
func Listener(p Player) engine.Listener {
	return func(e engine.Event) {
		switch e.Type {
		case engine.EventLock:
			if e.Cleared == 0 {
				p.Play(CueLock)
			}
		case engine.EventClear:
			p.Play(CueClear)
		case engine.EventLevelUp:
			p.Play(CueLevelUp)
		case engine.EventGameOver:
			p.Play(CueGameOver)
		case engine.EventHold:
			p.Play(CueHold)
		}
	}
}

// Beeper plays cues on the system speaker through a shared mixer.
type Beeper struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewBeeper initializes the speaker. Only one Beeper should exist per process.
func NewBeeper(volume float64) (*Beeper, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	b := &Beeper{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(b.mixer)
	return b, nil
}

func (b *Beeper) Play(c Cue) {
	s, err := Streamer(c, SampleRate, b.volume)
	if err != nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true

	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
