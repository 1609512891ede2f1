// Package audio synthesizes the game's sound effects and plays them through
// the system speaker. Playback is fire-and-forget: Play never blocks the
// simulation.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Speaker hooks, replaced in tests.
var (
	openSpeaker = func(s beep.Streamer) error {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
			return err
		}
		speaker.Play(s)
		return nil
	}
	closeSpeaker = speaker.Close
)

// note is one sine tone of a sound effect.
type note struct {
	freq   float64
	dur    time.Duration
	volume float64 // Exponent of base 2; 0 is unchanged, -1 is half
}

var effectNotes = map[sim.Sound][]note{
	sim.SoundFlap:  {{freq: 660, dur: 40 * time.Millisecond, volume: -1.5}},
	sim.SoundPoint: {{freq: 880, dur: 60 * time.Millisecond, volume: -1}, {freq: 1320, dur: 90 * time.Millisecond, volume: -1}},
	sim.SoundHit:   {{freq: 220, dur: 80 * time.Millisecond, volume: 0}, {freq: 110, dur: 160 * time.Millisecond, volume: 0}},
}

// Stream builds a fresh streamer for a sound effect.
func Stream(s sim.Sound) (beep.Streamer, error) {
	notes, ok := effectNotes[s]
	if !ok {
		return nil, fmt.Errorf("audio: unknown sound %v", s)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %s tone: %w", s, err)
		}
		parts = append(parts, &effects.Volume{
			Streamer: beep.Take(sampleRate.N(n.dur), tone),
			Base:     2,
			Volume:   n.volume,
		})
	}
	return beep.Seq(parts...), nil
}

// Duration returns the total length of a sound effect.
func Duration(s sim.Sound) time.Duration {
	var d time.Duration
	for _, n := range effectNotes[s] {
		d += n.dur
	}
	return d
}

// Player plays sound effects through a shared mixer on the speaker.
// A Player that failed to initialize, or was muted, stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	logger      *log.Logger
}

// NewPlayer creates a player. Call Init before expecting sound.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. On failure the player stays usable and silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := openSpeaker(p.mixer); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// SetMuted silences or restores playback.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether playback is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play queues a sound effect on the mixer.
func (p *Player) Play(s sim.Sound) {
	p.mu.Lock()
	active := p.initialized && !p.muted
	p.mu.Unlock()
	if !active {
		return
	}

	st, err := Stream(s)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("sound effect unavailable", "sound", s, "err", err)
		}
		return
	}
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	closeSpeaker()
	p.initialized = false
}

// New returns a ready audio collaborator. A muted start still opens the
// speaker so sound can be toggled back on. When the speaker cannot be
// opened it returns a silent one and logs why.
func New(logger *log.Logger, muted bool) sim.Audio {
	p := NewPlayer(logger)
	if err := p.Init(); err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return sim.NullAudio{}
	}
	p.SetMuted(muted)
	return p
}
