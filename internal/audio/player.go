// Package audio plays the game's sound cues and spoken commentary through
// the system speaker.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// ErrNotInitialized is returned when playing before Init succeeded.
var ErrNotInitialized = errors.New("audio: speaker not initialized")

// Player manages all game audio. Every sound is added to one mixer that
// the speaker drains, so cues overlap instead of cutting each other off.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player for the given settings. Call Init before use.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. A failure is not fatal; the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops every sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Jump plays the session start cue.
func (p *Player) Jump() {
	p.playTone(JumpTone)
}

// Squish plays the collision cue.
func (p *Player) Squish() {
	p.playTone(SquishTone)
}

// ScoreTick plays the score milestone cue.
func (p *Player) ScoreTick() {
	p.playTone(ScoreTone)
}

func (p *Player) playTone(t Tone) {
	if err := p.add(NewToneStreamer(t, p.rate)); err != nil && !errors.Is(err, ErrNotInitialized) {
		p.logger.Debug("cue dropped", "error", err)
	}
}

// PlayPCM plays 16-bit little-endian mono PCM recorded at rate.
func (p *Player) PlayPCM(pcm []byte, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("audio: invalid sample rate %d", rate)
	}
	s, err := DecodePCM16(pcm)
	if err != nil {
		return err
	}
	var streamer beep.Streamer = s
	if beep.SampleRate(rate) != p.rate {
		streamer = beep.Resample(4, beep.SampleRate(rate), p.rate, s)
	}
	return p.add(streamer)
}

func (p *Player) add(s beep.Streamer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}
	speaker.Lock()
	p.mixer.Add(newVolume(s, p.volume))
	speaker.Unlock()
	return nil
}

// newVolume scales s by a linear gain. Gain 0 is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Silent drops every sound. It backs SSH sessions and --mute.
type Silent struct{}

func (Silent) Jump()                              {}
func (Silent) Squish()                            {}
func (Silent) ScoreTick()                         {}
func (Silent) PlayPCM(pcm []byte, rate int) error { return nil }
func (Silent) Close()                             {}
