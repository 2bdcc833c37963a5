// Package commentary produces a short remark about a finished run and can
// read it aloud. Failures never reach the caller: they resolve to fallback text.
package commentary

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

var (
	// ErrNoAPIKey is returned when no API key is configured.
	ErrNoAPIKey = errors.New("commentary: no API key")
	// ErrEmptyResponse is returned when a model answers without content.
	ErrEmptyResponse = errors.New("commentary: empty response")
)

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Synthesizer turns text into 16-bit mono PCM.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// VoicePlayer plays 16-bit little-endian mono PCM at a sample rate.
type VoicePlayer interface {
	PlayPCM(pcm []byte, rate int) error
}

// Service resolves commentary for final scores.
type Service struct {
	cfg    config.CommentaryConfig
	gen    Generator
	synth  Synthesizer
	player VoicePlayer
	logger *log.Logger
}

// Options wires optional pieces of a Service.
type Options struct {
	Generator   Generator   // nil always yields the error fallback
	Synthesizer Synthesizer // nil disables voice
	Player      VoicePlayer // nil disables voice
	Logger      *log.Logger
}

// NewService creates a commentary service.
func NewService(cfg config.CommentaryConfig, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{
		cfg:    cfg,
		gen:    opts.Generator,
		synth:  opts.Synthesizer,
		player: opts.Player,
		logger: logger,
	}
}

// Comment returns a remark for finalScore. It always returns non-empty text.
func (s *Service) Comment(ctx context.Context, finalScore int) string {
	if s.gen == nil || !s.cfg.Enabled {
		return s.cfg.FallbackError
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	text, err := s.gen.Generate(ctx, Prompt(finalScore, s.cfg))
	if err != nil && !errors.Is(err, ErrEmptyResponse) {
		s.logger.Warn("commentary failed", "score", finalScore, "error", err)
		return s.cfg.FallbackError
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return s.cfg.FallbackEmpty
	}
	return text
}

// VoiceEnabled reports whether Speak can produce sound.
func (s *Service) VoiceEnabled() bool {
	return s.cfg.Enabled && s.cfg.Voice && s.synth != nil && s.player != nil
}

// Speak reads text aloud. Errors are logged and dropped.
func (s *Service) Speak(ctx context.Context, text string) {
	if !s.VoiceEnabled() || strings.TrimSpace(text) == "" {
		return
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pcm, err := s.synth.Synthesize(ctx, text)
	if err != nil {
		s.logger.Warn("voice synthesis failed", "error", err)
		return
	}
	if err := s.player.PlayPCM(pcm, s.cfg.VoiceRate); err != nil {
		s.logger.Warn("voice playback failed", "error", err)
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.TimeoutSeconds <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
}
