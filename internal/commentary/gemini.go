package commentary

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"google.golang.org/genai"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Gemini generates commentary and speech with the Gemini API.
type Gemini struct {
	client     *genai.Client
	model      string
	voiceModel string
	voiceName  string
}

// NewGemini creates a Gemini client for the given API key.
func NewGemini(ctx context.Context, apiKey string, cfg config.CommentaryConfig) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("commentary: create client: %w", err)
	}
	return &Gemini{
		client:     client,
		model:      cfg.Model,
		voiceModel: cfg.VoiceModel,
		voiceName:  cfg.VoiceName,
	}, nil
}

// Generate implements Generator. Thinking is disabled to keep latency low.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	})
	if err != nil {
		return "", fmt.Errorf("commentary: generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Synthesize implements Synthesizer. The API returns raw 16-bit mono PCM.
func (g *Gemini) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.voiceModel, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: g.voiceName},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("commentary: synthesize: %w", err)
	}
	return inlineAudio(resp)
}

// inlineAudio returns the first inline data blob of a response.
func inlineAudio(resp *genai.GenerateContentResponse) ([]byte, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, ErrEmptyResponse
}

// FromConfig builds a Service backed by Gemini when commentary is enabled and
// an API key is available. Otherwise the service answers with fallback text.
func FromConfig(ctx context.Context, cfg config.CommentaryConfig, player VoicePlayer, logger *log.Logger) *Service {
	opts := Options{Logger: logger}
	if !cfg.Enabled {
		return NewService(cfg, opts)
	}

	key, err := APIKeyFromEnv()
	if err == nil {
		var g *Gemini
		g, err = NewGemini(ctx, key, cfg)
		if err == nil {
			opts.Generator = g
			opts.Synthesizer = g
			opts.Player = player
		}
	}
	if err != nil && logger != nil {
		logger.Warn("commentary offline", "error", err)
	}
	return NewService(cfg, opts)
}
