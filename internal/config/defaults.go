package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default dodge configuration.
// It mirrors defaults/dodge.yaml and is used when the embed cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Arena: ArenaConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:           50,
			BaselineOffset: 10,
			KeyboardSpeed:  1.6,
			FollowStrength: 0.4,
		},
		Objects: ObjectConfig{
			MinSize:        30,
			MaxSize:        50,
			BaseSpeed:      5,
			SpeedJitterMin: 0.9,
			SpeedJitterMax: 1.4,
			SpinPerStep:    7,
		},
		Spawn: SpawnConfig{
			BaseRate: 0.03,
		},
		Difficulty: DifficultyConfig{
			SpawnCoefficient: 0.08,
			SpeedIncrement:   0.1,
		},
		Collision: CollisionConfig{
			ProximityFactor: 0.38,
		},
		Scoring: ScoringConfig{
			CueEvery: 10,
		},
		Timing: TimingConfig{
			DeltaCapMs: 32,
		},
		Input: InputConfig{
			KeyHoldMs:   60,
			FirstHoldMs: 500,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     1.0,
		},
		Commentary: CommentaryConfig{
			Enabled:        true,
			Model:          "gemini-3-flash-preview",
			Language:       "Korean",
			Persona:        "A funny, cocky, sassy Korean guy (깐죽거리는 남자) who loves to tease.",
			HighScoreAbove: 30,
			TimeoutSeconds: 20,
			Voice:          true,
			VoiceModel:     "gemini-2.5-flash-preview-tts",
			VoiceName:      "Puck",
			VoiceRate:      24000,
			FallbackEmpty:  "으악! 똥 맞았대요~",
			FallbackError:  "실력이 그것밖에 안 돼요?",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
