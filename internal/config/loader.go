package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDodge loads the dodge configuration.
// Search order: customPath -> ~/.dodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadDodge(customPath string) (DodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDodge(data)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDodge(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dodge.yaml"); err == nil {
		if cfg, err := parseDodge(data); err == nil {
			return cfg, nil
		}
	}

	return embeddedDodge(), nil
}

// embeddedDodge parses the embedded default YAML, falling back to the hardcoded copy.
func embeddedDodge() DodgeConfig {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(defaultDodgeYAML, &cfg); err != nil {
		return DefaultDodgeConfig()
	}
	return cfg
}

// parseDodge layers YAML over the embedded defaults and validates the result.
func parseDodge(data []byte) (DodgeConfig, error) {
	cfg := embeddedDodge()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DodgeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}

// Validate checks that the tuning describes a playable arena.
func (c DodgeConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena: width and height must be positive")
	check(c.Player.Size > 0, "player: size must be positive")
	check(c.Player.Size <= c.Arena.Width, "player: size must fit in the arena width")
	check(c.Player.KeyboardSpeed >= 0, "player: keyboard_speed must not be negative")
	check(c.Player.FollowStrength >= 0 && c.Player.FollowStrength <= 1, "player: follow_strength must be within [0, 1]")
	check(c.Objects.MinSize > 0, "objects: min_size must be positive")
	check(c.Objects.MinSize <= c.Objects.MaxSize, "objects: min_size must not exceed max_size")
	check(c.Objects.MaxSize < c.Arena.Width, "objects: max_size must be smaller than the arena width")
	check(c.Objects.BaseSpeed > 0, "objects: base_speed must be positive")
	check(c.Objects.SpeedJitterMin > 0, "objects: speed_jitter_min must be positive")
	check(c.Objects.SpeedJitterMin <= c.Objects.SpeedJitterMax, "objects: speed_jitter_min must not exceed speed_jitter_max")
	check(c.Spawn.BaseRate >= 0 && c.Spawn.BaseRate <= 1, "spawn: base_rate must be within [0, 1]")
	check(c.Difficulty.SpawnCoefficient >= 0, "difficulty: spawn_coefficient must not be negative")
	check(c.Difficulty.SpeedIncrement >= 0, "difficulty: speed_increment must not be negative")
	check(c.Collision.ProximityFactor > 0, "collision: proximity_factor must be positive")
	check(c.Scoring.CueEvery > 0, "scoring: cue_every must be positive")
	check(c.Timing.DeltaCapMs > 0, "timing: delta_cap_ms must be positive")
	check(c.Input.KeyHoldMs > 0, "input: key_hold_ms must be positive")
	check(c.Input.FirstHoldMs >= c.Input.KeyHoldMs, "input: first_hold_ms must not be shorter than key_hold_ms")
	check(c.Audio.SampleRate > 0, "audio: sample_rate must be positive")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio: volume must be within [0, 1]")
	check(c.Commentary.TimeoutSeconds >= 0, "commentary: timeout_seconds must not be negative")
	check(c.Commentary.VoiceRate > 0, "commentary: voice_rate must be positive")
	check(strings.TrimSpace(c.Commentary.FallbackEmpty) != "" && strings.TrimSpace(c.Commentary.FallbackError) != "",
		"commentary: fallback texts must not be empty")

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
