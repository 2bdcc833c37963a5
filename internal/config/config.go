// Package config provides YAML-based tuning for the dodge game and its
// collaborators, plus the linear difficulty scaling.
package config

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Objects    ObjectConfig     `yaml:"objects"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Collision  CollisionConfig  `yaml:"collision"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     TimingConfig     `yaml:"timing"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
	Commentary CommentaryConfig `yaml:"commentary"`
}

// ArenaConfig defines the playfield in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player body and how it is steered.
type PlayerConfig struct {
	Size           float64 `yaml:"size"`
	BaselineOffset float64 `yaml:"baseline_offset"` // Gap between player bottom and arena bottom
	KeyboardSpeed  float64 `yaml:"keyboard_speed"`  // Arena units per millisecond
	FollowStrength float64 `yaml:"follow_strength"` // Fraction of pointer distance closed per step
}

// ObjectConfig defines falling object shape and motion.
type ObjectConfig struct {
	MinSize        float64 `yaml:"min_size"`
	MaxSize        float64 `yaml:"max_size"`
	BaseSpeed      float64 `yaml:"base_speed"`       // Arena units per step at score 0
	SpeedJitterMin float64 `yaml:"speed_jitter_min"` // Lower bound of the per-object speed factor
	SpeedJitterMax float64 `yaml:"speed_jitter_max"` // Upper bound of the per-object speed factor
	SpinPerStep    float64 `yaml:"spin_per_step"`    // Degrees per step
}

// SpawnConfig defines the per-step spawn trial.
type SpawnConfig struct {
	BaseRate float64 `yaml:"base_rate"` // Spawn probability per step at score 0
}

// DifficultyConfig defines the single linear scaling with score.
type DifficultyConfig struct {
	SpawnCoefficient float64 `yaml:"spawn_coefficient"` // Spawn rate grows by this fraction per point
	SpeedIncrement   float64 `yaml:"speed_increment"`   // Base speed grows by this many units per point
}

// CollisionConfig defines the proximity test.
type CollisionConfig struct {
	ProximityFactor float64 `yaml:"proximity_factor"` // Multiplier on the sum of diameters
}

// ScoringConfig defines score sound cues.
type ScoringConfig struct {
	CueEvery int `yaml:"cue_every"`
}

// TimingConfig defines frame timing limits.
type TimingConfig struct {
	DeltaCapMs float64 `yaml:"delta_cap_ms"`
}

// InputConfig defines terminal key hold emulation.
type InputConfig struct {
	KeyHoldMs   int `yaml:"key_hold_ms"`   // A repeating key stays held this long after its last repeat
	FirstHoldMs int `yaml:"first_hold_ms"` // A fresh press stays held this long, covering the terminal's repeat delay
}

// AudioConfig defines local sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // Linear gain applied to every cue, 0..1
}

// CommentaryConfig defines the post-game commentary service.
type CommentaryConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Model          string `yaml:"model"`
	Language       string `yaml:"language"`
	Persona        string `yaml:"persona"`
	HighScoreAbove int    `yaml:"high_score_above"` // Scores above this get the backhanded-praise tone
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Voice          bool   `yaml:"voice"`
	VoiceModel     string `yaml:"voice_model"`
	VoiceName      string `yaml:"voice_name"`
	VoiceRate      int    `yaml:"voice_rate"` // Sample rate of the returned PCM
	FallbackEmpty  string `yaml:"fallback_empty"`
	FallbackError  string `yaml:"fallback_error"`
}
