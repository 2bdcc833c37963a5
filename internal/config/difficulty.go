package config

import "math"

// DifficultyManager derives score-dependent parameters from a DifficultyConfig.
// Scaling is linear in score with no presets or caps beyond probability 1.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) DifficultyManager {
	return DifficultyManager{cfg: cfg}
}

// SpawnChance returns the per-step spawn probability at the given score.
func (d DifficultyManager) SpawnChance(baseRate float64, score int) float64 {
	p := baseRate * (1 + float64(score)*d.cfg.SpawnCoefficient)
	return math.Max(0, math.Min(1, p))
}

// FallSpeed returns the base fall speed for objects spawned at the given score.
func (d DifficultyManager) FallSpeed(baseSpeed float64, score int) float64 {
	return baseSpeed + float64(score)*d.cfg.SpeedIncrement
}
