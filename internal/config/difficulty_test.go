package config

import (
	"math"
	"testing"
)

func TestSpawnChanceScalesLinearly(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{SpawnCoefficient: 0.08, SpeedIncrement: 0.1})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.03},
		{10, 0.03 * 1.8},
		{50, 0.03 * 5},
	}
	for _, tc := range tests {
		if got := d.SpawnChance(0.03, tc.score); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("SpawnChance(0.03, %d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestSpawnChanceCapsAtOne(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{SpawnCoefficient: 0.08})
	if got := d.SpawnChance(0.03, 10000); got != 1 {
		t.Errorf("SpawnChance at huge score = %f, expected 1", got)
	}
}

func TestFallSpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{SpeedIncrement: 0.1})
	if got := d.FallSpeed(5, 0); got != 5 {
		t.Errorf("FallSpeed(5, 0) = %f, expected 5", got)
	}
	if got := d.FallSpeed(5, 20); math.Abs(got-7) > 1e-12 {
		t.Errorf("FallSpeed(5, 20) = %f, expected 7", got)
	}
}
