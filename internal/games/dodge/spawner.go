package dodge

import (
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Spawn runs one spawn trial and appends a new object on success.
// The chance and the base speed both scale linearly with the current score.
func Spawn(s *State, cfg config.DodgeConfig, rng *rand.Rand) bool {
	diff := config.NewDifficultyManager(cfg.Difficulty)
	if rng.Float64() >= diff.SpawnChance(cfg.Spawn.BaseRate, s.Score) {
		return false
	}

	o := cfg.Objects
	jitter := o.SpeedJitterMin + rng.Float64()*(o.SpeedJitterMax-o.SpeedJitterMin)

	s.nextID++
	s.Objects = append(s.Objects, FallingObject{
		ID:       s.nextID,
		X:        rng.Float64() * (cfg.Arena.Width - o.MaxSize),
		Y:        -o.MaxSize,
		Speed:    diff.FallSpeed(o.BaseSpeed, s.Score) * jitter,
		Rotation: rng.Float64() * 360,
		Size:     o.MinSize + rng.Float64()*(o.MaxSize-o.MinSize),
	})
	return true
}
