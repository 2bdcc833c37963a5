package dodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// StepResult reports what happened during one simulation step.
type StepResult struct {
	Advanced  bool // False when the step only recorded the frame baseline
	Collided  bool // An object touched the player
	Passed    int  // Objects that dropped past the bottom this step
	ScoreCues int  // Score milestones crossed this step
}

// Step advances the simulation to the frame timestamp nowMs.
// The first call after a reset only records the baseline. Elapsed time is
// capped at Timing.DeltaCapMs so a stalled terminal does not teleport the player.
// Scoring and removal are processed for every object even when a collision
// is found; the caller stops stepping once Collided is reported.
func Step(s *State, nowMs float64, cfg config.DodgeConfig, rng *rand.Rand) StepResult {
	if !s.hasFrame {
		s.lastFrame = nowMs
		s.hasFrame = true
		return StepResult{}
	}

	dt := math.Min(nowMs-s.lastFrame, cfg.Timing.DeltaCapMs)
	if dt < 0 {
		dt = 0
	}
	s.lastFrame = nowMs

	movePlayer(s, dt, cfg)
	Spawn(s, cfg, rng)

	result := StepResult{Advanced: true}
	px, py := PlayerCenter(s, cfg)

	kept := s.Objects[:0]
	for _, o := range s.Objects {
		o.Y += o.Speed
		o.Rotation = math.Mod(o.Rotation+cfg.Objects.SpinPerStep, 360)

		ox, oy := o.Center()
		if Collides(px, py, cfg.Player.Size, ox, oy, o.Size, cfg.Collision.ProximityFactor) {
			result.Collided = true
		}

		if o.Y > cfg.Arena.Height {
			s.Score++
			result.Passed++
			if s.Score%cfg.Scoring.CueEvery == 0 {
				result.ScoreCues++
			}
			continue
		}
		kept = append(kept, o)
	}
	s.Objects = kept

	return result
}

// movePlayer resolves input into a new player position.
// Keyboard movement integrates over dt; pointer movement closes a fixed
// fraction of the gap each step regardless of dt.
func movePlayer(s *State, dt float64, cfg config.DodgeConfig) {
	left := s.Input.Held(core.KeyLeft)
	right := s.Input.Held(core.KeyRight)
	if left || right {
		s.Input.Device = core.DeviceKeyboard
	}

	if s.Input.Device == core.DeviceKeyboard {
		step := cfg.Player.KeyboardSpeed * dt
		if left {
			s.PlayerX -= step
		}
		if right {
			s.PlayerX += step
		}
	} else {
		target := s.Input.PointerX - cfg.Player.Size/2
		s.PlayerX += (target - s.PlayerX) * cfg.Player.FollowStrength
	}

	s.PlayerX = core.ClampF(s.PlayerX, 0, cfg.Arena.Width-cfg.Player.Size)
}
