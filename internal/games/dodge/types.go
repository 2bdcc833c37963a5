// Package dodge implements a falling-object avoidance game.
// The player slides along the bottom of the arena and dodges objects that
// fall from the top; every object that drops past the bottom scores a point.
package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Status is the game's top-level state machine.
type Status int

const (
	StatusStart    Status = iota // Title screen, nothing simulated
	StatusPlaying                // Frames advance the simulation
	StatusGameOver               // Frozen after a collision
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// FallingObject is one object dropping through the arena.
// X and Y are the top-left corner of its Size x Size box.
type FallingObject struct {
	ID       uint64
	X, Y     float64
	Speed    float64 // Arena units per step, always positive
	Rotation float64 // Degrees
	Size     float64 // Diameter
}

// Center returns the object's visual midpoint.
func (o FallingObject) Center() (float64, float64) {
	return o.X + o.Size/2, o.Y + o.Size/2
}

// State is the authoritative simulation state, owned by the simulation step.
type State struct {
	PlayerX float64
	Objects []FallingObject
	Score   int
	Input   core.InputState

	lastFrame float64 // Timestamp of the previous step in ms
	hasFrame  bool    // False until the first step records a baseline
	nextID    uint64
}

// NewState returns the initial state for a session.
// Held keys are carried over so a key pressed through a restart keeps working.
func NewState(cfg config.DodgeConfig, held map[core.Key]bool) *State {
	return &State{
		PlayerX: cfg.Arena.Width/2 - cfg.Player.Size/2,
		Objects: make([]FallingObject, 0, 16),
		Input:   core.NewInputState(cfg.Arena.Width/2, held),
	}
}

// ResetClock discards the frame baseline; the next step only records a timestamp.
func (s *State) ResetClock() {
	s.lastFrame = 0
	s.hasFrame = false
}

// Clone returns a deep copy, safe to hand to readers.
func (s *State) Clone() *State {
	c := *s
	c.Objects = append([]FallingObject(nil), s.Objects...)
	c.Input = core.NewInputState(s.Input.PointerX, s.Input.Keys)
	c.Input.Device = s.Input.Device
	return &c
}

// PlayerCenter returns the player's visual midpoint without the render wobble.
func PlayerCenter(s *State, cfg config.DodgeConfig) (float64, float64) {
	return s.PlayerX + cfg.Player.Size/2, playerBaseline(cfg)
}

// playerBaseline is the fixed y of the player's center.
func playerBaseline(cfg config.DodgeConfig) float64 {
	return cfg.Arena.Height - cfg.Player.Size/2 - cfg.Player.BaselineOffset
}
