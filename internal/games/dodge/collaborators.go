package dodge

import (
	"context"
	"sync"
)

// Sounder receives fire-and-forget sound cues.
type Sounder interface {
	Jump()
	Squish()
	ScoreTick()
}

// HighScores persists the best score.
type HighScores interface {
	ReadHighScore() (int, error)
	WriteHighScore(score int) error
}

// Commentator produces a comment for a final score and may voice it.
// Comment never fails: errors resolve to a fallback string.
type Commentator interface {
	Comment(ctx context.Context, finalScore int) string
	Speak(ctx context.Context, text string)
}

// MemoryHighScores keeps the high score in memory.
// Used when no database is available.
type MemoryHighScores struct {
	mu    sync.Mutex
	score int
}

// ReadHighScore implements HighScores.
func (m *MemoryHighScores) ReadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// WriteHighScore implements HighScores.
func (m *MemoryHighScores) WriteHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	return nil
}

type silentSounder struct{}

func (silentSounder) Jump()      {}
func (silentSounder) Squish()    {}
func (silentSounder) ScoreTick() {}
