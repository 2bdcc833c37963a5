package dodge

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

type countingSounder struct {
	jumps, squishes, ticks int
}

func (c *countingSounder) Jump()      { c.jumps++ }
func (c *countingSounder) Squish()    { c.squishes++ }
func (c *countingSounder) ScoreTick() { c.ticks++ }

type brokenScores struct {
	writes int
}

func (b *brokenScores) ReadHighScore() (int, error) { return 0, errors.New("disk gone") }
func (b *brokenScores) WriteHighScore(int) error {
	b.writes++
	return errors.New("disk gone")
}

func newTestGame(cfg config.DodgeConfig) (*Game, *countingSounder, *MemoryHighScores) {
	snd := &countingSounder{}
	scores := &MemoryHighScores{}
	g := New(cfg, Options{Sounder: snd, HighScores: scores, Seed: 42})
	return g, snd, scores
}

// crash places an object that hits the player on the next step.
func crash(g *Game) {
	g.state.Objects = append(g.state.Objects, FallingObject{X: g.state.PlayerX + 5, Y: 540, Speed: 5, Size: 50})
}

func TestStatusMachine(t *testing.T) {
	g, snd, _ := newTestGame(quietConfig())

	if g.Status() != StatusStart {
		t.Fatalf("initial status = %v, want START", g.Status())
	}
	if res := g.Frame(0); res.Stepped {
		t.Error("frame in START should not step")
	}

	g.Start()
	if g.Status() != StatusPlaying {
		t.Fatalf("status after start = %v, want PLAYING", g.Status())
	}
	if snd.jumps != 1 {
		t.Errorf("jumps = %d, want 1", snd.jumps)
	}

	g.Frame(0)
	crash(g)
	res := g.Frame(16)
	if !res.GameOver || g.Status() != StatusGameOver {
		t.Fatalf("expected game over, got %+v status %v", res, g.Status())
	}
	if snd.squishes != 1 {
		t.Errorf("squishes = %d, want 1", snd.squishes)
	}

	// Frozen after the collision
	before := g.Snapshot()
	if res := g.Frame(32); res.Stepped {
		t.Error("frame in GAMEOVER should not step")
	}
	if after := g.Snapshot(); after.Objects[0].Y != before.Objects[0].Y {
		t.Error("objects moved during GAMEOVER")
	}

	g.Start()
	if g.Status() != StatusPlaying || g.Run() != 2 {
		t.Errorf("restart: status %v run %d", g.Status(), g.Run())
	}
}

func TestStartIsIgnoredWhilePlaying(t *testing.T) {
	g, snd, _ := newTestGame(quietConfig())
	g.Start()
	g.Start()
	if g.Run() != 1 || snd.jumps != 1 {
		t.Errorf("run = %d jumps = %d, want 1 and 1", g.Run(), snd.jumps)
	}
}

func TestRestartResetsStateButKeepsHeldKeys(t *testing.T) {
	cfg := quietConfig()
	g, _, _ := newTestGame(cfg)
	g.Start()
	g.PressKey(core.KeyRight)

	g.Frame(0)
	g.state.Score = 7
	crash(g)
	g.Frame(16)
	if g.Score() != 7 {
		t.Fatalf("score at game over = %d, want 7", g.Score())
	}

	g.Start()
	s := g.Snapshot()
	if s.Score != 0 {
		t.Errorf("score after restart = %d, want 0", s.Score)
	}
	if len(s.Objects) != 0 {
		t.Errorf("objects after restart = %d, want 0", len(s.Objects))
	}
	if s.PlayerX != cfg.Arena.Width/2-cfg.Player.Size/2 {
		t.Errorf("PlayerX after restart = %v", s.PlayerX)
	}
	if !s.Input.Held(core.KeyRight) {
		t.Error("held key lost across restart")
	}

	// The first frame after a restart is only a baseline
	if res := g.Frame(10_000); res.Stepped {
		t.Error("first frame after restart stepped")
	}
	x := g.Snapshot().PlayerX
	g.Frame(10_016)
	if got := g.Snapshot().PlayerX; got <= x {
		t.Errorf("held right key did not move player: %v -> %v", x, got)
	}
}

func TestScoreTicksReachSounder(t *testing.T) {
	g, snd, _ := newTestGame(quietConfig())
	g.Start()
	g.Frame(0)

	g.state.Score = 9
	g.state.Objects = append(g.state.Objects, FallingObject{X: 0, Y: 600, Speed: 5, Size: 10})
	g.Frame(16)
	if snd.ticks != 1 {
		t.Errorf("ticks after 9->10 = %d, want 1", snd.ticks)
	}

	g.state.Objects = append(g.state.Objects, FallingObject{X: 0, Y: 600, Speed: 5, Size: 10})
	g.Frame(32)
	if snd.ticks != 1 {
		t.Errorf("ticks after 10->11 = %d, want 1", snd.ticks)
	}
}

func TestHighScorePersistence(t *testing.T) {
	cfg := quietConfig()
	scores := &MemoryHighScores{}
	_ = scores.WriteHighScore(5)

	g := New(cfg, Options{HighScores: scores, Seed: 1})
	if g.HighScore() != 5 {
		t.Fatalf("HighScore = %d, want 5", g.HighScore())
	}

	tests := []struct {
		final int
		want  int
	}{
		{3, 5},
		{8, 8},
		{8, 8},
	}

	for _, tt := range tests {
		g.Start()
		g.Frame(0)
		g.state.Score = tt.final
		crash(g)
		g.Frame(16)

		stored, _ := scores.ReadHighScore()
		if stored != tt.want || g.HighScore() != tt.want {
			t.Errorf("final %d: stored %d, game %d, want %d", tt.final, stored, g.HighScore(), tt.want)
		}
	}
}

func TestHighScoreErrorsAreNotFatal(t *testing.T) {
	scores := &brokenScores{}
	g := New(quietConfig(), Options{HighScores: scores, Seed: 1})
	g.Start()
	g.Frame(0)
	g.state.Score = 3
	crash(g)

	res := g.Frame(16)
	if !res.GameOver || res.FinalScore != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
	if scores.writes != 1 {
		t.Errorf("writes = %d, want 1", scores.writes)
	}
	if g.HighScore() != 3 {
		t.Errorf("HighScore = %d, want 3", g.HighScore())
	}
}

func TestCommentaryIsTiedToRun(t *testing.T) {
	g, _, _ := newTestGame(quietConfig())
	g.Start()
	g.Frame(0)
	crash(g)
	res := g.Frame(16)

	if !g.CommentaryPending() {
		t.Error("commentary should be pending right after game over")
	}
	g.SetCommentary(res.Run, "nice try")
	if got := g.Commentary(); got != "nice try" {
		t.Errorf("Commentary = %q", got)
	}
	if g.CommentaryPending() {
		t.Error("commentary still pending after it arrived")
	}

	// A late comment from the previous run is stored but hidden
	g.Start()
	g.SetCommentary(res.Run, "too late")
	if got := g.Commentary(); got != "" {
		t.Errorf("stale commentary shown: %q", got)
	}
}
