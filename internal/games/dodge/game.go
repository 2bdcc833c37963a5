package dodge

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "dodge"

// Options wires the game's collaborators. Nil fields get silent defaults.
type Options struct {
	Sounder    Sounder
	HighScores HighScores
	Logger     *log.Logger
	Seed       int64 // 0 means time based
}

// FrameResult is returned by Frame for the driver.
type FrameResult struct {
	Stepped    bool // The simulation advanced
	GameOver   bool // This frame ended the session
	FinalScore int
	Run        int // Session number the result belongs to
}

// Game owns the simulation state, the status machine and the side effects
// of status transitions. It is driven by a single frame loop.
type Game struct {
	cfg     config.DodgeConfig
	rng     *rand.Rand
	state   *State
	status  Status
	run     int // Incremented on every start
	best    int
	sounder Sounder
	scores  HighScores
	logger  *log.Logger

	comment    string // Last commentary received
	commentRun int    // Session the comment belongs to
}

// New creates a game in the START status.
// The stored high score is read once here.
func New(cfg config.DodgeConfig, opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		state:   NewState(cfg, nil),
		status:  StatusStart,
		sounder: opts.Sounder,
		scores:  opts.HighScores,
		logger:  opts.Logger,
	}
	if g.sounder == nil {
		g.sounder = silentSounder{}
	}
	if g.scores == nil {
		g.scores = &MemoryHighScores{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	best, err := g.scores.ReadHighScore()
	if err != nil {
		g.logger.Warn("could not read high score", "error", err)
	}
	g.best = best
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge the Poop"
}

// Config returns the tuning the game runs with.
func (g *Game) Config() config.DodgeConfig {
	return g.cfg
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Run returns the current session number.
func (g *Game) Run() int {
	return g.run
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.best
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() *State {
	return g.state.Clone()
}

// Start enters PLAYING from START or GAMEOVER. The state is reset except for
// held keys and the frame baseline is discarded.
func (g *Game) Start() {
	if g.status == StatusPlaying {
		return
	}
	g.state = NewState(g.cfg, g.state.Input.Keys)
	g.status = StatusPlaying
	g.run++
	g.sounder.Jump()
}

// Frame runs one simulation step at the monotonic timestamp nowMs.
// It does nothing unless the game is PLAYING.
func (g *Game) Frame(nowMs float64) FrameResult {
	if g.status != StatusPlaying {
		return FrameResult{Run: g.run}
	}

	res := Step(g.state, nowMs, g.cfg, g.rng)
	for i := 0; i < res.ScoreCues; i++ {
		g.sounder.ScoreTick()
	}

	out := FrameResult{Stepped: res.Advanced, Run: g.run}
	if res.Collided {
		g.gameOver()
		out.GameOver = true
		out.FinalScore = g.state.Score
	}
	return out
}

// gameOver moves to GAMEOVER and runs its side effects. Commentary is
// requested by the driver, which owns asynchronous work.
func (g *Game) gameOver() {
	g.status = StatusGameOver
	g.state.ResetClock()
	g.sounder.Squish()

	score := g.state.Score
	if score > g.best {
		g.best = score
		if err := g.scores.WriteHighScore(score); err != nil {
			g.logger.Warn("could not save high score", "score", score, "error", err)
		}
	}
}

// SetCommentary stores a comment for the given session. Comments for older
// sessions are kept but not displayed.
func (g *Game) SetCommentary(run int, text string) {
	g.comment = text
	g.commentRun = run
}

// Commentary returns the comment for the current session, or "" if none arrived.
func (g *Game) Commentary() string {
	if g.commentRun != g.run {
		return ""
	}
	return g.comment
}

// CommentaryPending reports whether the game over screen is still waiting for a comment.
func (g *Game) CommentaryPending() bool {
	return g.status == StatusGameOver && g.Commentary() == ""
}

// PressKey marks a movement key as held.
func (g *Game) PressKey(k core.Key) {
	g.state.Input.Press(k)
}

// ReleaseKey marks a movement key as released.
func (g *Game) ReleaseKey(k core.Key) {
	g.state.Input.Release(k)
}

// MovePointer records a pointer position in arena units.
func (g *Game) MovePointer(x float64) {
	g.state.Input.MovePointer(x)
}

// Render draws the arena, the HUD and the overlay for the current status.
// pending is shown on the game over screen until the comment arrives.
func (g *Game) Render(dst *core.Screen, nowMs float64, pending string) {
	if _, ok := newViewport(dst, g.cfg); !ok {
		return
	}
	Render(dst, g.state, g.status, nowMs, g.cfg)
	drawHUD(dst, g.state.Score, g.best)

	switch g.status {
	case StatusStart:
		drawMessageBox(dst, startLines())
	case StatusGameOver:
		drawMessageBox(dst, gameOverLines(g.state.Score, g.Commentary(), pending))
	}
}
