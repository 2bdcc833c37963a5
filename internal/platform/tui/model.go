package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/commentary"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

// CommentaryMsg carries a resolved comment for the session it was requested in.
type CommentaryMsg struct {
	Run  int
	Text string
}

// pendingText is shown on the game over screen while commentary loads.
const pendingText = "analyzing your failure..."

// ModelOptions configures a Model.
type ModelOptions struct {
	Config      config.DodgeConfig
	Runtime     core.RuntimeConfig
	Store       *storage.Store    // nil keeps scores in memory
	Sounder     dodge.Sounder     // nil is silent
	Commentator dodge.Commentator // nil answers with fallback text
	Player      string            // Name recorded with each run
	Logger      *log.Logger
	Context     context.Context // Bounds commentary requests
	Now         func() time.Time
}

// Model is the Bubble Tea model that drives one dodge game.
type Model struct {
	game        *dodge.Game
	runtime     core.RuntimeConfig
	screen      *core.Screen
	store       *storage.Store
	commentator dodge.Commentator
	player      string
	logger      *log.Logger
	ctx         context.Context
	now         func() time.Time

	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	held   map[core.Key]time.Time // Release deadline of each held movement key
	origin time.Time              // Zero of the frame clock
	nowMs  float64                // Timestamp of the latest frame
	gen    int                    // Frame generation; bumped to cancel frames

	scoreboard ScoreboardModel
	showScores bool
	quitting   bool
}

// NewModel creates a model in the START status.
func NewModel(opts ModelOptions) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Commentator == nil {
		opts.Commentator = commentary.NewService(opts.Config.Commentary, commentary.Options{Logger: opts.Logger})
	}

	var scores dodge.HighScores
	if opts.Store != nil {
		scores = opts.Store.HighScoreBook(dodge.GameID)
	}

	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return Model{
		game: dodge.New(opts.Config, dodge.Options{
			Sounder:    opts.Sounder,
			HighScores: scores,
			Logger:     opts.Logger,
			Seed:       opts.Runtime.Seed,
		}),
		runtime:     opts.Runtime,
		screen:      core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		store:       opts.Store,
		commentator: opts.Commentator,
		player:      opts.Player,
		logger:      opts.Logger,
		ctx:         opts.Context,
		now:         opts.Now,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		spinner:     s,
		held:        make(map[core.Key]time.Time),
		origin:      opts.Now(),
	}
}

// Game returns the driven game.
func (m Model) Game() *dodge.Game {
	return m.game
}

// Init implements tea.Model. Nothing runs until the player starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.game.MovePointer(dodge.PointerToArena(msg.X, m.screen.Width(), m.game.Config()))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)

	case CommentaryMsg:
		m.game.SetCommentary(msg.Run, msg.Text)
		return m, m.voiceCmd(msg.Text)

	case spinner.TickMsg:
		if !m.game.CommentaryPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.showScores {
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showScores {
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		if m.scoreboard.IsGoingBack() {
			m.showScores = false
		}
		return m, cmd
	}

	if k := m.keys.MovementKey(msg); k != core.KeyNone {
		m.hold(k)
		m.game.PressKey(k)
		return m, nil
	}

	playing := m.game.Status() == dodge.StatusPlaying
	switch {
	case key.Matches(msg, m.keys.Start) && !playing:
		return m.start()
	case key.Matches(msg, m.keys.Scores) && !playing:
		m.scoreboard = NewScoreboardModel(m.store, m.game.ID(), m.game.Title(), m.runtime.ScreenW, m.runtime.ScreenH)
		m.showScores = true
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	}
	return m, nil
}

// start enters PLAYING and schedules the first frame of a new generation.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.game.Start()
	m.gen++
	return m, frameCmd(m.gen, m.runtime.TickRate)
}

// handleResize processes window resize events. The last row holds the help line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.showScores {
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleFrame runs one step of the current generation.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.game.Status() != dodge.StatusPlaying {
		return m, nil
	}

	m.releaseExpiredKeys(msg.Time)
	m.nowMs = float64(msg.Time.Sub(m.origin)) / float64(time.Millisecond)

	res := m.game.Frame(m.nowMs)
	if !res.GameOver {
		return m, frameCmd(m.gen, m.runtime.TickRate)
	}

	// Leaving PLAYING cancels any frame still in flight
	m.gen++
	m.saveRun(res.FinalScore)
	return m, tea.Batch(m.commentaryCmd(res.Run, res.FinalScore), m.spinner.Tick)
}

// hold extends a key's release deadline. A fresh press waits out the
// terminal's auto-repeat delay; repeats only need to bridge the repeat rate.
func (m Model) hold(k core.Key) {
	in := m.game.Config().Input
	ms := in.FirstHoldMs
	if _, repeating := m.held[k]; repeating {
		ms = in.KeyHoldMs
	}
	m.held[k] = m.now().Add(time.Duration(ms) * time.Millisecond)
}

// releaseExpiredKeys emulates key release: terminals only report presses,
// so a key stops being held once its repeats stop arriving.
func (m Model) releaseExpiredKeys(now time.Time) {
	for k, deadline := range m.held {
		if !now.Before(deadline) {
			m.game.ReleaseKey(k)
			delete(m.held, k)
		}
	}
}

func (m Model) saveRun(score int) {
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), m.player, score); err != nil {
		m.logger.Warn("could not save run", "score", score, "error", err)
	}
}

// commentaryCmd requests commentary without blocking the frame loop.
func (m Model) commentaryCmd(run, score int) tea.Cmd {
	c, ctx := m.commentator, m.ctx
	return func() tea.Msg {
		return CommentaryMsg{Run: run, Text: c.Comment(ctx, score)}
	}
}

// voiceCmd reads a comment aloud in the background.
func (m Model) voiceCmd(text string) tea.Cmd {
	c, ctx := m.commentator, m.ctx
	return func() tea.Msg {
		c.Speak(ctx, text)
		return nil
	}
}

// saveScreenshot writes the current screen as text to ~/.dodge/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".dodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	m.game.Render(m.screen, m.nowMs, pendingText)
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen, m.nowMs, m.spinner.View()+" "+pendingText)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
