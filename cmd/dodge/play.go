package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/commentary"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagMute         bool
	flagNoVoice      bool
	flagNoCommentary bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  ←/→ or A/D  - Move (hold to keep moving)
  Mouse       - Move toward the pointer
  Enter/Space - Start or try again
  Tab         - Scoreboard
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Commentary needs GEMINI_API_KEY (or GOOGLE_API_KEY) in the environment or
in a .env file in the current directory. Without it a canned remark is shown.

Examples:
  dodge play
  dodge play --mute
  dodge play --config ./hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().BoolVar(&flagNoVoice, "no-voice", false, "Show commentary without reading it aloud")
	playCmd.Flags().BoolVar(&flagNoCommentary, "no-commentary", false, "Skip remote commentary")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logOut := io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "dodge")
	if err != nil {
		return err
	}

	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flagNoVoice {
		cfg.Commentary.Voice = false
	}
	if flagNoCommentary {
		cfg.Commentary.Enabled = false
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "error", err)
	} else {
		defer store.Close()
	}

	var sounder dodge.Sounder = audio.Silent{}
	var voice commentary.VoicePlayer
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio, logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer player.Close()
			sounder, voice = player, player
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = tui.Run(tui.ModelOptions{
		Config:      cfg,
		Runtime:     rt,
		Store:       store,
		Sounder:     sounder,
		Commentator: commentary.FromConfig(ctx, cfg.Commentary, voice, logger),
		Player:      currentUser(),
		Logger:      logger,
		Context:     ctx,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
