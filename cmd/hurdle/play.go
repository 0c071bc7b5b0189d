package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hurdle/internal/audio"
	"github.com/vovakirdan/hurdle/internal/audio/synth"
	"github.com/vovakirdan/hurdle/internal/core"
	"github.com/vovakirdan/hurdle/internal/games/runner"
	"github.com/vovakirdan/hurdle/internal/platform/tui"
	"github.com/vovakirdan/hurdle/internal/registry"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Enter/S            - Start
  Space/Up/W/Click   - Jump
  R                  - Restart (after game over)
  Ctrl+S             - Save a text screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower start, gentler speed-up
  normal - Config values as written
  hard   - Faster start, steeper speed-up, denser obstacles
  fixed  - No speed-up at all

Examples:
  hurdle play
  hurdle play --difficulty easy
  hurdle play --mute --seed 42
  hurdle play --config ./my-runner.yaml --log-file hurdle.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard, "hurdle")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := configureGame(logger)
	if err != nil {
		return err
	}

	player, closeAudio := openAudio(logger, !flagMute && cfg.Audio.Enabled)
	defer closeAudio()
	runner.SetAudio(player)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	opts := tui.Options{
		Store:      store,
		Player:     localUser(),
		Difficulty: difficultyLabel(),
		Logger:     logger,
	}
	if err := tui.Run(game, runtime, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openAudio starts the speaker. Sound is optional: on failure the game
// plays silently.
func openAudio(logger *log.Logger, enabled bool) (audio.Player, func()) {
	if !enabled {
		return audio.Nop{}, func() {}
	}
	p, err := synth.New()
	if err != nil {
		logger.Warn("audio unavailable, playing muted", "error", err)
		return audio.Nop{}, func() {}
	}
	return p, p.Close
}

func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
