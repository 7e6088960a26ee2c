package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-fire/internal/core"
	"github.com/vovakirdan/star-fire/internal/games/starfire"
	"github.com/vovakirdan/star-fire/internal/platform/tui"
	"github.com/vovakirdan/star-fire/internal/registry"
	"github.com/vovakirdan/star-fire/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Star Fire in the terminal",
	Long: `Start Star Fire in the terminal.

Controls:
  Left/A, Right/D  - Move
  Up/W, Space      - Fire
  Down/S           - Dash in the held direction
  Enter            - Start from the menu
  R                - Back to the menu after game over
  ?                - Toggle help
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

The panel on the right lists the best runs of this session. Nothing is
kept once the program exits.

Examples:
  starfire play
  starfire play --fps 60 --seed 7
  starfire play --config ./my-starfire.yaml --log-file starfire.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	starfire.SetLogger(logger)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(starfire.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open()
	if err != nil {
		// The session panel is optional; the game still works.
		logger.Warn("session log unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "fps", cfg.TickRate, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
