package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-desk/internal/apps/portfolio"
	"github.com/vovakirdan/retro-desk/internal/config"
	"github.com/vovakirdan/retro-desk/internal/platform/tui"
	"github.com/vovakirdan/retro-desk/internal/registry"
	"github.com/vovakirdan/retro-desk/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <app>",
	Short: "Play an app",
	Long: `Start the specified app without the desktop around it.

Tetris controls:
  A/D, Left/Right  - Move
  W/Up             - Rotate
  S/Down           - Soft drop
  Space            - Hard drop
  Enter            - Start
  P                - Pause/resume
  R                - Restart (after game over)

Pong controls:
  W/S              - Left paddle
  I/K              - Right paddle
  Space            - Start/pause, new match after a win

GitHub and Projects:
  W/S, Up/Down     - Select a repository

Calculator:
  Arrows           - Move over the keypad
  Space/Enter      - Press the highlighted key
  0-9 . + - * / =  - Type directly (c clears, n negates)

Everywhere:
  Esc/B            - Close (when paused or over)
  Q/Ctrl+C         - Quit

Examples:
  desk play tetris
  desk play pong --fps 30
  desk play tetris --seed 42
  desk play calculator`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown app %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'desk list' to see available apps.")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	portfolio.SetProfile(cfg.Profile)

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating app: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open score store", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig(cfg), logger, "local")

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", runErr)
		os.Exit(1)
	}
}
