package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-desk/internal/platform/tui"
	"github.com/vovakirdan/retro-desk/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the desktop",
	Long: `Open the desktop in this terminal.

Shortcuts run an app or show a link. Closing an app returns to the desktop;
scores are kept until the desktop closes.

Controls:
  Up/Down/w/s  - Navigate
  Enter/Space  - Open
  Tab          - Start menu
  H            - Session scores
  Esc          - Close the start menu
  Q            - Quit

Examples:
  desk menu
  desk menu --fps 30
  desk menu --config ./desktop.yaml`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, desk, err := loadDesktop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open score store", "error", err)
		store = nil
	}

	runErr := tui.RunDesktop(desk, store, runtimeConfig(cfg), logger, cfg.Platform.ScoreboardSize)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
