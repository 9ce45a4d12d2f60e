// desk is a retro desktop in the terminal: a start menu of portfolio links
// a few portfolio apps and a couple of games, played locally or over SSH.
//
// Usage:
//
//	desk list          - List available apps
//	desk play <app>    - Play an app directly
//	desk menu          - Open the desktop
//	desk serve         - Serve the desktop over SSH
//	desk links         - Print the desktop's links
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a specific desktop.yaml
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-desk/internal/apps/portfolio"
	"github.com/vovakirdan/retro-desk/internal/config"
	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/desktop"

	// Import apps and games to register them
	_ "github.com/vovakirdan/retro-desk/internal/apps/calculator"
	_ "github.com/vovakirdan/retro-desk/internal/games/pong"
	_ "github.com/vovakirdan/retro-desk/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "desk",
	Short: "Retro Desk - a portfolio desktop in your terminal",
	Long: `Retro Desk is a small retro desktop for the terminal: shortcuts to the
owner's links and projects, a start menu, a taskbar clock, and games.

Available commands:
  list     - Show all available apps
  play     - Play a specific app directly
  menu     - Open the desktop
  serve    - Serve the desktop over SSH
  links    - Print the desktop's links

Examples:
  desk list
  desk play tetris
  desk menu
  desk serve --ssh :2222
  desk links`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to desktop.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(linksCmd)
}

// newLogger builds the command logger. Interactive commands own the terminal,
// so without --log-file their logs are discarded; fallback is used otherwise.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "desk",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadDesktop reads the configuration, validates its shortcuts and hands the
// profile to the portfolio apps.
func loadDesktop() (config.DesktopConfig, *desktop.Desktop, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DesktopConfig{}, nil, err
	}
	portfolio.SetProfile(cfg.Profile)

	desk, err := desktop.New(cfg)
	if err != nil {
		return config.DesktopConfig{}, nil, err
	}
	return cfg, desk, nil
}

// runtimeConfig sizes games to the current terminal.
func runtimeConfig(cfg config.DesktopConfig) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	fps := cfg.Platform.TickRate
	if flagFPS > 0 {
		fps = flagFPS
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     flagSeed,
	}
}
