package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-desk/internal/platform/tui"
	"github.com/vovakirdan/retro-desk/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the desktop over SSH",
	Long: `Start an SSH server that gives every visitor their own desktop.

Scores are kept in memory and shared by all visitors until the server stops.

Host key handling:
  - --host-key, or host_key_path from the config, names the key file
  - A missing key is generated on first start

Examples:
  desk serve                           # Listen on the configured address
  desk serve --ssh :2222               # Listen on port 2222
  desk serve --host-key ./host_key     # Use a specific host key
  desk serve --idle-timeout 5m

Visitors connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Disconnect idle sessions after this long (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, desk, err := loadDesktop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sshCfg := tui.SSHServerConfig{
		Address:        cfg.Platform.SSHAddress,
		HostKeyPath:    cfg.Platform.HostKeyPath,
		IdleTimeout:    cfg.Platform.IdleTimeout,
		TickRate:       cfg.Platform.TickRate,
		ScoreboardSize: cfg.Platform.ScoreboardSize,
	}
	if flagSSHAddr != "" {
		sshCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sshCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sshCfg.IdleTimeout = flagIdleTimeout
	}
	if flagFPS > 0 {
		sshCfg.TickRate = flagFPS
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open score store", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	server, err := tui.NewSSHServer(sshCfg, desk, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving %s's desktop on %s\n", desk.Owner, sshCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
