package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scene/internal/config"
	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/platform/tui"
	"github.com/vovakirdan/tui-scene/internal/registry"
	"github.com/vovakirdan/tui-scene/internal/scene"
	"github.com/vovakirdan/tui-scene/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeDemo   string
	flagServeRoot   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scene SSH server",
	Long: `Start an SSH server that gives every connection its own scene.

Each SSH connection gets a fresh instance of the served demo (the launcher
menu by default). Runs are recorded in the history database with the
connecting user's name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.scene/host_key

Examples:
  scene serve                           # Listen on the configured address
  scene serve --ssh :2222               # Listen on port 2222
  scene serve --demo sprites            # Serve one demo directly
  scene serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (empty = from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (0 = from config)")
	serveCmd.Flags().StringVar(&flagServeDemo, "demo", "menu", "Demo each session starts with")
	serveCmd.Flags().StringVar(&flagServeRoot, "root", ".", "Directory the file browsers show")
}

func runServe(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagServeDemo) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", flagServeDemo)
		os.Exit(1)
	}

	a, err := loadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = a.cfg.SSH.Address
	cfg.HostKeyPath = a.cfg.SSH.HostKeyPath
	cfg.IdleTimeout = a.cfg.SSH.IdleTimeout
	cfg.ReleaseDelay = a.cfg.Input.ReleaseDelay
	cfg.Runtime = a.runtime
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, sessionFactory(a, flagServeDemo), a.logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting scene SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// sessionFactory builds demoID for every connecting user.
func sessionFactory(a *app, demoID string) tui.SessionFactory {
	root := os.DirFS(config.ExpandHome(flagServeRoot))
	return func(user string, rt core.RuntimeConfig) (tui.Session, error) {
		demo, err := registry.Create(demoID)
		if err != nil {
			return tui.Session{}, err
		}
		logger := a.logger.With("user", user)
		s := scene.New(rt, logger)
		env := registry.Env{Root: root, Picks: a.picks(), Logger: logger}
		if err := demo.Build(s, env); err != nil {
			return tui.Session{}, fmt.Errorf("build %s: %w", demoID, err)
		}
		return tui.Session{
			Scene: s,
			Done: func(ticks uint64, elapsed time.Duration) {
				a.recordRun(storage.RunEntry{
					DemoID:   demoID,
					User:     user,
					Ticks:    ticks,
					Duration: elapsed,
				})
			},
		}, nil
	}
}
