package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scene/internal/config"
	"github.com/vovakirdan/tui-scene/internal/gfx"
	"github.com/vovakirdan/tui-scene/internal/platform"
	"github.com/vovakirdan/tui-scene/internal/platform/tui"
	"github.com/vovakirdan/tui-scene/internal/platform/window"
	"github.com/vovakirdan/tui-scene/internal/registry"
	"github.com/vovakirdan/tui-scene/internal/scene"
	"github.com/vovakirdan/tui-scene/internal/storage"
)

const screenshotDir = "~/.scene/screenshots"

var (
	flagRoot   string
	flagWindow bool
)

var runCmd = &cobra.Command{
	Use:   "run [demo]",
	Short: "Run a demo",
	Long: `Start the specified demo, or the launcher menu when none is given.

Controls:
  Arrows/PgUp/PgDn - Move and scroll
  Enter            - Choose
  Space            - Demo action
  Esc              - Back
  Ctrl+S           - Save a screenshot (terminal only)
  Ctrl+C           - Quit

Examples:
  scene run
  scene run widgets
  scene run browser --root ~/Music
  scene run sprites --window --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRoot, "root", ".", "Directory the file browsers show")
	runCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
}

func runRun(cmd *cobra.Command, args []string) {
	demoID := "menu"
	if len(args) > 0 {
		demoID = args[0]
	}

	// Check if demo exists
	if !registry.Exists(demoID) {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", demoID)
		fmt.Fprintln(os.Stderr, "Run 'scene list' to see available demos.")
		os.Exit(1)
	}

	a, err := loadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runDemo(a, demoID); err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}
	a.Close()
}

func runDemo(a *app, demoID string) error {
	rt := a.runtime
	var audio gfx.Audio = gfx.Silent{}
	if flagWindow {
		audio = window.NewAudio(a.logger)
	} else {
		rt = a.terminalSize()
	}

	demo, err := registry.Create(demoID)
	if err != nil {
		return err
	}
	s := scene.New(rt, a.logger)
	env := registry.Env{
		Root:   os.DirFS(config.ExpandHome(flagRoot)),
		Picks:  a.picks(),
		Audio:  audio,
		Logger: a.logger,
	}
	if err := demo.Build(s, env); err != nil {
		return fmt.Errorf("build %s: %w", demoID, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	var loop *scene.Loop
	if flagWindow {
		q := platform.NewQueue(0)
		loop = scene.NewLoop(s, q, nil, rt)
		err = window.Run(ctx, loop, q, window.Options{
			Title: a.cfg.Window.Title,
			Cols:  rt.ScreenW,
			Rows:  rt.ScreenH,
			CellW: a.cfg.Window.CellW,
			CellH: a.cfg.Window.CellH,
		}, a.logger)
	} else {
		q := platform.NewQueue(a.cfg.Input.ReleaseDelay)
		loop = scene.NewLoop(s, q, nil, rt)
		bridge := tui.NewBridge(q, tui.DefaultKeyMap())
		bridge.ScreenshotDir = config.ExpandHome(screenshotDir)
		err = tui.Run(ctx, loop, q, bridge, a.logger)
	}
	audio.Stop()

	a.recordRun(storage.RunEntry{
		DemoID:   demoID,
		Ticks:    loop.Ticks(),
		Duration: time.Since(start),
	})
	return err
}
