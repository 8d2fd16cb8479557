package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scene/internal/config"
	"github.com/vovakirdan/tui-scene/internal/core"
	"github.com/vovakirdan/tui-scene/internal/logging"
	"github.com/vovakirdan/tui-scene/internal/registry"
	"github.com/vovakirdan/tui-scene/internal/storage"
)

// app holds what every command shares: configuration, logger and store.
type app struct {
	cfg       config.Config
	runtime   core.RuntimeConfig
	logger    *log.Logger
	logCloser io.Closer
	store     *storage.Store
}

// loadApp reads the config, applies the global flags and opens the logger
// and the history store. A store that cannot be opened is logged and left
// nil; the scene still runs without history.
func loadApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if flagFPS > 0 {
		cfg.Screen.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	rt, err := cfg.Runtime()
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, runtime: rt, logger: logger, logCloser: closer}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("history disabled", "path", cfg.Storage.Path, "err", err)
	} else {
		a.store = store
	}
	return a, nil
}

// terminalSize fills in the screen size from the terminal unless the
// config pins it.
func (a *app) terminalSize() core.RuntimeConfig {
	rt := a.runtime
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return rt
	}
	if a.cfg.Screen.Width <= 0 {
		rt.ScreenW = w
	}
	if a.cfg.Screen.Height <= 0 {
		rt.ScreenH = h
	}
	return rt
}

// picks returns the store as a pick recorder, or nil without a store.
func (a *app) picks() registry.PickRecorder {
	if a.store == nil {
		return nil
	}
	return a.store
}

// recordRun stores a finished run when history is enabled.
func (a *app) recordRun(run storage.RunEntry) {
	if a.store == nil {
		return
	}
	if _, err := a.store.RecordRun(run); err != nil {
		a.logger.Error("recording run failed", "demo", run.DemoID, "err", err)
	}
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	a.logCloser.Close()
}
