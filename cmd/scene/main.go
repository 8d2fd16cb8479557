// scene runs real-time scenes built from objects in the terminal, over SSH
// or in a desktop window.
//
// Usage:
//
//	scene list               - List available demos
//	scene run [demo]         - Run a demo (default: the launcher menu)
//	scene serve              - Start SSH server for remote sessions
//	scene history [demo]     - Browse recorded runs and file picks
//	scene keys               - Show the key bindings
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.scene/config.yaml)
//	--fps <rate>        - Override the tick rate
//	--db <path>         - Override the history database path
//	--log-level <level> - Override the log level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import demos to register them
	_ "github.com/vovakirdan/tui-scene/internal/demos/browser"
	_ "github.com/vovakirdan/tui-scene/internal/demos/menu"
	_ "github.com/vovakirdan/tui-scene/internal/demos/sprites"
	_ "github.com/vovakirdan/tui-scene/internal/demos/widgets"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scene",
	Short: "Scene - real-time object scenes in your terminal",
	Long: `Scene drives a set of objects through a fixed tick cycle and draws
them into a cell grid: locally in the terminal, over SSH, or in a window.

Available commands:
  list     - Show all available demos
  run      - Run a demo
  serve    - Start SSH server for remote sessions
  history  - Browse recorded runs and picks
  keys     - Show the key bindings

Examples:
  scene list
  scene run
  scene run widgets --root ~/Documents
  scene run sprites --window
  scene serve --ssh :2222
  scene history browser`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(keysCmd)
}
