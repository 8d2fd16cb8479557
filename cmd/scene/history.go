package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-scene/internal/platform/tui"
	"github.com/vovakirdan/tui-scene/internal/registry"
)

var (
	flagStats bool
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [demo]",
	Short: "Browse recorded runs and file picks",
	Long: `Show the runs and file picks recorded in the history database.

Without flags an interactive browser opens with one tab per demo.
Tab/Shift+Tab switch demos, P toggles runs and picks, Q quits.

Examples:
  scene history
  scene history browser
  scene history --stats
  scene history widgets --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagStats, "stats", false, "Print totals per demo instead of browsing")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the given demo")
}

func runHistory(cmd *cobra.Command, args []string) {
	var tabs []tui.HistoryTab
	for _, d := range registry.List() {
		if len(args) == 0 || d.ID == args[0] {
			tabs = append(tabs, tui.HistoryTab{ID: d.ID, Title: d.Title})
		}
	}
	if len(tabs) == 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'scene list' to see available demos.")
		os.Exit(1)
	}

	a, err := loadApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if a.store == nil {
		fmt.Fprintf(os.Stderr, "Error: history database %s is not available\n", a.cfg.Storage.Path)
		return
	}

	switch {
	case flagClear:
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a demo")
			return
		}
		if err := a.store.ClearHistory(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			return
		}
		fmt.Printf("History of %s cleared.\n", args[0])

	case flagStats:
		printStats(a, tabs)

	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(a.store, tabs, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

func printStats(a *app, tabs []tui.HistoryTab) {
	fmt.Printf("  %-12s  %6s  %10s  %10s  %s\n", "Demo", "Runs", "Ticks", "Time", "Last run")
	fmt.Printf("  %-12s  %6s  %10s  %10s  %s\n", "----", "----", "-----", "----", "--------")
	for _, tab := range tabs {
		st, err := a.store.DemoStats(tab.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats for %s: %v\n", tab.ID, err)
			continue
		}
		last := "-"
		if !st.LastRun.IsZero() {
			last = st.LastRun.Format("Jan 02 15:04")
		}
		fmt.Printf("  %-12s  %6d  %10d  %10s  %s\n",
			tab.ID, st.Runs, st.TotalTicks, st.TotalDuration.Round(time.Second), last)
	}
}
