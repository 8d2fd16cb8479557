package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scene/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the key bindings",
	Long:  `Prints how terminal keys map to scene buttons.`,
	Run: func(cmd *cobra.Command, args []string) {
		keys := tui.DefaultKeyMap()
		fmt.Println(help.New().FullHelpView(keys.FullHelp()))
		fmt.Println()
		fmt.Println("Letters, digits and Backspace go to text boxes and consoles.")
	},
}
