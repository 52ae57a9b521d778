package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the command keys",
	Long:  `Print the command tokens of line mode and the keys of full screen mode.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		rows := keyRows(tui.DefaultKeyMap())

		// Calculate column widths
		actionLen, tokenLen := len("Action"), len("Line mode")
		for _, r := range rows {
			actionLen = max(actionLen, len(r.action.String()))
			tokenLen = max(tokenLen, len(r.token))
		}

		fmt.Printf("  %-*s  %-*s  %s\n", actionLen, "Action", tokenLen, "Line mode", "Full screen")
		fmt.Printf("  %-*s  %-*s  %s\n", actionLen, "------", tokenLen, "---------", "-----------")
		for _, r := range rows {
			fmt.Printf("  %-*s  %-*s  %s\n", actionLen, r.action, tokenLen, r.token, r.keys)
		}
		fmt.Println()
		fmt.Println("The current player's own mark (x or o) also places it in line mode.")
	},
}

type keyRow struct {
	action core.Action
	token  string
	keys   string
}

func keyRows(km tui.KeyMap) []keyRow {
	return []keyRow{
		{core.ActionUp, core.TokenUp, km.Up.Help().Key},
		{core.ActionDown, core.TokenDown, km.Down.Help().Key},
		{core.ActionLeft, core.TokenLeft, km.Left.Help().Key},
		{core.ActionRight, core.TokenRight, km.Right.Help().Key},
		{core.ActionPlace, "space", km.Place.Help().Key},
		{core.ActionQuit, core.TokenQuit, km.Quit.Help().Key},
	}
}
