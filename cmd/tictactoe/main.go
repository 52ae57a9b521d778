// tictactoe is a two-player tic-tac-toe game for the terminal.
//
// Usage:
//
//	tictactoe play      - Play a game
//	tictactoe keys      - Show the command keys
//	tictactoe config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Path to a config YAML
//	--log-file <path>    - Write a debug log to this file
//	--log-level <level>  - Log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "tictactoe",
	Short: "Tic-tac-toe for two players in your terminal",
	Long: `Two players share one keyboard, move a cursor over a 3x3 board
and take turns placing x and o. The first to fill a row, a column or
a diagonal wins.

Available commands:
  play     - Start a game
  keys     - Show the command keys
  config   - Print the effective configuration

Examples:
  tictactoe play
  tictactoe play --mode line --player-x Alice --player-o Bob
  tictactoe config --default > ~/.tictactoe/config.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}
