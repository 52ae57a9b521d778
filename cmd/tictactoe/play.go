package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/console"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var (
	flagMode    string
	flagPlayerX string
	flagPlayerO string
	flagPause   time.Duration
	flagNoAsk   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game for two players on one keyboard.

Controls:
  W/A/S/D        - Move the cursor (arrow keys too in full screen mode)
  Space          - Place your mark (typing your own mark works too)
  Q              - Quit

Modes:
  auto   - Full screen on a terminal, line mode otherwise (default)
  tui    - Full screen, keys act immediately
  line   - Type a command and press Enter

Examples:
  tictactoe play
  tictactoe play --mode line
  tictactoe play --player-x Alice --player-o Bob --no-ask
  tictactoe play --mode line --pause 1s`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Front end: auto, tui or line")
	playCmd.Flags().StringVar(&flagPlayerX, "player-x", "", "Name of the player with x")
	playCmd.Flags().StringVar(&flagPlayerO, "player-o", "", "Name of the player with o")
	playCmd.Flags().DurationVar(&flagPause, "pause", 0, "Pause after a rejected command in line mode")
	playCmd.Flags().BoolVar(&flagNoAsk, "no-ask", false, "Do not prompt for player names")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyPlayFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}

	mode, _ := config.ParseUIMode(string(cfg.UI.Mode))
	if mode == config.UIModeAuto {
		mode = detectMode()
	}
	logger.Debug("starting", "mode", mode, "config", flagConfig)

	switch mode {
	case config.UIModeTUI:
		var session *game.Session
		session, err = tui.Run(tui.Options{
			NameX:    cfg.Players.X,
			NameO:    cfg.Players.O,
			AskNames: cfg.Players.AskNames,
			ShowHelp: cfg.Console.ShowHelp,
			Logger:   logger,
		})
		if err == nil {
			// The alternate screen is gone; leave the result on the terminal.
			printResult(session)
		}
	default:
		_, err = console.Run(console.New(os.Stdin, os.Stdout), console.Options{
			NameX:    cfg.Players.X,
			NameO:    cfg.Players.O,
			AskNames: cfg.Players.AskNames,
			Play: game.PlayOptions{
				ClearScreen: cfg.Console.ClearScreen,
				ShowHelp:    cfg.Console.ShowHelp,
				Pause:       cfg.Console.PauseDuration(),
			},
			Logger: logger,
		})
	}

	// Close log before potential exit
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// applyPlayFlags overrides config values with explicitly set play flags.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.UI.Mode = config.UIMode(flagMode)
	}
	if flags.Changed("player-x") {
		cfg.Players.X = flagPlayerX
	}
	if flags.Changed("player-o") {
		cfg.Players.O = flagPlayerO
	}
	if flags.Changed("pause") {
		cfg.Console.PauseSeconds = flagPause.Seconds()
	}
	if flagNoAsk {
		cfg.Players.AskNames = false
	}
}

// detectMode picks full screen when both stdin and stdout are terminals.
func detectMode() config.UIMode {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return config.UIModeTUI
	}
	return config.UIModeLine
}

func printResult(s *game.Session) {
	if s == nil {
		fmt.Println(game.QuitMessage)
		return
	}
	if s.Outcome().Kind != game.OutcomeQuit {
		fmt.Println(s.RenderText(false))
	}
	fmt.Println(s.OutcomeMessage())
}
