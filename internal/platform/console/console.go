// Package console implements the line-oriented console boundary: commands
// are typed and confirmed with Enter, and the board is printed after each one.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/render"
)

// clearSequence moves the cursor home and clears the terminal.
const clearSequence = "\033[H\033[2J"

// Console reads commands from a line reader and prints to a writer.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	renderer *render.Renderer
	sleep    func(time.Duration)
}

// New creates a console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:       bufio.NewReader(in),
		out:      out,
		renderer: render.New(lipgloss.NewRenderer(out)),
		sleep:    time.Sleep,
	}
}

// ReadCommand returns the next input line without its line terminator.
// Spaces are kept: a single space is the place command.
func (c *Console) ReadCommand() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Render prints the board.
func (c *Console) Render(s *game.Session, showCursor bool) {
	screen := game.NewScreen()
	s.Render(screen, showCursor)
	fmt.Fprintln(c.out, c.renderer.Screen(screen))
}

// ClearScreen clears the terminal.
func (c *Console) ClearScreen() {
	fmt.Fprint(c.out, clearSequence)
}

// Pause waits so the player can read a message.
func (c *Console) Pause(d time.Duration) {
	if d > 0 {
		c.sleep(d)
	}
}

// PrintMessage prints one message followed by a newline.
func (c *Console) PrintMessage(text string) {
	fmt.Fprintln(c.out, text)
}

// AskName prompts for a player name. An empty answer or end of input
// returns fallback.
func (c *Console) AskName(prompt, fallback string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.ReadCommand()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if name := strings.TrimSpace(line); name != "" {
		return name, nil
	}
	return fallback, nil
}

var _ game.Console = (*Console)(nil)

// Options configures a line-mode game.
type Options struct {
	NameX, NameO string
	AskNames     bool
	Play         game.PlayOptions
	Logger       *log.Logger
}

// Run asks for names if needed, plays one game and returns its outcome.
func Run(c *Console, opts Options) (game.Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c.PrintMessage("Tic-tac-toe.")

	nameX, nameO := opts.NameX, opts.NameO
	if opts.AskNames {
		var err error
		if nameX, err = c.AskName("Enter the first player's name (plays x): ", nameX); err != nil {
			return game.Outcome{}, fmt.Errorf("console: read name: %w", err)
		}
		if nameO, err = c.AskName("Enter the second player's name (plays o): ", nameO); err != nil {
			return game.Outcome{}, fmt.Errorf("console: read name: %w", err)
		}
	}

	session := game.NewSession(nameX, nameO)
	logger = logger.With("session", session.ID())
	logger.Info("game started", "mode", "line",
		"x", session.Player(game.PlayerA).Name,
		"o", session.Player(game.PlayerB).Name)

	playOpts := opts.Play
	next := playOpts.OnStep
	playOpts.OnStep = func(res game.Result) {
		logStep(logger, res)
		if next != nil {
			next(res)
		}
	}

	outcome, err := game.Play(session, c, playOpts)
	if err != nil {
		logger.Error("game aborted", "err", err)
		return outcome, err
	}
	logOutcome(logger, session)
	return outcome, nil
}

func logStep(logger *log.Logger, res game.Result) {
	fields := []any{
		"token", res.Token,
		"action", res.Action,
		"event", res.Event,
		"player", res.Player,
		"pos", res.Position,
	}
	if res.Event == game.EventRejected {
		logger.Warn("command rejected", append(fields, "reason", res.Reason)...)
		return
	}
	logger.Debug("command applied", fields...)
}

func logOutcome(logger *log.Logger, s *game.Session) {
	out := s.Outcome()
	if out.Kind == game.OutcomeWin {
		logger.Info("game over", "outcome", out.Kind, "winner", s.Player(out.Winner).Name)
		return
	}
	logger.Info("game over", "outcome", out.Kind)
}
