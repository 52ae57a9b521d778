package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Console is the presentation boundary the turn loop talks to.
// Implementations hold no game state.
type Console interface {
	// ReadCommand blocks for one line of input. io.EOF ends the game as a quit.
	ReadCommand() (string, error)
	// Render draws the board, optionally marking the cursor cell.
	Render(s *Session, showCursor bool)
	ClearScreen()
	Pause(d time.Duration)
	PrintMessage(text string)
}

// PlayOptions tunes the turn loop presentation.
type PlayOptions struct {
	ClearScreen bool          // clear before every prompt
	ShowHelp    bool          // print Banner before every prompt
	Pause       time.Duration // wait after a rejected command

	// OnStep, if set, is called after every applied command.
	OnStep func(res Result)
}

// Play runs the turn loop until the session is over and returns its outcome.
func Play(s *Session, c Console, opts PlayOptions) (Outcome, error) {
	for !s.Outcome().Over() {
		if opts.ClearScreen {
			c.ClearScreen()
		}
		if opts.ShowHelp {
			c.PrintMessage(Banner)
		}
		c.PrintMessage(TurnPrompt(s.Current()))
		c.Render(s, true)

		token, err := c.ReadCommand()
		if errors.Is(err, io.EOF) {
			token = core.TokenQuit
		} else if err != nil {
			return s.Outcome(), fmt.Errorf("game: read command: %w", err)
		}

		res, err := s.Apply(token)
		if err != nil {
			return s.Outcome(), err
		}
		if opts.OnStep != nil {
			opts.OnStep(res)
		}

		if res.Event == EventRejected {
			c.PrintMessage(RejectionMessage(res))
			if errors.Is(res.Reason, ErrCellOccupied) {
				c.Render(s, false)
			}
			c.Pause(opts.Pause)
		}
	}

	c.PrintMessage(s.OutcomeMessage())
	if s.Outcome().Kind != OutcomeQuit {
		c.Render(s, false)
	}
	return s.Outcome(), nil
}
