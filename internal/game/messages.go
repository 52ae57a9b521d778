package game

import (
	"errors"
	"fmt"
	"strings"
)

// Banner lists the controls. It is shown above the board each turn.
var Banner = strings.Join([]string{
	strings.Repeat("=", 60),
	`Quit the game - "q"`,
	`Place your mark on your turn - "Space" or your own mark`,
	`Move the cursor with the keys           W(up)`,
	`                              A(left) S(down) D(right)`,
	`(Finish every key press with 'Enter')`,
	strings.Repeat("=", 60),
}, "\n")

// QuitMessage is shown when a player leaves before the game is decided.
const QuitMessage = "Game interrupted by the player!"

// TurnPrompt tells the current player what to do.
func TurnPrompt(p Player) string {
	return fmt.Sprintf("Now moving: %s. Put '%s' in a free cell.", p.Name, p.Mark)
}

// RejectionMessage explains why a command was refused.
func RejectionMessage(res Result) string {
	switch {
	case errors.Is(res.Reason, ErrCellOccupied):
		return "You can only move to a free cell!"
	case errors.Is(res.Reason, ErrUnknownCommand):
		return fmt.Sprintf("Unknown command key %q.\nUse the commands listed in the help above.", res.Token)
	case res.Reason != nil:
		return res.Reason.Error()
	default:
		return ""
	}
}

// OutcomeMessage announces how the session ended.
func (s *Session) OutcomeMessage() string {
	switch s.outcome.Kind {
	case OutcomeWin:
		return fmt.Sprintf("%s won! Game over.", s.Player(s.outcome.Winner).Name)
	case OutcomeDraw:
		return "Game over, no moves left! Looks like a draw!"
	case OutcomeQuit:
		return QuitMessage
	default:
		return ""
	}
}
