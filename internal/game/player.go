package game

import (
	"fmt"

	"github.com/vovakirdan/tui-tictactoe/internal/board"
)

// PlayerIndex identifies one of the two players of a session.
type PlayerIndex int

const (
	PlayerA PlayerIndex = iota // plays X and moves first
	PlayerB                    // plays O
)

// Default player names, used when none are configured.
const (
	DefaultNameA = "Player 1"
	DefaultNameB = "Player 2"
)

func (p PlayerIndex) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return fmt.Sprintf("PlayerIndex(%d)", int(p))
	}
}

// Player is a named participant with a fixed mark.
type Player struct {
	Name string
	Mark board.Cell
}

// SwitchPlayer returns the player whose turn comes after p.
// Anything that is not PlayerA maps back to PlayerA.
func SwitchPlayer(p PlayerIndex) PlayerIndex {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}
