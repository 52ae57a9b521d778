// Package game implements the tic-tac-toe engine: a session owning the board
// and both players, the command state machine, and the turn loop that drives
// a console boundary.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tictactoe/internal/board"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

var (
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrUnknownCommand = errors.New("unknown command")
	ErrGameOver       = errors.New("game is already over")
)

// Result describes what a single step did.
type Result struct {
	Token    string      // raw input, set by Apply
	Action   core.Action // parsed command
	Event    Event
	Player   PlayerIndex    // player whose turn it was
	Position board.Position // cursor after a move, or the cell acted on
	Reason   error          // ErrCellOccupied or ErrUnknownCommand for EventRejected
	Outcome  Outcome
}

// Session is one game: the board, the two players, whose turn it is and how
// the game ended. All state is owned here and mutated only through Step.
type Session struct {
	id      string
	board   *board.Board
	players [2]Player
	current PlayerIndex
	outcome Outcome
}

// NewSession creates a session with an empty board. Empty names fall back
// to the defaults.
func NewSession(nameA, nameB string) *Session {
	if strings.TrimSpace(nameA) == "" {
		nameA = DefaultNameA
	}
	if strings.TrimSpace(nameB) == "" {
		nameB = DefaultNameB
	}

	return &Session{
		id:    uuid.NewString(),
		board: board.New(),
		players: [2]Player{
			PlayerA: {Name: nameA, Mark: board.X},
			PlayerB: {Name: nameB, Mark: board.O},
		},
		current: PlayerA,
	}
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string {
	return s.id
}

// Board returns the session board.
func (s *Session) Board() *board.Board {
	return s.board
}

// Player returns the player at index p.
func (s *Session) Player(p PlayerIndex) Player {
	if p == PlayerB {
		return s.players[PlayerB]
	}
	return s.players[PlayerA]
}

// CurrentIndex returns whose turn it is.
func (s *Session) CurrentIndex() PlayerIndex {
	return s.current
}

// Current returns the player whose turn it is.
func (s *Session) Current() Player {
	return s.Player(s.current)
}

// Outcome returns the session outcome.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// State returns the engine state.
func (s *Session) State() State {
	if s.outcome.Over() {
		return StateGameOver
	}
	return StateAwaitingCommand
}

// Apply parses a raw input token against the current player and steps the
// session with it.
func (s *Session) Apply(token string) (Result, error) {
	action := core.ParseToken(token, s.Current().Mark.String())
	res, err := s.Step(action)
	res.Token = token
	return res, err
}

// Step applies one command. User mistakes are reported through
// Result.Reason and leave the session untouched; the returned error is
// reserved for misuse such as stepping a finished game.
func (s *Session) Step(action core.Action) (Result, error) {
	res := Result{Action: action, Player: s.current}
	if s.outcome.Over() {
		res.Event = EventGameOver
		res.Outcome = s.outcome
		return res, ErrGameOver
	}

	switch {
	case action.IsMove():
		if err := s.board.MoveCursor(directionFor(action)); err != nil {
			return res, fmt.Errorf("game: move cursor: %w", err)
		}
		res.Event = EventCursorMoved
		res.Position = s.board.Cursor()

	case action == core.ActionQuit:
		s.outcome = Outcome{Kind: OutcomeQuit}
		res.Event = EventGameOver

	case action == core.ActionPlace:
		return s.place(res)

	default:
		res.Event = EventRejected
		res.Reason = ErrUnknownCommand
	}

	res.Outcome = s.outcome
	return res, nil
}

// place puts the current player's mark under the cursor and resolves the turn.
func (s *Session) place(res Result) (Result, error) {
	pos := s.board.Cursor()
	res.Position = pos

	cell, err := s.board.CellAt(pos.Row, pos.Col)
	if err != nil {
		return res, fmt.Errorf("game: read cursor cell: %w", err)
	}
	if cell != board.Empty {
		res.Event = EventRejected
		res.Reason = ErrCellOccupied
		res.Outcome = s.outcome
		return res, nil
	}

	if err := s.board.SetCellAt(pos.Row, pos.Col, s.Current().Mark); err != nil {
		return res, fmt.Errorf("game: place mark: %w", err)
	}

	line, won, err := s.winningLine(s.current)
	if err != nil {
		return res, err
	}
	if won {
		s.outcome = Outcome{Kind: OutcomeWin, Winner: s.current, Line: line}
		res.Event = EventGameOver
		res.Outcome = s.outcome
		return res, nil
	}

	next, ok := s.board.FirstFreeCell()
	if !ok {
		s.outcome = Outcome{Kind: OutcomeDraw}
		res.Event = EventGameOver
		res.Outcome = s.outcome
		return res, nil
	}

	if err := s.board.SetCursor(next); err != nil {
		return res, fmt.Errorf("game: advance cursor: %w", err)
	}
	s.current = SwitchPlayer(s.current)

	res.Event = EventMarkPlaced
	res.Outcome = s.outcome
	return res, nil
}

// IsPlayerWin reports whether player p has completed any line.
func (s *Session) IsPlayerWin(p PlayerIndex) (bool, error) {
	_, won, err := s.winningLine(p)
	return won, err
}

// winningLine returns the first line fully owned by p.
func (s *Session) winningLine(p PlayerIndex) ([]board.Position, bool, error) {
	mark := s.Player(p).Mark
	for _, l := range s.board.Lines() {
		done, err := board.IsLineCompleted(l, mark)
		if err != nil {
			return nil, false, fmt.Errorf("game: check line: %w", err)
		}
		if done {
			cells := make([]board.Position, l.Len())
			for i := range cells {
				cells[i] = l.Position(i)
			}
			return cells, true, nil
		}
	}
	return nil, false, nil
}

func directionFor(a core.Action) board.Direction {
	switch a {
	case core.ActionUp:
		return board.DirUp
	case core.ActionDown:
		return board.DirDown
	case core.ActionLeft:
		return board.DirLeft
	case core.ActionRight:
		return board.DirRight
	}
	return board.Direction(-1)
}
