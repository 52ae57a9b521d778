package game

import "github.com/vovakirdan/tui-tictactoe/internal/board"

// OutcomeKind describes how a session stands.
type OutcomeKind int

const (
	OutcomeInProgress OutcomeKind = iota
	OutcomeWin
	OutcomeDraw
	OutcomeQuit
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInProgress:
		return "in progress"
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the result of a session. Winner and Line are only set for a win.
type Outcome struct {
	Kind   OutcomeKind
	Winner PlayerIndex
	Line   []board.Position
}

// Over reports whether the session has ended.
func (o Outcome) Over() bool {
	return o.Kind != OutcomeInProgress
}

// State is the engine state machine position.
type State int

const (
	StateAwaitingCommand State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "awaiting command"
}

// Event tells the caller what a step did.
type Event int

const (
	EventCursorMoved Event = iota
	EventMarkPlaced
	EventRejected
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventCursorMoved:
		return "cursor_moved"
	case EventMarkPlaced:
		return "mark_placed"
	case EventRejected:
		return "rejected"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
