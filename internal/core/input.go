package core

import "strings"

// Action represents a semantic game action, abstracted from the raw token
// typed by the player. This allows the engine to work with intents rather
// than keys.
type Action int

const (
	ActionNone  Action = iota // unrecognized input
	ActionUp                  // w
	ActionDown                // s
	ActionLeft                // a
	ActionRight               // d
	ActionPlace               // space or the current player's own mark
	ActionQuit                // q
)

// Command tokens understood by the engine.
const (
	TokenLeft  = "a"
	TokenDown  = "s"
	TokenUp    = "w"
	TokenRight = "d"
	TokenQuit  = "q"
	TokenPlace = " "
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlace:
		return "Place"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four cursor moves.
func (a Action) IsMove() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

// ParseToken translates one line of player input into an action.
// markToken is the current player's mark, which is accepted as a synonym
// for the place token. Input is case-insensitive.
func ParseToken(token, markToken string) Action {
	token = strings.ToLower(token)

	switch token {
	case TokenLeft:
		return ActionLeft
	case TokenDown:
		return ActionDown
	case TokenUp:
		return ActionUp
	case TokenRight:
		return ActionRight
	case TokenQuit:
		return ActionQuit
	case TokenPlace:
		return ActionPlace
	}

	if markToken != "" && token == strings.ToLower(markToken) {
		return ActionPlace
	}
	return ActionNone
}
