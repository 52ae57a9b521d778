package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// KeyMap defines the key bindings for the board. Each binding resolves to
// one of the engine's command tokens, so the line console and the full
// screen UI share the same command set.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Place key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Place, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(core.TokenUp, "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(core.TokenDown, "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys(core.TokenLeft, "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(core.TokenRight, "right"),
			key.WithHelp("d/→", "right"),
		),
		Place: key.NewBinding(
			key.WithKeys(core.TokenPlace),
			key.WithHelp("space/mark", "place"),
		),
		Quit: key.NewBinding(
			key.WithKeys(core.TokenQuit, "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Token translates a key press to an engine command token. Keys without a
// binding pass through unchanged, so the current player's mark still places
// and anything else is reported as an unknown command.
func (k KeyMap) Token(msg tea.KeyMsg) string {
	switch {
	case key.Matches(msg, k.Up):
		return core.TokenUp
	case key.Matches(msg, k.Down):
		return core.TokenDown
	case key.Matches(msg, k.Left):
		return core.TokenLeft
	case key.Matches(msg, k.Right):
		return core.TokenRight
	case key.Matches(msg, k.Place):
		return core.TokenPlace
	case key.Matches(msg, k.Quit):
		return core.TokenQuit
	}
	return msg.String()
}
