// Package tui provides the Bubble Tea front end for the game.
// It handles the terminal UI loop, name entry and key mapping; all game
// rules stay in the game package.
package tui

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/render"
)

// phase is the screen the model is showing.
type phase int

const (
	phaseNames phase = iota
	phasePlaying
	phaseOver
)

const nameCharLimit = 32

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Options configures a full screen game.
type Options struct {
	NameX, NameO string
	AskNames     bool
	ShowHelp     bool
	Logger       *log.Logger
}

// Model is the Bubble Tea model for one game.
type Model struct {
	opts     Options
	keys     KeyMap
	help     help.Model
	renderer *render.Renderer
	logger   *log.Logger

	phase  phase
	inputs [2]textinput.Model
	focus  int

	session *game.Session
	status  string
	isError bool
	outcome game.Outcome
}

// NewModel creates a model. Without AskNames the game starts immediately
// with the configured names.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		renderer: render.New(nil),
		logger:   logger,
	}

	if !opts.AskNames {
		m.start(opts.NameX, opts.NameO)
		return m
	}

	for i, fallback := range []string{opts.NameX, opts.NameO} {
		ti := textinput.New()
		ti.Placeholder = fallback
		ti.CharLimit = nameCharLimit
		ti.Width = nameCharLimit
		ti.Prompt = []string{"x: ", "o: "}[i]
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.phase == phaseNames {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.phase {
		case phaseNames:
			return m.handleNameKey(msg)
		case phasePlaying:
			return m.handleGameKey(msg)
		default:
			return m, tea.Quit
		}
	}

	if m.phase == phaseNames {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleNameKey processes keyboard input on the name entry screen.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.outcome = game.Outcome{Kind: game.OutcomeQuit}
		m.phase = phaseOver
		return m, tea.Quit

	case "enter", "tab":
		if m.focus == 0 {
			m.inputs[0].Blur()
			m.focus = 1
			return m, m.inputs[1].Focus()
		}
		if msg.String() == "tab" {
			m.inputs[1].Blur()
			m.focus = 0
			return m, m.inputs[0].Focus()
		}
		m.inputs[1].Blur()
		m.start(nameOr(m.inputs[0].Value(), m.opts.NameX), nameOr(m.inputs[1].Value(), m.opts.NameO))
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleGameKey feeds one key press to the engine.
func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	token := m.keys.Token(msg)

	res, err := m.session.Apply(token)
	if err != nil {
		if errors.Is(err, game.ErrGameOver) {
			return m, tea.Quit
		}
		m.logger.Error("step failed", "err", err)
		m.status, m.isError = err.Error(), true
		return m, nil
	}

	switch res.Event {
	case game.EventRejected:
		m.logger.Warn("command rejected", "token", res.Token, "reason", res.Reason, "pos", res.Position)
		m.status, m.isError = game.RejectionMessage(res), true

	case game.EventGameOver:
		m.outcome = res.Outcome
		m.phase = phaseOver
		m.status, m.isError = m.session.OutcomeMessage(), false
		m.logger.Info("game over", "outcome", res.Outcome.Kind)
		if res.Outcome.Kind == game.OutcomeQuit {
			return m, tea.Quit
		}

	default:
		m.logger.Debug("command applied", "token", res.Token, "event", res.Event, "pos", res.Position)
		m.status, m.isError = "", false
	}
	return m, nil
}

// start creates the session and switches to the board.
func (m *Model) start(nameX, nameO string) {
	m.session = game.NewSession(nameX, nameO)
	m.logger = m.logger.With("session", m.session.ID())
	m.logger.Info("game started", "mode", "tui",
		"x", m.session.Player(game.PlayerA).Name,
		"o", m.session.Player(game.PlayerB).Name)
	m.phase = phasePlaying
}

// View renders the current state to a string for display.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("T I C - T A C - T O E"))
	b.WriteString("\n\n")

	switch {
	case m.phase == phaseNames:
		b.WriteString("Enter player names (enter to confirm, empty keeps the default):\n\n")
		for _, ti := range m.inputs {
			b.WriteString(ti.View())
			b.WriteString("\n")
		}
		return b.String()

	case m.session == nil:
		return b.String()

	case m.phase == phasePlaying:
		b.WriteString(game.TurnPrompt(m.session.Current()))
		b.WriteString("\n")
	}

	screen := game.NewScreen()
	m.session.Render(screen, m.phase == phasePlaying)
	b.WriteString(boardStyle.Render(m.renderer.Screen(screen)))
	b.WriteString("\n")

	switch {
	case m.phase == phaseOver:
		b.WriteString(resultStyle.Render(m.status))
		b.WriteString("\n\nPress any key to exit.")
	case m.isError:
		b.WriteString(errorStyle.Render(m.status))
	}

	if m.opts.ShowHelp && m.phase == phasePlaying {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// Session returns the running session, or nil during name entry.
func (m Model) Session() *game.Session {
	return m.session
}

// Outcome returns how the game ended.
func (m Model) Outcome() game.Outcome {
	return m.outcome
}

func nameOr(name, fallback string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fallback
}

// Run starts the Bubble Tea program and returns the finished session.
// The session is nil when the players quit during name entry.
func Run(opts Options) (*game.Session, error) {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return nil, nil
	}
	return m.Session(), nil
}
