package game

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// scriptConsole replays a fixed list of commands and records output.
type scriptConsole struct {
	commands []string
	readErr  error
	messages []string
	renders  int
	clears   int
	pauses   []time.Duration
}

func (c *scriptConsole) ReadCommand() (string, error) {
	if len(c.commands) == 0 {
		if c.readErr != nil {
			return "", c.readErr
		}
		return "", io.EOF
	}
	cmd := c.commands[0]
	c.commands = c.commands[1:]
	return cmd, nil
}

func (c *scriptConsole) Render(s *Session, showCursor bool) { c.renders++ }
func (c *scriptConsole) ClearScreen()                       { c.clears++ }
func (c *scriptConsole) Pause(d time.Duration)              { c.pauses = append(c.pauses, d) }
func (c *scriptConsole) PrintMessage(text string)           { c.messages = append(c.messages, text) }

func (c *scriptConsole) output() string {
	return strings.Join(c.messages, "\n")
}

func TestPlayWin(t *testing.T) {
	s := NewSession("Alice", "Bob")
	// Each placement moves the cursor to the first free cell, so space
	// alone fills the board in row-major order: x o x / o x o / x.
	// x wins on the up diagonal with the seventh mark.
	console := &scriptConsole{commands: []string{" ", " ", " ", " ", " ", " ", " "}}

	var steps []Result
	out, err := Play(s, console, PlayOptions{
		OnStep: func(res Result) { steps = append(steps, res) },
	})
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if out.Kind != OutcomeWin || out.Winner != PlayerA {
		t.Errorf("Play() outcome = %+v, expected win for A", out)
	}
	if len(steps) != 7 {
		t.Errorf("OnStep called %d times, expected 7", len(steps))
	}
	if !strings.Contains(console.output(), "Alice won! Game over.") {
		t.Errorf("output missing win message:\n%s", console.output())
	}
	if console.clears != 0 {
		t.Errorf("ClearScreen called %d times with ClearScreen off", console.clears)
	}
}

func TestPlayRejectionsPause(t *testing.T) {
	s := NewSession("Alice", "Bob")
	console := &scriptConsole{commands: []string{"?", " ", "a", " ", "q"}}

	out, err := Play(s, console, PlayOptions{
		ClearScreen: true,
		ShowHelp:    true,
		Pause:       3 * time.Second,
	})
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if out.Kind != OutcomeQuit {
		t.Errorf("Play() outcome = %v, expected quit", out.Kind)
	}

	if len(console.pauses) != 2 {
		t.Fatalf("Pause called %d times, expected 2", len(console.pauses))
	}
	if console.pauses[0] != 3*time.Second {
		t.Errorf("Pause(%v), expected 3s", console.pauses[0])
	}

	text := console.output()
	for _, want := range []string{
		`Unknown command key "?"`,
		"You can only move to a free cell!",
		"Now moving: Bob. Put 'o' in a free cell.",
		"Game interrupted by the player!",
		`Quit the game - "q"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if console.clears != 5 {
		t.Errorf("ClearScreen called %d times, expected 5", console.clears)
	}
}

func TestPlayEOFQuits(t *testing.T) {
	s := NewSession("Alice", "Bob")
	console := &scriptConsole{commands: []string{"d"}}

	out, err := Play(s, console, PlayOptions{})
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if out.Kind != OutcomeQuit {
		t.Errorf("Play() outcome = %v, expected quit on EOF", out.Kind)
	}
}

func TestPlayReadError(t *testing.T) {
	s := NewSession("Alice", "Bob")
	boom := errors.New("terminal gone")
	console := &scriptConsole{readErr: boom}

	_, err := Play(s, console, PlayOptions{})
	if !errors.Is(err, boom) {
		t.Errorf("Play() error = %v, expected %v", err, boom)
	}
	if s.Outcome().Over() {
		t.Error("a read error should not end the session")
	}
}
