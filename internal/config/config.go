// Package config provides YAML-based configuration loading for the game,
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete application configuration.
type Config struct {
	Players PlayersConfig `yaml:"players"`
	Console ConsoleConfig `yaml:"console"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// PlayersConfig defines the two player names.
type PlayersConfig struct {
	X        string `yaml:"x" env:"TICTACTOE_PLAYER_X"`
	O        string `yaml:"o" env:"TICTACTOE_PLAYER_O"`
	AskNames bool   `yaml:"ask_names" env:"TICTACTOE_ASK_NAMES"` // prompt for names at start
}

// ConsoleConfig defines presentation of the line console.
type ConsoleConfig struct {
	PauseSeconds float64 `yaml:"pause_seconds" env:"TICTACTOE_PAUSE_SECONDS"` // wait after a rejected command
	ClearScreen  bool    `yaml:"clear_screen" env:"TICTACTOE_CLEAR_SCREEN"`
	ShowHelp     bool    `yaml:"show_help" env:"TICTACTOE_SHOW_HELP"`
}

// UIConfig selects the front end.
type UIConfig struct {
	Mode UIMode `yaml:"mode" env:"TICTACTOE_UI_MODE"`
}

// LogConfig defines the debug log sink.
type LogConfig struct {
	Level string `yaml:"level" env:"TICTACTOE_LOG_LEVEL"`
	File  string `yaml:"file" env:"TICTACTOE_LOG_FILE"` // empty disables logging
}

// UIMode represents a front end choice.
type UIMode string

const (
	UIModeAuto UIMode = "auto" // full screen on a terminal, line mode otherwise
	UIModeTUI  UIMode = "tui"
	UIModeLine UIMode = "line"
)

// ParseUIMode validates a mode name. Empty means auto.
func ParseUIMode(s string) (UIMode, error) {
	switch m := UIMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return UIModeAuto, nil
	case UIModeAuto, UIModeTUI, UIModeLine:
		return m, nil
	default:
		return "", fmt.Errorf("unknown ui mode %q (want auto, tui or line)", s)
	}
}

// PauseDuration returns the rejection pause as a duration.
func (c ConsoleConfig) PauseDuration() time.Duration {
	return time.Duration(c.PauseSeconds * float64(time.Second))
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	x, o := strings.TrimSpace(c.Players.X), strings.TrimSpace(c.Players.O)
	if x == "" || o == "" {
		errs = append(errs, errors.New("players: both names must be set"))
	} else if x == o {
		errs = append(errs, fmt.Errorf("players: names must differ, both are %q", x))
	}

	if c.Console.PauseSeconds < 0 {
		errs = append(errs, fmt.Errorf("console: pause_seconds must not be negative, got %v", c.Console.PauseSeconds))
	}

	if _, err := ParseUIMode(string(c.UI.Mode)); err != nil {
		errs = append(errs, fmt.Errorf("ui: %w", err))
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log: %w", err))
		}
	}

	return errors.Join(errs...)
}
