package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Players: PlayersConfig{
			X:        "Player 1",
			O:        "Player 2",
			AskNames: true,
		},
		Console: ConsoleConfig{
			PauseSeconds: 3,
			ClearScreen:  true,
			ShowHelp:     true,
		},
		UI: UIConfig{
			Mode: UIModeAuto,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
