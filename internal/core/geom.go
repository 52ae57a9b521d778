// Package core provides fundamental types and utilities shared by the board,
// the game engine and the console adapters. It contains no external
// dependencies, in particular no Bubble Tea.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// InRange reports whether val lies in [min, max].
func InRange(val, min, max int) bool {
	return val >= min && val <= max
}
