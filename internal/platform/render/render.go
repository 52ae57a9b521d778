// Package render converts core.Screen buffers into styled terminal text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Renderer maps core colors to lipgloss styles for one output.
type Renderer struct {
	styles map[core.Color]lipgloss.Style
}

// New creates a renderer. The lipgloss renderer decides the color profile,
// so output to a non-terminal writer comes out plain.
func New(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		styles: map[core.Color]lipgloss.Style{
			core.ColorDefault: r.NewStyle(),
			core.ColorGreen:   r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			core.ColorYellow:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			core.ColorCyan:    r.NewStyle().Foreground(lipgloss.Color("14")),
			core.ColorMagenta: r.NewStyle().Foreground(lipgloss.Color("13")),
			core.ColorGray:    r.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// Screen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Screen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			text := run.String()
			if x == s.Width() {
				text = strings.TrimRight(text, " ")
			}
			sb.WriteString(r.Style(startColor).Render(text))
		}
	}
	return sb.String()
}

// Style returns the style for a color, falling back to the default style.
func (r *Renderer) Style(c core.Color) lipgloss.Style {
	if style, ok := r.styles[c]; ok {
		return style
	}
	return r.styles[core.ColorDefault]
}
