package game

import (
	"strconv"

	"github.com/vovakirdan/tui-tictactoe/internal/board"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// CursorRune marks the cursor cell when the cursor is shown.
const CursorRune = '?'

const (
	cellGap   = 3 // columns between cell centers
	boardLeft = 3 // first cell column, after the row index
)

// ScreenSize returns the buffer dimensions needed to render the board:
// one header line plus one line per row.
func ScreenSize() (width, height int) {
	return boardLeft + cellGap*(board.Size-1) + 1, board.Size + 1
}

// NewScreen allocates a buffer sized for Render.
func NewScreen() *core.Screen {
	return core.NewScreen(ScreenSize())
}

// Render draws the board with row and column headers into dst:
//
//	   0  1  2
//	0  x  -  o
//	1  -  ?  -
//	2  -  -  -
//
// When showCursor is set the cursor cell is drawn as '?' instead of its value.
// A winning line is highlighted once the game is won.
func (s *Session) Render(dst *core.Screen, showCursor bool) {
	dst.Clear()

	for c := range board.Size {
		dst.DrawTextColored(boardLeft+cellGap*c, 0, strconv.Itoa(c), core.ColorGray)
	}

	winning := make(map[board.Position]bool, len(s.outcome.Line))
	for _, p := range s.outcome.Line {
		winning[p] = true
	}

	cursor := s.board.Cursor()
	for r, row := range s.board.Rows() {
		y := r + 1
		dst.DrawTextColored(0, y, strconv.Itoa(r), core.ColorGray)

		for c := range row.Len() {
			pos := row.Position(c)
			cell := row.At(c)

			ch, color := cell.Rune(), cellColor(cell)
			if winning[pos] {
				color = core.ColorGreen
			}
			if showCursor && pos == cursor {
				ch, color = CursorRune, core.ColorYellow
			}
			dst.SetColored(boardLeft+cellGap*c, y, ch, color)
		}
	}
}

// RenderText renders the board to plain text.
func (s *Session) RenderText(showCursor bool) string {
	screen := NewScreen()
	s.Render(screen, showCursor)
	return screen.String()
}

func cellColor(c board.Cell) core.Color {
	switch c {
	case board.X:
		return core.ColorCyan
	case board.O:
		return core.ColorMagenta
	default:
		return core.ColorGray
	}
}
