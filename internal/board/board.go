// Package board holds the tic-tac-toe grid, the cursor and the line queries
// used for win detection. It knows nothing about players or turns; placement
// policy lives in the game package.
package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Size is the board dimension.
const Size = 3

var (
	ErrOutOfBounds       = errors.New("position is outside the board")
	ErrInvalidLineLength = errors.New("line has wrong length")
	ErrInvalidDirection  = errors.New("invalid cursor direction")
)

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// Rune returns the character used to draw the cell.
func (c Cell) Rune() rune {
	switch c {
	case X:
		return 'x'
	case O:
		return 'o'
	default:
		return '-'
	}
}

// String returns the cell character as a string.
func (c Cell) String() string {
	return string(c.Rune())
}

// Direction is a cursor movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// delta returns the row/column step for the direction.
func (d Direction) delta() (dr, dc int, ok bool) {
	switch d {
	case DirUp:
		return -1, 0, true
	case DirDown:
		return 1, 0, true
	case DirLeft:
		return 0, -1, true
	case DirRight:
		return 0, 1, true
	}
	return 0, 0, false
}

// Position addresses one cell.
type Position struct {
	Row, Col int
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return core.InRange(p.Row, 0, Size-1) && core.InRange(p.Col, 0, Size-1)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Board is a Size x Size grid plus the cursor that the next mark applies to.
type Board struct {
	cells  [Size][Size]Cell
	cursor Position
}

// New creates an empty board with the cursor in the top-left corner.
func New() *Board {
	return &Board{}
}

// CellAt returns the cell at (row, col).
func (b *Board) CellAt(row, col int) (Cell, error) {
	p := Position{Row: row, Col: col}
	if !p.Valid() {
		return Empty, fmt.Errorf("cell %v: %w", p, ErrOutOfBounds)
	}
	return b.cells[row][col], nil
}

// SetCellAt overwrites the cell at (row, col). It does not check whether the
// cell is already taken.
func (b *Board) SetCellAt(row, col int, c Cell) error {
	p := Position{Row: row, Col: col}
	if !p.Valid() {
		return fmt.Errorf("cell %v: %w", p, ErrOutOfBounds)
	}
	b.cells[row][col] = c
	return nil
}

// Cursor returns the current cursor position.
func (b *Board) Cursor() Position {
	return b.cursor
}

// SetCursor moves the cursor to an absolute position.
func (b *Board) SetCursor(p Position) error {
	if !p.Valid() {
		return fmt.Errorf("cursor %v: %w", p, ErrOutOfBounds)
	}
	b.cursor = p
	return nil
}

// MoveCursor moves the cursor one step in the given direction.
// Moving against an edge leaves the cursor where it is.
func (b *Board) MoveCursor(d Direction) error {
	dr, dc, ok := d.delta()
	if !ok {
		return fmt.Errorf("%v: %w", d, ErrInvalidDirection)
	}
	b.cursor = Position{
		Row: core.Clamp(b.cursor.Row+dr, 0, Size-1),
		Col: core.Clamp(b.cursor.Col+dc, 0, Size-1),
	}
	return nil
}

// FirstFreeCell returns the first empty cell in row-major order.
func (b *Board) FirstFreeCell() (Position, bool) {
	for row := range Size {
		for col := range Size {
			if b.cells[row][col] == Empty {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	_, ok := b.FirstFreeCell()
	return !ok
}
