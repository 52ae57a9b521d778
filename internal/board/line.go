package board

import (
	"fmt"
	"iter"
)

// Line is a read-only view over a row, a column or a diagonal.
// It reads through to the board, so it always reflects the current state.
type Line struct {
	board  *Board
	start  Position
	dr, dc int
	n      int
}

// Len returns the number of cells in the line.
func (l Line) Len() int {
	return l.n
}

// At returns the i-th cell of the line.
func (l Line) At(i int) Cell {
	return l.board.cells[l.start.Row+i*l.dr][l.start.Col+i*l.dc]
}

// Position returns the board position of the i-th cell.
func (l Line) Position(i int) Position {
	return Position{Row: l.start.Row + i*l.dr, Col: l.start.Col + i*l.dc}
}

// All iterates over the cells of the line in order.
func (l Line) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := range l.n {
			if !yield(l.At(i)) {
				return
			}
		}
	}
}

// String renders the line as its cell characters, e.g. "x-o".
func (l Line) String() string {
	r := make([]rune, 0, l.n)
	for c := range l.All() {
		r = append(r, c.Rune())
	}
	return string(r)
}

// Row returns the line for the given row, left to right.
func (b *Board) Row(index int) (Line, error) {
	if index < 0 || index >= Size {
		return Line{}, fmt.Errorf("row %d: %w", index, ErrOutOfBounds)
	}
	return b.rowLine(index), nil
}

// Column returns the line for the given column, top to bottom.
func (b *Board) Column(index int) (Line, error) {
	if index < 0 || index >= Size {
		return Line{}, fmt.Errorf("column %d: %w", index, ErrOutOfBounds)
	}
	return b.columnLine(index), nil
}

// Rows returns every row, top to bottom.
func (b *Board) Rows() []Line {
	rows := make([]Line, Size)
	for i := range Size {
		rows[i] = b.rowLine(i)
	}
	return rows
}

func (b *Board) rowLine(index int) Line {
	return Line{board: b, start: Position{Row: index}, dc: 1, n: Size}
}

func (b *Board) columnLine(index int) Line {
	return Line{board: b, start: Position{Col: index}, dr: 1, n: Size}
}

// DiagonalDown returns the diagonal from the top-left to the bottom-right corner.
func (b *Board) DiagonalDown() Line {
	return Line{board: b, dr: 1, dc: 1, n: Size}
}

// DiagonalUp returns the diagonal from the bottom-left to the top-right corner.
func (b *Board) DiagonalUp() Line {
	return Line{board: b, start: Position{Row: Size - 1}, dr: -1, dc: 1, n: Size}
}

// Lines returns every row, then every column, then both diagonals.
func (b *Board) Lines() []Line {
	lines := make([]Line, 0, 2*Size+2)
	lines = append(lines, b.Rows()...)
	for i := range Size {
		lines = append(lines, b.columnLine(i))
	}
	return append(lines, b.DiagonalDown(), b.DiagonalUp())
}

// IsLineFull reports whether the line has no empty cells.
// A line that does not span the board, such as the zero Line, is never full.
func IsLineFull(l Line) bool {
	if l.Len() != Size {
		return false
	}
	for c := range l.All() {
		if c == Empty {
			return false
		}
	}
	return true
}

// IsLineCompleted reports whether every cell of the line holds mark.
func IsLineCompleted(l Line, mark Cell) (bool, error) {
	if l.Len() != Size {
		return false, fmt.Errorf("expected %d cells, got %d: %w", Size, l.Len(), ErrInvalidLineLength)
	}
	for c := range l.All() {
		if c != mark {
			return false, nil
		}
	}
	return true, nil
}
