package board

import (
	"errors"
	"testing"
)

func TestLineExtraction(t *testing.T) {
	b := New()
	fill(t, b,
		"xo-",
		"-xo",
		"o-x",
	)

	row0, _ := b.Row(0)
	row2, _ := b.Row(2)
	col0, _ := b.Column(0)
	col2, _ := b.Column(2)

	tests := []struct {
		name     string
		line     Line
		expected string
	}{
		{"row 0", row0, "xo-"},
		{"row 2", row2, "o-x"},
		{"column 0", col0, "x-o"},
		{"column 2", col2, "-ox"},
		{"diagonal down", b.DiagonalDown(), "xxx"},
		{"diagonal up", b.DiagonalUp(), "ox-"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.line.Len() != Size {
				t.Errorf("Len() = %d, expected %d", tc.line.Len(), Size)
			}
			if got := tc.line.String(); got != tc.expected {
				t.Errorf("line = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestLineIsView(t *testing.T) {
	b := New()
	row, _ := b.Row(1)

	b.SetCellAt(1, 2, O)

	if row.At(2) != O {
		t.Errorf("row.At(2) = %v, expected o after board write", row.At(2))
	}
	if row.Position(2) != (Position{1, 2}) {
		t.Errorf("row.Position(2) = %v, expected (1,2)", row.Position(2))
	}
}

func TestLineIndexOutOfBounds(t *testing.T) {
	b := New()
	if _, err := b.Row(Size); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Row(%d) error = %v, expected ErrOutOfBounds", Size, err)
	}
	if _, err := b.Column(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Column(-1) error = %v, expected ErrOutOfBounds", err)
	}
}

func TestLines(t *testing.T) {
	b := New()
	lines := b.Lines()

	if len(lines) != 2*Size+2 {
		t.Fatalf("Lines() returned %d lines, expected %d", len(lines), 2*Size+2)
	}

	// Every cell appears in at least two lines (its row and its column).
	seen := make(map[Position]int)
	for _, l := range lines {
		for i := range l.Len() {
			seen[l.Position(i)]++
		}
	}
	for row := range Size {
		for col := range Size {
			if seen[Position{row, col}] < 2 {
				t.Errorf("cell (%d,%d) covered by %d lines, expected >= 2", row, col, seen[Position{row, col}])
			}
		}
	}
	// Center sits on both diagonals too.
	if seen[Position{1, 1}] != 4 {
		t.Errorf("center covered by %d lines, expected 4", seen[Position{1, 1}])
	}
}

func TestIsLineFull(t *testing.T) {
	b := New()
	fill(t, b,
		"xox",
		"x-o",
		"---",
	)

	row0, _ := b.Row(0)
	row1, _ := b.Row(1)
	row2, _ := b.Row(2)

	if !IsLineFull(row0) {
		t.Error("IsLineFull(row 0) = false, expected true")
	}
	if IsLineFull(row1) {
		t.Error("IsLineFull(row 1) = true, expected false")
	}
	if IsLineFull(row2) {
		t.Error("IsLineFull(row 2) = true, expected false")
	}
}

func TestIsLineFullShortLine(t *testing.T) {
	b := New()
	fill(t, b,
		"xox",
		"oxo",
		"oxo",
	)

	if IsLineFull(Line{}) {
		t.Error("IsLineFull(Line{}) = true, expected false")
	}
	if IsLineFull(Line{board: b, dc: 1, n: 2}) {
		t.Error("IsLineFull(2-cell line) = true, expected false")
	}

	row, err := b.Row(Size)
	if err == nil {
		t.Fatalf("Row(%d) should fail", Size)
	}
	if IsLineFull(row) {
		t.Error("IsLineFull(line from failed Row) = true, expected false")
	}
}

func TestRowsMatchRowAndLines(t *testing.T) {
	b := New()
	fill(t, b,
		"x-o",
		"-x-",
		"oo-",
	)

	rows := b.Rows()
	if len(rows) != Size {
		t.Fatalf("Rows() returned %d lines, expected %d", len(rows), Size)
	}

	lines := b.Lines()
	for i := range Size {
		row, err := b.Row(i)
		if err != nil {
			t.Fatalf("Row(%d) error: %v", i, err)
		}
		if rows[i].String() != row.String() {
			t.Errorf("Rows()[%d] = %q, expected %q", i, rows[i].String(), row.String())
		}
		if lines[i].String() != row.String() {
			t.Errorf("Lines()[%d] = %q, expected row %q", i, lines[i].String(), row.String())
		}

		col, err := b.Column(i)
		if err != nil {
			t.Fatalf("Column(%d) error: %v", i, err)
		}
		if lines[Size+i].String() != col.String() {
			t.Errorf("Lines()[%d] = %q, expected column %q", Size+i, lines[Size+i].String(), col.String())
		}
	}
}

func TestIsLineCompleted(t *testing.T) {
	tests := []struct {
		name     string
		layout   []string
		pick     func(b *Board) Line
		mark     Cell
		expected bool
	}{
		{
			name:     "full row of x",
			layout:   []string{"xxx", "o-o", "---"},
			pick:     func(b *Board) Line { l, _ := b.Row(0); return l },
			mark:     X,
			expected: true,
		},
		{
			name:     "full row of x checked for o",
			layout:   []string{"xxx", "o-o", "---"},
			pick:     func(b *Board) Line { l, _ := b.Row(0); return l },
			mark:     O,
			expected: false,
		},
		{
			name:     "full column of o",
			layout:   []string{"xo-", "xo-", "-o-"},
			pick:     func(b *Board) Line { l, _ := b.Column(1); return l },
			mark:     O,
			expected: true,
		},
		{
			name:     "mixed line",
			layout:   []string{"xox", "---", "---"},
			pick:     func(b *Board) Line { l, _ := b.Row(0); return l },
			mark:     X,
			expected: false,
		},
		{
			name:     "line with gap",
			layout:   []string{"x-x", "---", "---"},
			pick:     func(b *Board) Line { l, _ := b.Row(0); return l },
			mark:     X,
			expected: false,
		},
		{
			name:     "diagonal down",
			layout:   []string{"o--", "-o-", "--o"},
			pick:     func(b *Board) Line { return b.DiagonalDown() },
			mark:     O,
			expected: true,
		},
		{
			name:     "diagonal up",
			layout:   []string{"--x", "-x-", "x--"},
			pick:     func(b *Board) Line { return b.DiagonalUp() },
			mark:     X,
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			fill(t, b, tc.layout...)

			got, err := IsLineCompleted(tc.pick(b), tc.mark)
			if err != nil {
				t.Fatalf("IsLineCompleted failed: %v", err)
			}
			if got != tc.expected {
				t.Errorf("IsLineCompleted() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIsLineCompletedInvalidLength(t *testing.T) {
	b := New()
	fill(t, b, "xx-", "---", "---")

	short := Line{board: b, dc: 1, n: 2}
	if _, err := IsLineCompleted(short, X); !errors.Is(err, ErrInvalidLineLength) {
		t.Errorf("IsLineCompleted(short) error = %v, expected ErrInvalidLineLength", err)
	}
}
