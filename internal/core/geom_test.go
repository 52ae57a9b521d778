package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{1, 0, 2, 1},  // within range
		{-1, 0, 2, 0}, // below min
		{3, 0, 2, 2},  // above max
		{0, 0, 2, 0},  // at min
		{2, 0, 2, 2},  // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name     string
		val      int
		expected bool
	}{
		{"inside", 1, true},
		{"lower bound", 0, true},
		{"upper bound", 2, true},
		{"below", -1, false},
		{"above", 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InRange(tc.val, 0, 2); got != tc.expected {
				t.Errorf("InRange(%d, 0, 2) = %v, expected %v", tc.val, got, tc.expected)
			}
		})
	}
}
