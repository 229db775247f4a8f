package core

import "testing"

func TestRectIntersects(t *testing.T) {
	// The renderer lays the well, sidebar and overlays out as rects;
	// overlap detection must treat edges as exclusive.
	base := NewRect(2, 1, 22, 21)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"overlapping", NewRect(10, 10, 30, 5), true},
		{"fully inside", NewRect(5, 5, 4, 4), true},
		{"fully containing", NewRect(0, 0, 80, 24), true},
		{"touching right edge", NewRect(24, 1, 16, 10), false},
		{"touching bottom edge", NewRect(2, 22, 22, 2), false},
		{"disjoint", NewRect(50, 1, 16, 10), false},
		{"one cell overlap", NewRect(23, 21, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects(%+v) = %v, expected %v", tc.other, got, tc.expected)
			}
			if got := tc.other.Intersects(base); got != tc.expected {
				t.Errorf("Intersects is not symmetric for %+v", tc.other)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(4, 2, 10, 6)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"center", 8, 4, true},
		{"top-left corner", 4, 2, true},
		{"right edge exclusive", 14, 4, false},
		{"bottom edge exclusive", 8, 8, false},
		{"last inside cell", 13, 7, true},
		{"left of rect", 3, 4, false},
		{"above rect", 8, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(3, 4, 11, 7)

	if r.Right() != 14 {
		t.Errorf("Right() = %d, expected 14", r.Right())
	}
	if r.Bottom() != 11 {
		t.Errorf("Bottom() = %d, expected 11", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 8 || cy != 7 {
		t.Errorf("Center() = (%d, %d), expected (8, 7)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{7, 1, 15, 7},
		{0, 1, 15, 1},
		{99, 1, 15, 15},
		{1, 1, 15, 1},
		{15, 1, 15, 15},
		{-3, -10, -1, -3},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.3, 0.0, 1.0, 0.3},
		{-0.2, 0.0, 1.0, 0.0},
		{1.7, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	tests := []struct {
		a, b             int
		wantMin, wantMax int
	}{
		{3, 9, 3, 9},
		{9, 3, 3, 9},
		{-4, 4, -4, 4},
		{5, 5, 5, 5},
	}

	for _, tc := range tests {
		if got := Min(tc.a, tc.b); got != tc.wantMin {
			t.Errorf("Min(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.wantMin)
		}
		if got := Max(tc.a, tc.b); got != tc.wantMax {
			t.Errorf("Max(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.wantMax)
		}
	}

	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs should strip the sign and keep zero")
	}
}
