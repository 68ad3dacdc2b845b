package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5.5, 5.5, 10, 10), true},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 4, 10), false},
		{"touching bottom edge", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 4), false},
		{"fractional overlap", NewBox(0, 0, 10, 10), NewBox(9.99, 9.99, 1, 1), true},
		{"projectile inside enemy", NewBox(100, 50, 36, 20), NewBox(116, 55, 4, 10), true},
		{"far apart", NewBox(0, 0, 4, 10), NewBox(200, 300, 36, 20), false},
		{"negative coordinates", NewBox(-20, -20, 36, 20), NewBox(0, -5, 4, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(220, 610, 40, 20)
	if b.Right() != 260 {
		t.Errorf("Right() = %f, expected 260", b.Right())
	}
	if b.Bottom() != 630 {
		t.Errorf("Bottom() = %f, expected 630", b.Bottom())
	}
	if b.CenterX() != 240 {
		t.Errorf("CenterX() = %f, expected 240", b.CenterX())
	}
}

func TestBoxScale(t *testing.T) {
	// 480x640 playfield onto an 80x32 screen
	sx, sy := 80.0/480.0, 32.0/640.0

	r := NewBox(240, 320, 36, 20).Scale(sx, sy)
	if r.X != 40 || r.Y != 16 {
		t.Errorf("Scale() position = (%d, %d), expected (40, 16)", r.X, r.Y)
	}
	if r.W != 6 || r.H != 1 {
		t.Errorf("Scale() size = %dx%d, expected 6x1", r.W, r.H)
	}

	// Thin projectiles still cover a cell
	p := NewBox(0, 0, 4, 10).Scale(sx, sy)
	if p.W != 1 || p.H != 1 {
		t.Errorf("Scale() of thin box = %dx%d, expected 1x1", p.W, p.H)
	}

	// Boxes above the playfield map to negative rows
	above := NewBox(0, -20, 36, 20).Scale(sx, sy)
	if above.Y != -1 {
		t.Errorf("Scale() of box above playfield Y = %d, expected -1", above.Y)
	}
}

func TestFixedRand(t *testing.T) {
	r := &FixedRand{Values: []float64{0.25, 0.5}}
	expected := []float64{0.25, 0.5, 0.25}
	for i, want := range expected {
		if got := r.Float64(); got != want {
			t.Errorf("Float64() call %d = %f, expected %f", i, got, want)
		}
	}

	empty := &FixedRand{}
	if got := empty.Float64(); got != 0 {
		t.Errorf("empty FixedRand Float64() = %f, expected 0", got)
	}
}
