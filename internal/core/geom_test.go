package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Point
		expected Point
	}{
		{"zero", Pt(0, 0), Pt(0, 0), Pt(0, 0)},
		{"right", Pt(10, 7), Pt(1, 0), Pt(11, 7)},
		{"up", Pt(10, 7), Pt(0, -1), Pt(10, 6)},
		{"negative", Pt(-2, 3), Pt(-1, -5), Pt(-3, -2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Add(tc.q); got != tc.expected {
				t.Errorf("%v.Add(%v) = %v, expected %v", tc.p, tc.q, got, tc.expected)
			}
		})
	}
}

func TestPointNeg(t *testing.T) {
	p := Pt(3, -4)
	if p.Neg() != Pt(-3, 4) {
		t.Errorf("Neg() = %v, expected (-3,4)", p.Neg())
	}
	if p.Add(p.Neg()) != Pt(0, 0) {
		t.Error("p + (-p) should be the origin")
	}
}

func TestPointManhattan(t *testing.T) {
	if d := Pt(0, 0).Manhattan(Pt(3, -4)); d != 7 {
		t.Errorf("Manhattan = %d, expected 7", d)
	}
	if d := Pt(5, 5).Manhattan(Pt(5, 5)); d != 0 {
		t.Errorf("Manhattan to self = %d, expected 0", d)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner", Pt(10, 10), true},
		{"bottom-right edge (exclusive)", Pt(30, 25), false},
		{"last cell", Pt(29, 24), true},
		{"outside left", Pt(5, 15), false},
		{"outside right", Pt(35, 15), false},
		{"outside top", Pt(15, 5), false},
		{"outside bottom", Pt(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestInterior(t *testing.T) {
	r := Interior(20, 15)
	if r != NewRect(1, 1, 18, 13) {
		t.Fatalf("Interior(20, 15) = %+v", r)
	}
	if r.Contains(Pt(0, 5)) || r.Contains(Pt(19, 5)) || r.Contains(Pt(5, 0)) || r.Contains(Pt(5, 14)) {
		t.Error("Interior should exclude the border ring")
	}
	if !r.Contains(Pt(1, 1)) || !r.Contains(Pt(18, 13)) {
		t.Error("Interior should include the cells next to the border")
	}
	if r.Area() != 18*13 {
		t.Errorf("Area() = %d, expected %d", r.Area(), 18*13)
	}

	if Interior(2, 2).Area() != 0 {
		t.Error("a 2x2 board has no interior")
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
	if r.Area() != 300 {
		t.Errorf("Area() = %d, expected 300", r.Area())
	}
}

func TestRectEach(t *testing.T) {
	var got []Point
	NewRect(1, 2, 2, 2).Each(func(p Point) {
		got = append(got, p)
	})

	expected := []Point{Pt(1, 2), Pt(2, 2), Pt(1, 3), Pt(2, 3)}
	if len(got) != len(expected) {
		t.Fatalf("Each visited %d cells, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("cell %d = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
