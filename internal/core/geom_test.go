package core

import "testing"

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

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := p.Scale(2.5); got != Pt(7.5, 10) {
		t.Errorf("Scale() = %v, expected (7.5, 10)", got)
	}
	if got := p.Cross(q); got != -10 {
		t.Errorf("Cross() = %v, expected -10", got)
	}
}

func TestTranslate(t *testing.T) {
	pts := []Point{{0, 80}, {50, 80}}
	out := Translate(pts, Pt(10, 20))

	if out[0] != Pt(10, 100) || out[1] != Pt(60, 100) {
		t.Errorf("Translate() = %v", out)
	}
	if pts[0] != Pt(0, 80) {
		t.Error("Translate should not modify its input")
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds([]Point{{5, -1}, {-2, 7}, {3, 3}})
	if lo != Pt(-2, -1) || hi != Pt(5, 7) {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}

	lo, hi = Bounds(nil)
	if lo != (Point{}) || hi != (Point{}) {
		t.Error("Bounds(nil) should return zero points")
	}
}
