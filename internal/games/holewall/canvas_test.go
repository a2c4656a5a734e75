package holewall

import (
	"testing"

	"github.com/vovakirdan/holewall/internal/core"
)

func TestScreenCanvasClear(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewScreenCanvas(screen, 100, 100)

	c.Clear("blue")
	if cell := screen.GetCell(3, 7); cell.Rune != '█' || cell.Color != core.ColorBlue {
		t.Errorf("cell after blue clear = %+v", cell)
	}

	c.Clear("black")
	if cell := screen.GetCell(3, 7); cell.Rune != ' ' {
		t.Errorf("black should clear to blank, got %q", cell.Rune)
	}
}

func TestScreenCanvasFillRect(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewScreenCanvas(screen, 100, 100)

	c.FillRect(0, 0, 50, 50, "red")

	tests := []struct {
		x, y    int
		painted bool
	}{
		{0, 0, true},
		{4, 4, true},
		{4, 0, true},
		{5, 4, false},
		{4, 5, false},
		{9, 9, false},
	}
	for _, tc := range tests {
		cell := screen.GetCell(tc.x, tc.y)
		if painted := cell.Color == core.ColorRed; painted != tc.painted {
			t.Errorf("cell (%d,%d) painted = %v, expected %v", tc.x, tc.y, painted, tc.painted)
		}
	}
}

func TestScreenCanvasFillPolygon(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewScreenCanvas(screen, 100, 100)

	c.FillPolygon([]core.Point{core.Pt(0, 0), core.Pt(100, 0), core.Pt(0, 100)}, "green")

	tests := []struct {
		x, y    int
		painted bool
	}{
		{0, 0, true},
		{4, 4, true},
		{8, 0, true},
		{5, 5, false},
		{9, 9, false},
	}
	for _, tc := range tests {
		cell := screen.GetCell(tc.x, tc.y)
		if painted := cell.Color == core.ColorGreen; painted != tc.painted {
			t.Errorf("cell (%d,%d) painted = %v, expected %v", tc.x, tc.y, painted, tc.painted)
		}
	}
}

func TestScreenCanvasClipsOffscreen(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewScreenCanvas(screen, 100, 100)

	// Scaled walls routinely extend past the canvas
	c.FillRect(-500, -500, 2000, 2000, "blue")
	c.FillPolygon([]core.Point{core.Pt(-1000, -1000), core.Pt(3000, -1000), core.Pt(-1000, 3000)}, "red")

	if cell := screen.GetCell(9, 9); cell.Color != core.ColorRed {
		t.Errorf("corner cell = %+v, expected red", cell)
	}
}

func TestScreenCanvasDegeneratePolygon(t *testing.T) {
	screen := core.NewScreen(10, 10)
	c := NewScreenCanvas(screen, 100, 100)

	c.FillPolygon([]core.Point{{}, {}, {}}, "red")
	c.FillPolygon(nil, "red")

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if screen.GetCell(x, y).Color == core.ColorRed {
				t.Fatalf("cell (%d,%d) painted by a collapsed polygon", x, y)
			}
		}
	}
}
