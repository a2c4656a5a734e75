package holewall

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/vovakirdan/holewall/internal/core"
)

// recordingCanvas logs every call it receives.
type recordingCanvas struct {
	calls []string
}

func (c *recordingCanvas) Clear(color string) {
	c.calls = append(c.calls, "clear "+color)
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, color string) {
	c.calls = append(c.calls, fmt.Sprintf("rect %v,%v %vx%v %s", x, y, w, h, color))
}

func (c *recordingCanvas) FillPolygon(vertices []core.Point, color string) {
	c.calls = append(c.calls, fmt.Sprintf("polygon %v %s", vertices, color))
}

var testPalette = Palette{Background: "black", Wall: "blue", Hole: "black"}

func TestOrderBackToFront(t *testing.T) {
	specs := []DrawSpec{
		{Location: core.Pt(0, 10), Color: "a"},
		{Location: core.Pt(0, 30), Color: "b"},
		{Location: core.Pt(0, 20), Color: "c"},
		{Location: core.Pt(5, 30), Color: "d"},
	}
	OrderBackToFront(specs)

	var order []string
	for _, s := range specs {
		order = append(order, s.Color)
	}
	expected := []string{"b", "d", "c", "a"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("order = %v, expected %v", order, expected)
	}
}

func TestWallDrawSpecAtUnitScale(t *testing.T) {
	w := testWall()
	w.Distance = 9

	spec := w.DrawSpec(testPerspective, testPalette)
	if spec.Kind != KindWall {
		t.Fatalf("kind = %v, expected wall", spec.Kind)
	}
	if spec.Location != core.Pt(150, 100) || spec.Width != 200 || spec.Height != 200 {
		t.Errorf("rect = %v %vx%v, expected (150,100) 200x200", spec.Location, spec.Width, spec.Height)
	}
	// At unit scale the drawn hole is the collision hole
	if !reflect.DeepEqual(spec.Hole, w.AbsolutePoints()) {
		t.Errorf("hole = %v, expected %v", spec.Hole, w.AbsolutePoints())
	}
	if spec.Color != "blue" || spec.HoleColor != "black" {
		t.Errorf("colors = %s/%s", spec.Color, spec.HoleColor)
	}
}

func TestPlayerDrawSpec(t *testing.T) {
	o := PlayerObject{Shape: testObjectShape(), Color: "red", Distance: 9}

	spec := o.DrawSpec(testPerspective, testPalette)
	if spec.Kind != KindPolygon || spec.Color != "red" {
		t.Errorf("spec = %+v, expected red polygon", spec)
	}
	if !reflect.DeepEqual(spec.Polygon, o.AbsolutePoints()) {
		t.Errorf("polygon = %v, expected %v", spec.Polygon, o.AbsolutePoints())
	}
}

func TestPlayerDrawSpecScalesWithDistance(t *testing.T) {
	o := PlayerObject{Shape: testObjectShape(), Color: "red", Distance: 8}

	spec := o.DrawSpec(testPerspective, testPalette)
	want := testPerspective.ScaleObject(o, 8)
	if spec.Location != core.Pt(300, 320) {
		t.Errorf("location = %v, expected (300, 320)", spec.Location)
	}
	if !reflect.DeepEqual(spec.Polygon, want.Vertices()) {
		t.Errorf("polygon = %v, expected %v", spec.Polygon, want.Vertices())
	}
}

func TestRenderSceneOrder(t *testing.T) {
	tests := []struct {
		name      string
		wallDist  float64
		wallFirst bool
	}{
		// Collapsed wall sits at y=200, below the player at y=160
		{"distant wall drawn behind", 10, true},
		// At distance 9.5 the wall top is at y=150
		{"near wall drawn over", 9.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := testState(crashLocation, tc.wallDist, 9)
			c := &recordingCanvas{}
			RenderScene(c, s, testPerspective, testPalette)

			if len(c.calls) != 4 {
				t.Fatalf("got %d calls, expected 4: %v", len(c.calls), c.calls)
			}
			if c.calls[0] != "clear black" {
				t.Errorf("first call = %q, expected clear", c.calls[0])
			}

			wallAt := 1
			if !tc.wallFirst {
				wallAt = 2
			}
			if got := c.calls[wallAt]; got[:4] != "rect" {
				t.Errorf("call %d = %q, expected wall rect", wallAt, got)
			}
		})
	}
}
