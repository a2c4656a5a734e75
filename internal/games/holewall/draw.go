package holewall

import (
	"cmp"
	"slices"

	"github.com/vovakirdan/holewall/internal/core"
)

// Canvas is a 2D drawing surface in world coordinates. Colors are CSS
// color names.
type Canvas interface {
	Clear(color string)
	FillRect(x, y, w, h float64, color string)
	FillPolygon(vertices []core.Point, color string)
}

// Palette holds the colors that are not carried by entities themselves.
type Palette struct {
	Background string
	Wall       string
	Hole       string
}

// DrawKind selects how a DrawSpec is painted.
type DrawKind int

const (
	KindPolygon DrawKind = iota
	KindWall
)

// DrawSpec is a scaled, ready-to-paint description of one entity.
// Location is the post-scale location used for back-to-front ordering.
type DrawSpec struct {
	Kind     DrawKind
	Location core.Point
	Color    string

	// KindPolygon
	Polygon []core.Point

	// KindWall
	Width     float64
	Height    float64
	Hole      []core.Point
	HoleColor string
}

// Draw paints the spec onto c.
func (s DrawSpec) Draw(c Canvas) {
	switch s.Kind {
	case KindWall:
		c.FillRect(s.Location.X, s.Location.Y, s.Width, s.Height, s.Color)
		c.FillPolygon(s.Hole, s.HoleColor)
	default:
		c.FillPolygon(s.Polygon, s.Color)
	}
}

// Drawable is anything that takes part in collision and rendering.
type Drawable interface {
	AbsolutePoints() []core.Point
	DrawSpec(p Perspective, pal Palette) DrawSpec
}

var (
	_ Drawable = Wall{}
	_ Drawable = PlayerObject{}
)

// DrawSpec scales the wall to its own distance.
func (w Wall) DrawSpec(p Perspective, pal Palette) DrawSpec {
	scaled := p.ScaleWall(w, w.Distance)
	hole := Shape{
		Location: scaled.Location.Add(scaled.Hole.Location),
		Points:   scaled.Hole.Points,
	}
	return DrawSpec{
		Kind:      KindWall,
		Location:  scaled.Location,
		Color:     pal.Wall,
		Width:     scaled.Width,
		Height:    scaled.Height,
		Hole:      hole.Vertices(),
		HoleColor: pal.Hole,
	}
}

// DrawSpec scales the player to its own distance. The palette is unused:
// the player carries its own color.
func (o PlayerObject) DrawSpec(p Perspective, _ Palette) DrawSpec {
	scaled := p.ScaleObject(o, o.Distance)
	return DrawSpec{
		Kind:     KindPolygon,
		Location: scaled.Location,
		Color:    scaled.Color,
		Polygon:  scaled.Vertices(),
	}
}

// OrderBackToFront sorts specs by post-scale location.y, largest first.
// Ties keep their input order.
func OrderBackToFront(specs []DrawSpec) {
	slices.SortStableFunc(specs, func(a, b DrawSpec) int {
		return cmp.Compare(b.Location.Y, a.Location.Y)
	})
}

// RenderScene clears c and paints every entity back to front.
func RenderScene(c Canvas, s State, p Perspective, pal Palette) {
	c.Clear(pal.Background)

	entities := []Drawable{s.Wall, s.Obj}
	specs := make([]DrawSpec, 0, len(entities))
	for _, e := range entities {
		specs = append(specs, e.DrawSpec(p, pal))
	}
	OrderBackToFront(specs)
	for _, spec := range specs {
		spec.Draw(c)
	}
}
