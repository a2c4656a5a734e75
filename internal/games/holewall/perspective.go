package holewall

import "github.com/vovakirdan/holewall/internal/core"

// Perspective maps a depth to a linear scale factor n = MaxDistance - distance,
// so apparent size grows as distance falls toward zero.
type Perspective struct {
	MaxDistance float64
}

// Factor returns the scale factor for a distance.
func (p Perspective) Factor(distance float64) float64 {
	return p.MaxDistance - distance
}

// ScalePolygon multiplies the location and every relative point by the
// scale factor. The input is left untouched.
func (p Perspective) ScalePolygon(s Shape, distance float64) Shape {
	n := p.Factor(distance)
	points := make([]core.Point, len(s.Points))
	for i, pt := range s.Points {
		points[i] = pt.Scale(n)
	}
	return Shape{
		Location: s.Location.Scale(n),
		Points:   points,
	}
}

// ScaleObject scales the player's shape, keeping its other fields.
func (p Perspective) ScaleObject(o PlayerObject, distance float64) PlayerObject {
	o.Shape = p.ScalePolygon(o.Shape, distance)
	return o
}

// ScaleWall grows the wall about its original center: the location moves
// up-left by (n-1)/2 of the size, the size is multiplied by n and the hole
// is scaled with the same distance.
func (p Perspective) ScaleWall(w Wall, distance float64) Wall {
	n := p.Factor(distance)
	w.Location = core.Point{
		X: w.Location.X - ((n-1)/2)*w.Width,
		Y: w.Location.Y - ((n-1)/2)*w.Height,
	}
	w.Width = n * w.Width
	w.Height = n * w.Height
	w.Hole = p.ScalePolygon(w.Hole, distance)
	return w
}
