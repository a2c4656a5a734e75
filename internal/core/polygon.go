package core

// Orientation classifies the turn made by an ordered point triple.
type Orientation int

const (
	Colinear Orientation = iota
	Clockwise
	CounterClockwise
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Colinear:
		return "Colinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "Unknown"
	}
}

// RayFarX is the x-coordinate the containment ray is cast toward.
// Polygons reaching past it are not classified correctly.
const RayFarX = 10000

// OrientationOf returns the orientation of the triple (p, q, r), taken from
// the sign of the cross product of q-p and r-q. Only an exactly zero product
// counts as colinear.
func OrientationOf(p, q, r Point) Orientation {
	val := r.Sub(q).Cross(q.Sub(p))
	if val == 0 {
		return Colinear
	}
	if val > 0 {
		return Clockwise
	}
	return CounterClockwise
}

// OnSegment reports whether q lies inside the bounding box of segment p-r.
// Callers establish colinearity first; this is only the box check.
func OnSegment(p, q, r Point) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// SegmentsIntersect reports whether segment p1-q1 touches segment p2-q2.
func SegmentsIntersect(p1, q1, p2, q2 Point) bool {
	o1 := OrientationOf(p1, q1, p2)
	o2 := OrientationOf(p1, q1, q2)
	o3 := OrientationOf(p2, q2, p1)
	o4 := OrientationOf(p2, q2, q1)

	// General case
	if o1 != o2 && o3 != o4 {
		return true
	}

	// p2 on p1-q1
	if o1 == Colinear && OnSegment(p1, p2, q1) {
		return true
	}
	// q2 on p1-q1
	if o2 == Colinear && OnSegment(p1, q2, q1) {
		return true
	}
	// p1 on p2-q2
	if o3 == Colinear && OnSegment(p2, p1, q2) {
		return true
	}
	// q1 on p2-q2
	if o4 == Colinear && OnSegment(p2, q1, q2) {
		return true
	}

	return false
}

// PointInPolygon reports whether point lies inside the closed polygon whose
// vertices are given in edge order. A horizontal ray from point toward
// RayFarX is tested against every edge; an odd crossing count means inside.
// A point colinear with a crossed edge short-circuits to whether it lies on
// that edge, so boundary points count as inside.
func PointInPolygon(point Point, polygon []Point) bool {
	if len(polygon) == 0 {
		return false
	}

	far := Point{X: RayFarX, Y: point.Y}
	intersections := 0
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%len(polygon)]

		if !SegmentsIntersect(a, b, point, far) {
			continue
		}
		if OrientationOf(a, point, b) == Colinear {
			return OnSegment(a, point, b)
		}
		intersections++
	}
	return intersections%2 == 1
}

// AllPointsInPolygon reports whether every candidate passes PointInPolygon.
// Only vertices are tested; edges of the candidate shape may still cross
// the polygon boundary.
func AllPointsInPolygon(candidates, polygon []Point) bool {
	for _, p := range candidates {
		if !PointInPolygon(p, polygon) {
			return false
		}
	}
	return true
}
