package holewall

import (
	"math"
	"slices"

	"github.com/vovakirdan/holewall/internal/core"
)

// Autopilot steers the player toward a placement that fits the current hole.
// It searches the lattice of locations reachable with whole movement steps
// and aims for the closest one whose vertices all pass the containment test.
type Autopilot struct {
	delta float64

	hole   []core.Point // hole the target was computed for
	target core.Point
	found  bool
}

// NewAutopilot creates an autopilot for the given movement step.
func NewAutopilot(delta float64) *Autopilot {
	return &Autopilot{delta: delta}
}

// Next returns the movement action to apply this tick, or ActionNone when
// the player is already placed (or no placement fits).
func (a *Autopilot) Next(s State) core.Action {
	if !s.Running() || a.delta <= 0 {
		return core.ActionNone
	}

	hole := s.Wall.AbsolutePoints()
	if !slices.Equal(hole, a.hole) {
		a.hole = hole
		a.target, a.found = a.search(s.Obj, hole)
	}
	if !a.found {
		return core.ActionNone
	}

	loc := s.Obj.Location
	switch {
	case a.target.X-loc.X >= a.delta/2:
		return core.ActionRight
	case loc.X-a.target.X >= a.delta/2:
		return core.ActionLeft
	case a.target.Y-loc.Y >= a.delta/2:
		return core.ActionDown
	case loc.Y-a.target.Y >= a.delta/2:
		return core.ActionUp
	}
	return core.ActionNone
}

// Target returns the chosen location and whether one was found.
func (a *Autopilot) Target() (core.Point, bool) {
	return a.target, a.found
}

// search scans lattice offsets whose location lands inside the hole's
// bounding box, keeping the fitting one with the fewest steps.
func (a *Autopilot) search(obj PlayerObject, hole []core.Point) (core.Point, bool) {
	lo, hi := core.Bounds(hole)
	loc := obj.Location

	i0 := int(math.Floor((lo.X - loc.X) / a.delta))
	i1 := int(math.Ceil((hi.X - loc.X) / a.delta))
	j0 := int(math.Floor((lo.Y - loc.Y) / a.delta))
	j1 := int(math.Ceil((hi.Y - loc.Y) / a.delta))

	best := core.Point{}
	bestSteps := -1
	for j := j0; j <= j1; j++ {
		for i := i0; i <= i1; i++ {
			steps := abs(i) + abs(j)
			if bestSteps >= 0 && steps >= bestSteps {
				continue
			}
			cand := obj
			cand.Location = core.Point{
				X: loc.X + float64(i)*a.delta,
				Y: loc.Y + float64(j)*a.delta,
			}
			if core.AllPointsInPolygon(cand.AbsolutePoints(), hole) {
				best = cand.Location
				bestSteps = steps
			}
		}
	}
	return best, bestSteps >= 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
