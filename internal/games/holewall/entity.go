// Package holewall implements a hole-in-the-wall game.
// A wall with a polygonal hole approaches the viewer; the player moves a small
// polygon so that it passes through the hole when both reach the same depth.
package holewall

import "github.com/vovakirdan/holewall/internal/core"

// Status is the running/stopped flag of a session. Stopped is terminal.
type Status int

const (
	StatusStopped Status = 0
	StatusRunning Status = 1
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "stopped"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Shape is a polygon given as a location plus vertex offsets from it.
// Point order defines the edges; the location itself is the first vertex.
type Shape struct {
	Location core.Point
	Points   []core.Point
}

// Vertices returns the absolute polygon: the location, then every point
// translated by the location.
func (s Shape) Vertices() []core.Point {
	out := make([]core.Point, 0, len(s.Points)+1)
	out = append(out, s.Location)
	return append(out, core.Translate(s.Points, s.Location)...)
}

// Wall is a rectangular barrier with a polygonal cutout. The hole location
// is relative to the wall location, and hole points are relative to the
// hole location.
type Wall struct {
	Location core.Point
	Width    float64
	Height   float64
	Hole     Shape
	Distance float64
	Moving   bool
}

// AbsolutePoints returns the hole polygon in canvas coordinates, composing
// wall location, hole location and hole points in that order.
func (w Wall) AbsolutePoints() []core.Point {
	holeOrigin := w.Hole.Location.Add(w.Location)
	out := make([]core.Point, 0, len(w.Hole.Points)+1)
	out = append(out, holeOrigin)
	for _, p := range w.Hole.Points {
		out = append(out, p.Add(w.Hole.Location).Add(w.Location))
	}
	return out
}

// PlayerObject is the polygon the player steers.
type PlayerObject struct {
	Shape
	Color    string
	Distance float64
	Moving   bool
}

// AbsolutePoints returns the player polygon in canvas coordinates.
func (o PlayerObject) AbsolutePoints() []core.Point {
	return o.Vertices()
}

// State is the whole mutable game record.
type State struct {
	Status Status
	Wall   Wall
	Obj    PlayerObject
}

// Running reports whether ticks and input still have an effect.
func (s *State) Running() bool {
	return s.Status == StatusRunning
}
