package holewall

import (
	"math"

	"github.com/vovakirdan/holewall/internal/config"
	"github.com/vovakirdan/holewall/internal/core"
)

// Outcome reports what a single logic tick did.
type Outcome int

const (
	OutcomeIdle     Outcome = iota // Session already stopped, nothing changed
	OutcomeApproach                // Depths decayed, no collision yet
	OutcomePassed                  // Object fit the hole, wall was replaced
	OutcomeCrashed                 // Object hit the wall, session stopped
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeApproach:
		return "approach"
	case OutcomePassed:
		return "passed"
	case OutcomeCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Rules holds the per-tick constants of the simulation.
type Rules struct {
	Perspective Perspective
	Step        float64 // Distance removed from moving entities per tick
	Epsilon     float64 // Depth difference below which a collision is checked
	MoveDelta   float64 // Player location change per movement action
}

// RulesFromConfig extracts the simulation constants from a configuration.
func RulesFromConfig(cfg config.HolewallConfig) Rules {
	return Rules{
		Perspective: Perspective{MaxDistance: cfg.Perspective.MaxDistance},
		Step:        cfg.Motion.Step,
		Epsilon:     cfg.Motion.Epsilon,
		MoveDelta:   cfg.Motion.MoveDelta,
	}
}

// Tick advances the state by one logic step. Moving entities approach by
// Step (never below zero). When wall and object depths differ by less than
// Epsilon, the object's vertices are tested against the hole: a fit replaces
// the wall with regenerate(), anything else stops the session for good.
func Tick(s *State, r Rules, regenerate func() Wall) Outcome {
	if !s.Running() {
		return OutcomeIdle
	}

	if s.Wall.Moving {
		s.Wall.Distance = max(0, s.Wall.Distance-r.Step)
	}
	if s.Obj.Moving {
		s.Obj.Distance = max(0, s.Obj.Distance-r.Step)
	}

	if math.Abs(s.Wall.Distance-s.Obj.Distance) >= r.Epsilon {
		return OutcomeApproach
	}

	if core.AllPointsInPolygon(s.Obj.AbsolutePoints(), s.Wall.AbsolutePoints()) {
		s.Wall = regenerate()
		return OutcomePassed
	}

	s.Status = StatusStopped
	return OutcomeCrashed
}

// Move translates the player by delta in the direction of a movement action.
// It returns false, leaving the state untouched, when the session is stopped
// or the action does not move anything.
func Move(s *State, a core.Action, delta float64) bool {
	if !s.Running() {
		return false
	}
	d := a.Delta()
	if d == (core.Point{}) {
		return false
	}
	s.Obj.Location = s.Obj.Location.Add(d.Scale(delta))
	return true
}

// World owns the game record together with the rules and the generator that
// refills it with walls.
type World struct {
	State State
	rules Rules
	gen   *WallGenerator
}

// NewWorld builds a running session with a fresh wall and the configured
// player object.
func NewWorld(cfg config.HolewallConfig, seed int64) *World {
	rules := RulesFromConfig(cfg)
	gen := NewWallGenerator(seed, cfg.Wall, cfg.Perspective.MaxDistance)

	points := make([]core.Point, len(cfg.Player.Points))
	copy(points, cfg.Player.Points)

	w := &World{rules: rules, gen: gen}
	w.State = State{
		Status: StatusRunning,
		Wall:   gen.Next(),
		Obj: PlayerObject{
			Shape: Shape{
				Location: core.Point{X: cfg.Player.X, Y: cfg.Player.Y},
				Points:   points,
			},
			Color:    cfg.Player.Color,
			Distance: cfg.Player.Distance,
			Moving:   cfg.Player.Moving,
		},
	}
	return w
}

// Rules returns the simulation constants in use.
func (w *World) Rules() Rules {
	return w.rules
}

// Tick advances the world by one logic step.
func (w *World) Tick() Outcome {
	return Tick(&w.State, w.rules, w.gen.Next)
}

// Move applies a movement action to the player immediately.
func (w *World) Move(a core.Action) bool {
	return Move(&w.State, a, w.rules.MoveDelta)
}
