package holewall

import (
	"testing"

	"github.com/vovakirdan/holewall/internal/config"
	"github.com/vovakirdan/holewall/internal/core"
)

func TestAutopilotFindsFittingTarget(t *testing.T) {
	s := testState(crashLocation, 10, 9)
	ap := NewAutopilot(5)

	if a := ap.Next(s); a == core.ActionNone {
		t.Fatal("autopilot should start moving toward the hole")
	}

	target, ok := ap.Target()
	if !ok {
		t.Fatal("no target found for a reachable hole")
	}
	cand := s.Obj
	cand.Location = target
	if !core.AllPointsInPolygon(cand.AbsolutePoints(), s.Wall.AbsolutePoints()) {
		t.Errorf("target %v does not fit the hole", target)
	}

	// Target stays on the movement lattice
	off := target.Sub(crashLocation)
	if off.X != float64(int(off.X/5))*5 || off.Y != float64(int(off.Y/5))*5 {
		t.Errorf("target offset %v is not a multiple of the step", off)
	}
}

func TestAutopilotIdleWhenPlaced(t *testing.T) {
	s := testState(fittingLocation, 10, 9)
	ap := NewAutopilot(5)

	if a := ap.Next(s); a != core.ActionNone {
		t.Errorf("Next() = %v for a player already in place, expected none", a)
	}
}

func TestAutopilotIdleWhenStopped(t *testing.T) {
	s := testState(crashLocation, 10, 9)
	s.Status = StatusStopped

	if a := NewAutopilot(5).Next(s); a != core.ActionNone {
		t.Errorf("Next() = %v when stopped, expected none", a)
	}
}

func TestAutopilotSurvivesManyWalls(t *testing.T) {
	w := NewWorld(config.DefaultHolewallConfig(), 11)
	ap := NewAutopilot(w.Rules().MoveDelta)

	passed := 0
	for i := 0; i < 2000; i++ {
		w.Move(ap.Next(w.State))
		switch w.Tick() {
		case OutcomePassed:
			passed++
		case OutcomeCrashed:
			t.Fatalf("crashed at tick %d after %d walls, player %v hole %v",
				i, passed, w.State.Obj.Location, w.State.Wall.AbsolutePoints())
		}
	}

	if passed < 15 {
		t.Errorf("passed %d walls in 2000 ticks, expected about 20", passed)
	}
}
