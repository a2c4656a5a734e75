package holewall

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/holewall/internal/config"
	"github.com/vovakirdan/holewall/internal/core"
)

func TestWallGeneratorDeterministic(t *testing.T) {
	cfg := config.DefaultHolewallConfig().Wall
	a := NewWallGenerator(42, cfg, maxDistance)
	b := NewWallGenerator(42, cfg, maxDistance)

	for i := 0; i < 20; i++ {
		wa, wb := a.Next(), b.Next()
		if !reflect.DeepEqual(wa, wb) {
			t.Fatalf("wall %d differs for the same seed: %+v vs %+v", i, wa, wb)
		}
	}
}

func TestWallGeneratorRanges(t *testing.T) {
	cfg := config.DefaultHolewallConfig().Wall
	gen := NewWallGenerator(3, cfg, maxDistance)

	for i := 0; i < 1000; i++ {
		w := gen.Next()

		hole := w.Hole.Location
		if hole.X < cfg.Hole.MinX || hole.X >= cfg.Hole.MaxX {
			t.Fatalf("hole x %v outside [%v, %v)", hole.X, cfg.Hole.MinX, cfg.Hole.MaxX)
		}
		if hole.Y < cfg.Hole.MinY || hole.Y >= cfg.Hole.MaxY {
			t.Fatalf("hole y %v outside [%v, %v)", hole.Y, cfg.Hole.MinY, cfg.Hole.MaxY)
		}
		if w.Location != core.Pt(150, 100) || w.Width != 200 || w.Height != 200 {
			t.Fatalf("wall geometry changed: %+v", w)
		}
		if w.Distance != maxDistance || !w.Moving {
			t.Fatalf("new wall should move from max distance, got %+v", w)
		}
	}
}

func TestWallGeneratorCopiesHolePoints(t *testing.T) {
	cfg := config.DefaultHolewallConfig().Wall
	gen := NewWallGenerator(1, cfg, maxDistance)

	w := gen.Next()
	w.Hole.Points[0] = core.Pt(-1, -1)

	if cfg.Hole.Points[0] == core.Pt(-1, -1) {
		t.Error("generated hole points alias the config slice")
	}
	if next := gen.Next(); next.Hole.Points[0] != core.Pt(0, 80) {
		t.Errorf("next hole point = %v, expected (0, 80)", next.Hole.Points[0])
	}
}
