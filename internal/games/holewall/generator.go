package holewall

import (
	"math/rand"

	"github.com/vovakirdan/holewall/internal/config"
	"github.com/vovakirdan/holewall/internal/core"
)

// WallGenerator produces fresh walls with a randomly placed hole.
type WallGenerator struct {
	rng         *rand.Rand
	cfg         config.WallConfig
	maxDistance float64
}

// NewWallGenerator creates a generator seeded for deterministic placement.
func NewWallGenerator(seed int64, cfg config.WallConfig, maxDistance float64) *WallGenerator {
	return &WallGenerator{
		rng:         rand.New(rand.NewSource(seed)),
		cfg:         cfg,
		maxDistance: maxDistance,
	}
}

// Next returns a new wall at full distance, moving, with its hole location
// drawn uniformly from [min, max) on each axis.
func (g *WallGenerator) Next() Wall {
	h := g.cfg.Hole
	holeX := g.rng.Float64()*(h.MaxX-h.MinX) + h.MinX
	holeY := g.rng.Float64()*(h.MaxY-h.MinY) + h.MinY

	points := make([]core.Point, len(h.Points))
	copy(points, h.Points)

	return Wall{
		Location: core.Point{X: g.cfg.X, Y: g.cfg.Y},
		Width:    g.cfg.Width,
		Height:   g.cfg.Height,
		Hole: Shape{
			Location: core.Point{X: holeX, Y: holeY},
			Points:   points,
		},
		Distance: g.maxDistance,
		Moving:   true,
	}
}
