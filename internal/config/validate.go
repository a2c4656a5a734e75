package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks every field and returns all violations joined together.
func (c HolewallConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Perspective.MaxDistance <= 0 {
		fail("perspective.max_distance must be positive, got %v", c.Perspective.MaxDistance)
	}
	if c.Motion.Step <= 0 {
		fail("motion.step must be positive, got %v", c.Motion.Step)
	}
	if c.Motion.Epsilon <= 0 {
		fail("motion.epsilon must be positive, got %v", c.Motion.Epsilon)
	}
	if c.Motion.MoveDelta <= 0 {
		fail("motion.move_delta must be positive, got %v", c.Motion.MoveDelta)
	}

	if c.Wall.Width <= 0 || c.Wall.Height <= 0 {
		fail("wall size must be positive, got %vx%v", c.Wall.Width, c.Wall.Height)
	}
	if c.Wall.Hole.MinX >= c.Wall.Hole.MaxX {
		fail("wall.hole.min_x (%v) must be below max_x (%v)", c.Wall.Hole.MinX, c.Wall.Hole.MaxX)
	}
	if c.Wall.Hole.MinY >= c.Wall.Hole.MaxY {
		fail("wall.hole.min_y (%v) must be below max_y (%v)", c.Wall.Hole.MinY, c.Wall.Hole.MaxY)
	}
	if len(c.Wall.Hole.Points) == 0 {
		fail("wall.hole.points must not be empty")
	}

	if len(c.Player.Points) == 0 {
		fail("player.points must not be empty")
	}
	if c.Player.Distance < 0 || c.Player.Distance > c.Perspective.MaxDistance {
		fail("player.distance must be within [0, %v], got %v", c.Perspective.MaxDistance, c.Player.Distance)
	}

	if c.Timing.TickMS <= 0 || c.Timing.FrameMS <= 0 {
		fail("timing periods must be positive, got tick_ms=%d frame_ms=%d", c.Timing.TickMS, c.Timing.FrameMS)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		fail("canvas size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height)
	}

	colors := []struct{ field, name string }{
		{"wall.color", c.Wall.Color},
		{"wall.hole.color", c.Wall.Hole.Color},
		{"player.color", c.Player.Color},
		{"canvas.background", c.Canvas.Background},
	}
	for _, col := range colors {
		if !KnownColor(col.name) {
			fail("%s: unknown color %q", col.field, col.name)
		}
	}

	return errors.Join(errs...)
}

// KnownColor reports whether name is a CSS/SVG color name.
func KnownColor(name string) bool {
	_, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
