// Package config provides YAML-based game configuration loading and
// validation for the hole-in-the-wall game.
package config

import "github.com/vovakirdan/holewall/internal/core"

// HolewallConfig contains all tunables of the hole-in-the-wall game.
type HolewallConfig struct {
	Perspective PerspectiveConfig `yaml:"perspective"`
	Motion      MotionConfig      `yaml:"motion"`
	Wall        WallConfig        `yaml:"wall"`
	Player      PlayerConfig      `yaml:"player"`
	Timing      TimingConfig      `yaml:"timing"`
	Canvas      CanvasConfig      `yaml:"canvas"`
}

// PerspectiveConfig defines the distance range driving the scale transform.
type PerspectiveConfig struct {
	MaxDistance float64 `yaml:"max_distance"`
}

// MotionConfig defines per-tick approach and input step sizes.
type MotionConfig struct {
	Step      float64 `yaml:"step"`       // Distance removed per logic tick
	Epsilon   float64 `yaml:"epsilon"`    // Depth difference that counts as collision
	MoveDelta float64 `yaml:"move_delta"` // Player location change per key press
}

// WallConfig defines the generated wall and the range its hole is placed in.
type WallConfig struct {
	X      float64    `yaml:"x"`
	Y      float64    `yaml:"y"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  string     `yaml:"color"`
	Hole   HoleConfig `yaml:"hole"`
}

// HoleConfig defines the hole shape and its sampling rectangle, relative to
// the wall location. Locations are drawn from [min, max).
type HoleConfig struct {
	MinX   float64      `yaml:"min_x"`
	MaxX   float64      `yaml:"max_x"`
	MinY   float64      `yaml:"min_y"`
	MaxY   float64      `yaml:"max_y"`
	Color  string       `yaml:"color"`
	Points []core.Point `yaml:"points"`
}

// PlayerConfig defines the player object at session start.
type PlayerConfig struct {
	X        float64      `yaml:"x"`
	Y        float64      `yaml:"y"`
	Distance float64      `yaml:"distance"`
	Moving   bool         `yaml:"moving"`
	Color    string       `yaml:"color"`
	Points   []core.Point `yaml:"points"`
}

// TimingConfig defines the two independent timer periods.
type TimingConfig struct {
	TickMS  int `yaml:"tick_ms"`  // Logic tick period
	FrameMS int `yaml:"frame_ms"` // Render period
}

// CanvasConfig defines the world-space drawing surface.
type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"`
}

// TickRate returns logic ticks per second, at least 1.
func (t TimingConfig) TickRate() int {
	return max(1, 1000/max(1, t.TickMS))
}

// FrameRate returns redraws per second, at least 1.
func (t TimingConfig) FrameRate() int {
	return max(1, 1000/max(1, t.FrameMS))
}

// FramesPerTick returns how many frames elapse per logic tick, at least 1.
func (t TimingConfig) FramesPerTick() int {
	return max(1, t.TickMS/max(1, t.FrameMS))
}
