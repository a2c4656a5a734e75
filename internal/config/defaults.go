package config

import (
	_ "embed"

	"github.com/vovakirdan/holewall/internal/core"
)

//go:embed defaults/holewall.yaml
var defaultHolewallYAML []byte

// DefaultHolewallConfig returns the built-in configuration.
func DefaultHolewallConfig() HolewallConfig {
	return HolewallConfig{
		Perspective: PerspectiveConfig{
			MaxDistance: 10,
		},
		Motion: MotionConfig{
			Step:      0.01,
			Epsilon:   0.01,
			MoveDelta: 5,
		},
		Wall: WallConfig{
			X:      150,
			Y:      100,
			Width:  200,
			Height: 200,
			Color:  "blue",
			Hole: HoleConfig{
				MinX:   10,
				MaxX:   150,
				MinY:   10,
				MaxY:   120,
				Color:  "black",
				Points: []core.Point{{X: 0, Y: 80}, {X: 50, Y: 80}},
			},
		},
		Player: PlayerConfig{
			X:        70 + 80,
			Y:        60 + 100,
			Distance: 9,
			Moving:   false,
			Color:    "red",
			Points:   []core.Point{{X: 0, Y: 65}, {X: 40, Y: 65}},
		},
		Timing: TimingConfig{
			TickMS:  100,
			FrameMS: 20,
		},
		Canvas: CanvasConfig{
			Width:      500,
			Height:     500,
			Background: "black",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHolewallYAML
}
