package core

// Game is the contract between a game and the platform that runs it.
// Games contain pure logic with no external dependencies (especially no
// Bubble Tea); the platform handles input mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one logic tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}

// ImmediateInput is implemented by games that apply input as soon as it
// arrives instead of on the next Step.
type ImmediateInput interface {
	HandleAction(a Action)
}
