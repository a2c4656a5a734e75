package holewall

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/holewall/internal/config"
	"github.com/vovakirdan/holewall/internal/core"
)

// Game adapts a World to the platform contract: it counts passed walls,
// logs session events and draws the HUD on top of the scene.
type Game struct {
	cfg     config.HolewallConfig
	world   *World
	logger  *log.Logger
	palette Palette
	score   int
	ticks   int
}

// Option configures a Game.
type Option func(*Game)

// WithConfig overrides the built-in configuration.
func WithConfig(cfg config.HolewallConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a hole-in-the-wall game. Reset must be called before Step.
func New(opts ...Option) *Game {
	g := &Game{cfg: config.DefaultHolewallConfig()}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.palette = Palette{
		Background: g.cfg.Canvas.Background,
		Wall:       g.cfg.Wall.Color,
		Hole:       g.cfg.Wall.Hole.Color,
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "holewall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hole in the Wall"
}

// Reset starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.world = NewWorld(g.cfg, cfg.Seed)
	g.score = 0
	g.ticks = 0
	g.logger.Debug("wall generated", "seed", cfg.Seed, "hole", g.world.State.Wall.Hole.Location)
}

// Step applies any queued movement and advances one logic tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			g.world.Move(a)
		}
	}

	switch g.world.Tick() {
	case OutcomeIdle:
		return core.StepResult{State: g.State()}
	case OutcomePassed:
		g.score++
		g.logger.Info("wall passed", "score", g.score, "tick", g.ticks)
		g.logger.Debug("wall generated", "hole", g.world.State.Wall.Hole.Location)
	case OutcomeCrashed:
		s := g.world.State
		g.logger.Info("crashed into wall", "score", g.score, "tick", g.ticks,
			"depth", s.Obj.Distance, "player", s.Obj.Location)
	}
	g.ticks++

	return core.StepResult{State: g.State()}
}

// HandleAction applies movement as soon as it arrives.
func (g *Game) HandleAction(a core.Action) {
	if !g.world.Move(a) {
		g.logger.Debug("input ignored", "action", a, "status", g.world.State.Status)
	}
}

// Snapshot returns a copy of the current game record.
func (g *Game) Snapshot() State {
	return g.world.State
}

// Rules returns the simulation constants of the running session.
func (g *Game) Rules() Rules {
	return g.world.Rules()
}

// Ticks returns the number of logic ticks that changed the state.
func (g *Game) Ticks() int {
	return g.ticks
}

// Draw paints the scene onto any canvas.
func (g *Game) Draw(c Canvas) {
	RenderScene(c, g.world.State, g.world.rules.Perspective, g.palette)
}

// HUD returns the status line shown above the scene.
func (g *Game) HUD() string {
	s := g.world.State
	return fmt.Sprintf(" Score: %d  Wall: %.2f  You: %.2f ", g.score, s.Wall.Distance, s.Obj.Distance)
}

// Render draws the scene, the HUD and, once stopped, the game over banner.
func (g *Game) Render(dst *core.Screen) {
	g.Draw(NewScreenCanvas(dst, g.cfg.Canvas.Width, g.cfg.Canvas.Height))

	dst.DrawTextColored(1, 0, g.HUD(), core.ColorWhite)

	if !g.world.State.Running() {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Walls passed: %d  |  Press Q to quit", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: !g.world.State.Running(),
	}
}

var (
	_ core.Game           = (*Game)(nil)
	_ core.ImmediateInput = (*Game)(nil)
)
