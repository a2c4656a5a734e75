package gui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/holewall/internal/config"
	"github.com/vovakirdan/holewall/internal/core"
	"github.com/vovakirdan/holewall/internal/games/holewall"
)

// Key repeat, in updates, for held movement keys.
const (
	repeatDelay    = 15
	repeatInterval = 4
)

var keyActions = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, core.ActionDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
}

// repeating reports whether a key held for d updates fires this update.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// Window drives a game at the frame rate and steps its logic every
// FramesPerTick updates.
type Window struct {
	game          *holewall.Game
	logger        *log.Logger
	canvas        *imageCanvas
	width         int
	height        int
	framesPerTick int
	frames        int
	reported      bool
}

// NewWindow creates a window sized to the configured canvas.
func NewWindow(game *holewall.Game, cfg config.HolewallConfig, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := int(cfg.Canvas.Width), int(cfg.Canvas.Height)
	return &Window{
		game:          game,
		logger:        logger,
		canvas:        newImageCanvas(w, h),
		width:         w,
		height:        h,
		framesPerTick: cfg.Timing.FramesPerTick(),
	}
}

// tickDue advances the frame counter and reports whether a logic tick runs.
func (w *Window) tickDue() bool {
	w.frames++
	return w.frames%w.framesPerTick == 0
}

// Update applies input immediately and steps the game on tick frames.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.logger.Info("quit", "score", w.game.State().Score)
		return ebiten.Termination
	}

	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if repeating(inpututil.KeyPressDuration(k)) {
				w.game.HandleAction(ka.action)
				break
			}
		}
	}

	if w.tickDue() {
		state := w.game.Step(core.NewInputFrame()).State
		if state.GameOver && !w.reported {
			w.reported = true
			w.logger.Info("game over", "score", state.Score)
		}
	}
	return nil
}

// Draw renders the scene and the HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.target(screen)
	w.game.Draw(w.canvas)

	ebitenutil.DebugPrintAt(screen, w.game.HUD(), 4, 4)
	if w.game.State().GameOver {
		msg := fmt.Sprintf("GAME OVER  walls passed: %d  press Q to quit", w.game.State().Score)
		ebitenutil.DebugPrintAt(screen, msg, 4, w.height/2)
	}
}

// Layout keeps the logical screen at canvas size regardless of the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed.
func Run(game *holewall.Game, cfg config.HolewallConfig, seed int64, logger *log.Logger) error {
	rc := core.DefaultConfig()
	rc.Seed = seed
	rc.TickRate = cfg.Timing.TickRate()
	rc.FrameRate = cfg.Timing.FrameRate()
	game.Reset(rc)

	w := NewWindow(game, cfg, logger)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(rc.FrameRate)

	w.logger.Info("window opened", "seed", seed, "tps", rc.FrameRate, "frames_per_tick", w.framesPerTick)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
