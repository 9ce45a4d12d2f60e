package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/registry"
)

// Game adapts an Engine to the platform: it turns input frames into engine
// commands and platform frames into gravity ticks.
type Game struct {
	engine *Engine
	rng    *rand.Rand
	tick   uint64

	// gravity counts frames since the last drop; it only advances while the
	// engine is playing, which is how pausing suspends the gravity timer.
	gravity       int
	framesPerDrop int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a Tetris game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset creates a fresh, idle engine. Play begins on Confirm or Restart.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(NewFactory(g.rng))
	g.tick = 0
	g.gravity = 0
	g.framesPerDrop = FramesPerDrop(cfg.TickRate)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts to a new screen size without touching the game in progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// FramesPerDrop converts GravityInterval into platform frames at tickRate.
func FramesPerDrop(tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	frames := int(int64(GravityInterval) * int64(tickRate) / int64(time.Second))
	return max(frames, 1)
}

// Step handles one frame of input and, while playing, one frame of gravity.
// Key presses are applied in the order they arrived, one command each.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Presses {
		g.apply(a)
	}
	g.applyGravity()

	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionConfirm, core.ActionRestart:
		// A paused game is resumed with Pause, never restarted.
		if phase := g.engine.Phase(); phase == PhaseIdle || phase == PhaseGameOver {
			g.engine.Start()
			g.gravity = 0
		}
	case core.ActionPause:
		g.togglePause()
	case core.ActionLeft:
		g.engine.Move(-1, 0)
	case core.ActionRight:
		g.engine.Move(1, 0)
	case core.ActionUp:
		g.engine.Rotate()
	case core.ActionDown:
		g.engine.Move(0, 1)
	case core.ActionJump:
		g.engine.HardDrop()
	}
}

func (g *Game) togglePause() {
	switch g.engine.Phase() {
	case PhasePlaying:
		g.engine.Pause()
	case PhasePaused:
		g.engine.Resume()
		g.gravity = 0
	}
}

func (g *Game) applyGravity() {
	if !g.engine.Playing() {
		return
	}
	g.gravity++
	if g.gravity >= g.framesPerDrop {
		g.gravity = 0
		g.engine.Tick()
	}
}

// Engine exposes the underlying engine, mainly for tests and replays.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Snapshot returns the engine snapshot for the current frame.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// State returns the platform summary. Idle and paused both report Paused so
// the player can leave for the desktop.
func (g *Game) State() core.GameState {
	phase := g.engine.Phase()
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: phase == PhaseGameOver,
		Paused:   phase == PhaseIdle || phase == PhasePaused || g.tooSmall,
	}
}
