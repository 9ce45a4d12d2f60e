// Package pong implements two-player Pong on a fixed 600x400 field. Physics
// run in field units; the renderer scales the field to whatever terminal it
// gets.
package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/registry"
)

// Field geometry and rules.
const (
	FieldW = 600.0
	FieldH = 400.0

	PaddleW      = 10.0
	PaddleH      = 70.0
	PaddleMargin = 8.0
	PaddleSpeed  = 5.0

	BallR            = 6.0
	InitialBallSpeed = 4.0
	MaxBallSpeed     = 10.0
	SpeedUp          = 0.3
	WinningScore     = 7
)

// holdFrames is how long one key press keeps a paddle moving. Terminals
// report presses but not releases, so a held key arrives as a stream of
// repeats that refresh the hold.
const holdFrames = 8

// Side names a player.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns the player label shown on screen.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Player 1"
	case SideRight:
		return "Player 2"
	default:
		return ""
	}
}

type paddle struct {
	y    float64
	dir  float64 // -1 up, +1 down, 0 still
	hold int
}

func (p *paddle) press(dir float64) {
	p.dir = dir
	p.hold = holdFrames
}

func (p *paddle) update() {
	if p.hold <= 0 {
		return
	}
	p.hold--
	p.y = core.ClampF(p.y+p.dir*PaddleSpeed, 0, FieldH-PaddleH)
}

// Game is a local two-player Pong match: the left paddle on Up/Down, the
// right paddle on Up2/Down2.
type Game struct {
	ballX, ballY   float64
	ballDX, ballDY float64

	left, right    paddle
	scoreL, scoreR int
	paused         bool
	winner         Side

	rng     *rand.Rand
	tick    uint64
	screenW int
	screenH int
}

// New creates a Pong game. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pong"
}

// Reset starts a fresh match, paused until the first serve.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.newMatch()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func (g *Game) newMatch() {
	g.left = paddle{y: FieldH/2 - PaddleH/2}
	g.right = paddle{y: FieldH/2 - PaddleH/2}
	g.scoreL, g.scoreR = 0, 0
	g.winner = SideNone
	g.paused = true
	g.serve()
}

// serve puts the ball at the center heading in a random diagonal.
func (g *Game) serve() {
	g.ballX = FieldW / 2
	g.ballY = FieldH / 2
	g.ballDX = InitialBallSpeed * g.randomSign()
	g.ballDY = InitialBallSpeed * 0.6 * g.randomSign()
}

func (g *Game) randomSign() float64 {
	if g.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Resize records the screen size; the field itself never changes.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step applies one frame of input and physics.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionJump) || in.Has(core.ActionPause) {
		g.toggle()
	}

	g.readPaddles(in)
	g.left.update()
	g.right.update()

	if !g.paused && g.winner == SideNone {
		g.moveBall()
	}

	return core.StepResult{State: g.State()}
}

// toggle is the space bar: after a win it starts a new, running match;
// otherwise it pauses or unpauses.
func (g *Game) toggle() {
	if g.winner != SideNone {
		g.newMatch()
		g.paused = false
		return
	}
	g.paused = !g.paused
}

func (g *Game) readPaddles(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.left.press(-1)
	case in.Has(core.ActionDown):
		g.left.press(1)
	}
	switch {
	case in.Has(core.ActionUp2):
		g.right.press(-1)
	case in.Has(core.ActionDown2):
		g.right.press(1)
	}
}

func (g *Game) moveBall() {
	g.ballX += g.ballDX
	g.ballY += g.ballDY

	if g.ballY-BallR <= 0 || g.ballY+BallR >= FieldH {
		g.ballDY = -g.ballDY
		g.ballY = core.ClampF(g.ballY, BallR, FieldH-BallR)
	}

	leftFace := PaddleMargin + PaddleW
	if g.ballX-BallR <= leftFace && g.ballDX < 0 && g.onPaddle(g.left) {
		g.deflect(g.left, 1)
		g.ballX = leftFace + BallR
	}

	rightFace := FieldW - PaddleMargin - PaddleW
	if g.ballX+BallR >= rightFace && g.ballDX > 0 && g.onPaddle(g.right) {
		g.deflect(g.right, -1)
		g.ballX = rightFace - BallR
	}

	switch {
	case g.ballX-BallR <= 0:
		g.point(SideRight)
	case g.ballX+BallR >= FieldW:
		g.point(SideLeft)
	}
}

func (g *Game) onPaddle(p paddle) bool {
	return g.ballY >= p.y && g.ballY <= p.y+PaddleH
}

// deflect sends the ball back toward dir, faster and angled by where it hit
// the paddle: the edges give steep returns, the middle a flat one.
func (g *Game) deflect(p paddle, dir float64) {
	hitPos := (g.ballY-p.y)/PaddleH - 0.5
	speed := math.Min(math.Hypot(g.ballDX, g.ballDY)+SpeedUp, MaxBallSpeed)

	dx := dir * math.Abs(g.ballDX)
	dy := hitPos * speed * 1.5
	mag := math.Hypot(dx, dy)
	g.ballDX = dx / mag * speed
	g.ballDY = dy / mag * speed
}

func (g *Game) point(side Side) {
	score := &g.scoreL
	if side == SideRight {
		score = &g.scoreR
	}
	*score++

	if *score >= WinningScore {
		g.winner = side
		return
	}
	g.serve()
}

// State reports the left player's score; the match is over once either side
// reaches WinningScore.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scoreL,
		GameOver: g.winner != SideNone,
		Paused:   g.paused,
	}
}
