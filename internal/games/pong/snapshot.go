package pong

import "math"

// Snapshot is a copy of the match state in field units.
type Snapshot struct {
	Tick           uint64
	BallX, BallY   float64
	BallDX, BallDY float64
	LeftY, RightY  float64
	ScoreL, ScoreR int
	Paused         bool
	Winner         Side
}

// Speed returns the ball's current speed in field units per frame.
func (s Snapshot) Speed() float64 {
	return math.Hypot(s.BallDX, s.BallDY)
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		BallX:  g.ballX,
		BallY:  g.ballY,
		BallDX: g.ballDX,
		BallDY: g.ballDY,
		LeftY:  g.left.y,
		RightY: g.right.y,
		ScoreL: g.scoreL,
		ScoreR: g.scoreR,
		Paused: g.paused,
		Winner: g.winner,
	}
}
