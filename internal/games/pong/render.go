package pong

import (
	"fmt"

	"github.com/vovakirdan/retro-desk/internal/core"
)

const (
	paddleChar = '█'
	ballChar   = '●'
	netChar    = '┆'
)

// Render draws the field scaled to dst. Row 0 holds the score bar.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 4 || h < 4 {
		return
	}
	sx := float64(w) / FieldW
	sy := float64(h-1) / FieldH

	for y := 1; y < h; y += 2 {
		dst.SetColor(w/2, y, netChar, core.ColorGray)
	}

	leftX := int(PaddleMargin * sx)
	rightX := core.Clamp(int((FieldW-PaddleMargin-PaddleW)*sx), 0, w-1)
	drawPaddle(dst, leftX, g.left.y, sy)
	drawPaddle(dst, rightX, g.right.y, sy)

	bx := core.Clamp(int(g.ballX*sx), 0, w-1)
	by := core.Clamp(1+int(g.ballY*sy), 1, h-1)
	dst.SetColor(bx, by, ballChar, core.ColorBrightWhite)

	dst.DrawTextColor(1, 0, SideLeft.String(), core.ColorGray)
	dst.DrawTextColor(w-len(SideRight.String())-1, 0, SideRight.String(), core.ColorGray)
	dst.DrawTextCentered(0, fmt.Sprintf("%d   %d", g.scoreL, g.scoreR))

	switch {
	case g.winner != SideNone:
		dst.DrawMessageBox(g.winner.String()+" wins!", "press space to restart")
	case g.paused:
		dst.DrawTextCentered(h*3/4, "press space to start")
	}
}

func drawPaddle(dst *core.Screen, x int, y, sy float64) {
	top := 1 + int(y*sy)
	bottom := 1 + int((y+PaddleH)*sy)
	dst.DrawVLine(x, top, max(bottom-top, 1), paddleChar, core.ColorWhite)
}
