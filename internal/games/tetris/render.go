package tetris

import (
	"fmt"

	"github.com/vovakirdan/retro-desk/internal/core"
)

const (
	cellChars  = 2 // terminal columns per playfield cell
	boardW     = Cols*cellChars + 2
	boardH     = Rows + 2
	sidebarGap = 2
	sidebarW   = 16
	previewW   = 4*cellChars + 2
	previewH   = 4 + 2

	minScreenW = boardW + sidebarGap + sidebarW
	minScreenH = boardH
)

var controls = []string{
	"←/→  move",
	"↑    rotate",
	"↓    soft drop",
	"spc  hard drop",
	"p    pause",
}

// Render draws the playfield, the preview and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Tetris needs %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.engine.Snapshot()
	originX := (dst.Width() - minScreenW) / 2
	originY := (dst.Height() - boardH) / 2

	g.renderBoard(dst, snap, originX, originY)
	g.renderSidebar(dst, snap, originX+boardW+sidebarGap, originY)
}

func (g *Game) renderBoard(dst *core.Screen, snap Snapshot, x0, y0 int) {
	dst.DrawBoxColor(core.NewRect(x0, y0, boardW, boardH), core.ColorGray)
	dst.DrawText(x0+2, y0, " TETRIS ")

	grid := snap.Composite()
	for r := range Rows {
		for c := range Cols {
			drawCell(dst, x0+1+c*cellChars, y0+1+r, grid[r][c])
		}
	}
}

func drawCell(dst *core.Screen, x, y int, v Cell) {
	if v == Empty {
		dst.SetColor(x, y, ' ', core.ColorDefault)
		dst.SetColor(x+1, y, '·', core.ColorGray)
		return
	}
	color := TermPalette[v]
	dst.SetColor(x, y, '█', color)
	dst.SetColor(x+1, y, '█', color)
}

func (g *Game) renderSidebar(dst *core.Screen, snap Snapshot, x0, y0 int) {
	dst.DrawText(x0, y0, "Next:")
	dst.DrawBoxColor(core.NewRect(x0, y0+1, previewW, previewH), core.ColorGray)
	if snap.Next != nil {
		for _, p := range snap.Next.CellsAt(0, 0) {
			drawCell(dst, x0+1+p.X*cellChars, y0+2+p.Y, snap.Next.Color)
		}
	}

	y := y0 + 1 + previewH + 1
	dst.DrawText(x0, y, "Score:")
	dst.DrawTextColor(x0, y+1, fmt.Sprintf("%d", snap.Score), core.ColorBrightWhite)
	dst.DrawText(x0, y+2, fmt.Sprintf("Lines: %d", snap.Lines))

	y += 4
	switch snap.Phase {
	case PhaseIdle:
		dst.DrawTextColor(x0, y, "Enter: Start", core.ColorBrightBlue)
	case PhasePlaying:
		dst.DrawTextColor(x0, y, "P: Pause", core.ColorYellow)
	case PhasePaused:
		dst.DrawTextColor(x0, y, "PAUSED", core.ColorYellow)
		dst.DrawText(x0, y+1, "P: Resume")
		dst.DrawText(x0, y+2, "Esc: Desktop")
	case PhaseGameOver:
		dst.DrawTextColor(x0, y, "Game Over", core.ColorBrightRed)
		dst.DrawTextColor(x0, y+1, "Enter: New Game", core.ColorGreen)
	}

	y += 4
	for i, line := range controls {
		dst.DrawTextColor(x0, y+i, line, core.ColorGray)
	}
}
