package calculator

import (
	"strings"

	"github.com/vovakirdan/retro-desk/internal/core"
)

const (
	buttonW = 5
	cellW   = buttonW + 1
	bodyW   = keypadCols*cellW - 1
	boxW    = bodyW + 4
	boxH    = keypadRows*2 + 3
)

// Render draws the calculator centered, with the hint line on the last row.
func (c *Calculator) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < boxW || h < boxH+1 {
		dst.DrawTextCentered(h/2, "window too small")
		return
	}

	box := core.NewRect(0, 0, w, h-1).Centered(boxW, boxH)
	dst.DrawBoxColor(box, core.ColorGray)
	dst.DrawTextColor(box.X+2, box.Y, " Calculator ", core.ColorBrightCyan)

	x0 := box.X + 2
	dst.DrawTextColor(x0+bodyW-len([]rune(c.display)), box.Y+1, c.display, core.ColorBrightWhite)
	for x := box.X + 1; x < box.Right()-1; x++ {
		dst.SetColor(x, box.Y+2, '─', core.ColorGray)
	}

	for i, b := range keypad {
		color := core.ColorWhite
		switch {
		case i == c.cursor:
			color = core.ColorBrightYellow
		case c.waiting && b.label == c.operator:
			color = core.ColorCyan
		}
		x := x0 + b.col*cellW
		y := box.Y + 3 + b.row*2
		dst.DrawTextColor(x, y, keyCap(b.label, b.span*cellW-1), color)
	}

	dst.DrawTextCentered(h-1, "space: press  esc: back")
}

// keyCap draws label centered between brackets, width cells wide.
func keyCap(label string, width int) string {
	inner := width - 2
	n := len([]rune(label))
	left := max((inner-n)/2, 0)
	right := max(inner-n-left, 0)
	return "[" + strings.Repeat(" ", left) + label + strings.Repeat(" ", right) + "]"
}
