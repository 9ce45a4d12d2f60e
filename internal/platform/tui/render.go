package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-desk/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          fg("1"),
	core.ColorGreen:        fg("2"),
	core.ColorYellow:       fg("3"),
	core.ColorCyan:         fg("6"),
	core.ColorWhite:        fg("7"),
	core.ColorBrightRed:    fg("9"),
	core.ColorBrightGreen:  fg("10"),
	core.ColorBrightYellow: fg("11"),
	core.ColorBrightBlue:   fg("12"),
	core.ColorBrightCyan:   fg("14"),
	core.ColorBrightWhite:  fg("15"),
	core.ColorOrange:       fg("208"),
	core.ColorGray:         fg("245"),
	core.ColorPurple:       fg("129"),
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// RenderScreen converts a Screen buffer to a styled string. Adjacent cells of
// the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Desktop palette, loosely after a 90s window manager.
var (
	taskbarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("250"))

	startButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("250")).
		Padding(0, 1)

	startButtonOpenStyle = startButtonStyle.Reverse(true)

	windowTabStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("18")).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("18")).
		Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// renderTaskbar draws the one-line bar at the bottom of the desktop: the
// start button, the running app (if any) and a clock.
func renderTaskbar(width int, startOpen bool, active string, now time.Time) string {
	start := startButtonStyle.Render("Start")
	if startOpen {
		start = startButtonOpenStyle.Render("Start")
	}

	left := start
	if active != "" {
		left += " " + windowTabStyle.Render(active)
	}

	clock := taskbarStyle.Render(" " + now.Format("15:04") + " ")
	gap := width - lipgloss.Width(left) - lipgloss.Width(clock)
	if gap < 1 {
		return taskbarStyle.Render(left)
	}
	return left + taskbarStyle.Render(strings.Repeat(" ", gap)) + clock
}
