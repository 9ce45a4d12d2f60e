// Package tui runs the desktop and its games on Bubble Tea: the start menu,
// the fixed-rate frame loop, key mapping, colored rendering and the SSH
// front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one game frame. Gen identifies the game instance that
// scheduled it; ticks from a closed or restarted game carry an old Gen and
// are dropped, so a torn-down game never receives another frame.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd schedules the next frame for generation gen at tickRate frames per
// second.
func tickCmd(gen uint64, tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// ClockMsg refreshes the taskbar clock once a second.
type ClockMsg time.Time

func clockCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}
