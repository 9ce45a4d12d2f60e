// Package portfolio holds the desktop's read-only windows: the owner's
// GitHub card and the Projects folder. Both draw the static profile from
// desktop.yaml; nothing is fetched from the network.
package portfolio

import (
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/retro-desk/internal/config"
	"github.com/vovakirdan/retro-desk/internal/core"
)

var (
	profileMu sync.RWMutex
	profile   = config.Default().Profile
)

// SetProfile replaces the profile shown by windows opened after the call.
func SetProfile(p config.Profile) {
	p.Repos = slices.Clone(p.Repos)

	profileMu.Lock()
	defer profileMu.Unlock()
	profile = p
}

// CurrentProfile returns a copy of the profile in use.
func CurrentProfile() config.Profile {
	profileMu.RLock()
	defer profileMu.RUnlock()

	p := profile
	p.Repos = slices.Clone(profile.Repos)
	return p
}

// list is a cursor over n rows of which only a window is visible.
type list struct {
	n      int
	cursor int
	top    int
}

func (l *list) move(delta int) {
	if l.n == 0 {
		return
	}
	l.cursor = core.Clamp(l.cursor+delta, 0, l.n-1)
}

// scroll keeps the cursor inside a window of size rows and returns the
// first visible row.
func (l *list) scroll(size int) int {
	size = max(size, 1)
	if l.cursor < l.top {
		l.top = l.cursor
	}
	if l.cursor >= l.top+size {
		l.top = l.cursor - size + 1
	}
	l.top = core.Clamp(l.top, 0, max(l.n-size, 0))
	return l.top
}

// steer applies Up and Down presses in order.
func (l *list) steer(in core.InputFrame) {
	for _, a := range in.Presses {
		switch a {
		case core.ActionUp:
			l.move(-1)
		case core.ActionDown:
			l.move(1)
		}
	}
}

// fit shortens s to width cells, marking the cut with an ellipsis.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// wrap breaks s into lines of at most width cells.
func wrap(s string, width int) []string {
	if s == "" || width <= 0 {
		return nil
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// drawWindow draws the frame every portfolio window shares and returns the
// area inside the border.
func drawWindow(dst *core.Screen, title, hint string) core.Rect {
	w, h := dst.Width(), dst.Height()
	dst.DrawBoxColor(core.NewRect(0, 0, w, h), core.ColorGray)
	dst.DrawTextColor(2, 0, fit(" "+title+" ", w-4), core.ColorBrightCyan)
	if hint != "" {
		dst.DrawTextColor(2, h-1, fit(" "+hint+" ", w-4), core.ColorGray)
	}
	return core.NewRect(2, 1, w-4, h-2)
}

// tooSmall reports and draws the fallback for windows under minW x minH.
func tooSmall(dst *core.Screen, minW, minH int) bool {
	if dst.Width() >= minW && dst.Height() >= minH {
		return false
	}
	dst.DrawTextCentered(dst.Height()/2, fit("window too small", dst.Width()))
	return true
}
