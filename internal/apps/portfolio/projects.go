package portfolio

import (
	"fmt"

	"github.com/vovakirdan/retro-desk/internal/config"
	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/registry"
)

const (
	projectsMinW = 40
	projectsMinH = 10
)

// Projects is a folder window listing the profile's repositories, with the
// highlighted one described in a side pane.
type Projects struct {
	repos []config.Repo
	sel   list
	w, h  int
}

// NewProjects creates the folder window. Reset loads the current profile.
func NewProjects() *Projects {
	return &Projects{}
}

func init() {
	registry.Register("projects", func() registry.Game {
		return NewProjects()
	})
}

// ID returns the app identifier.
func (p *Projects) ID() string { return "projects" }

// Title returns the window caption.
func (p *Projects) Title() string { return "Projects" }

// Reset reloads the repositories and selects the first one.
func (p *Projects) Reset(cfg core.RuntimeConfig) {
	p.repos = CurrentProfile().Repos
	p.sel = list{n: len(p.repos)}
	p.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the window size.
func (p *Projects) Resize(w, h int) {
	p.w, p.h = w, h
}

// Step moves the selection.
func (p *Projects) Step(in core.InputFrame) core.StepResult {
	p.sel.steer(in)
	return core.StepResult{State: p.State()}
}

// Scoreless keeps the app off the scoreboard.
func (*Projects) Scoreless() {}

// State reports a stopped app so the window can be closed at any time.
func (p *Projects) State() core.GameState {
	return core.GameState{Paused: true}
}

// Status is the object count shown at the bottom of the folder.
func (p *Projects) Status() string {
	return fmt.Sprintf("%d object(s)", len(p.repos))
}

// Render draws the folder listing and the details pane.
func (p *Projects) Render(dst *core.Screen) {
	dst.Clear()
	if tooSmall(dst, projectsMinW, projectsMinH) {
		return
	}

	r := drawWindow(dst, "Projects", "↑/↓ select  esc desktop")
	status := r.Bottom() - 1
	dst.DrawTextColor(r.X, status, p.Status(), core.ColorGray)

	if len(p.repos) == 0 {
		dst.DrawTextCentered(r.Y+(r.H-1)/2, "This folder is empty.")
		return
	}

	listW := r.W * 2 / 5
	divider := r.X + listW + 1
	dst.DrawVLine(divider, r.Y, status-r.Y, '│', core.ColorGray)

	rows := status - r.Y
	first := p.sel.scroll(rows)
	for i := first; i < min(first+rows, len(p.repos)); i++ {
		label, color := "▸ "+p.repos[i].Name, core.ColorWhite
		if i == p.sel.cursor {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(r.X, r.Y+i-first, fit(label, listW), color)
	}

	p.drawDetails(dst, core.NewRect(divider+2, r.Y, r.Right()-divider-2, rows))
}

func (p *Projects) drawDetails(dst *core.Screen, area core.Rect) {
	repo := p.repos[p.sel.cursor]
	y := area.Y

	line := func(text string, c core.Color) {
		if y < area.Bottom() {
			dst.DrawTextColor(area.X, y, fit(text, area.W), c)
		}
		y++
	}

	line(repo.Name, core.ColorBrightWhite)
	line(fmt.Sprintf("%s · ★%d · ⑂%d", repo.Language, repo.Stars, repo.Forks), core.ColorGray)
	y++
	for _, l := range wrap(repo.Description, area.W) {
		line(l, core.ColorDefault)
	}
	y++
	for _, l := range wrap(repo.URL, area.W) {
		line(l, core.ColorCyan)
	}
}
