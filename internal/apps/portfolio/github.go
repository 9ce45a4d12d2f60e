package portfolio

import (
	"fmt"

	"github.com/vovakirdan/retro-desk/internal/config"
	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/registry"
)

const (
	githubMinW = 30
	githubMinH = 16
)

// GitHub is the profile viewer: the owner's card above a selectable list of
// top repositories. The footer shows the selected repository's URL.
type GitHub struct {
	profile config.Profile
	repos   list
	w, h    int
}

// NewGitHub creates the viewer. Reset loads the current profile.
func NewGitHub() *GitHub {
	return &GitHub{}
}

func init() {
	registry.Register("github", func() registry.Game {
		return NewGitHub()
	})
}

// ID returns the app identifier.
func (g *GitHub) ID() string { return "github" }

// Title returns the window caption.
func (g *GitHub) Title() string { return "GitHub" }

// Reset reloads the profile and selects the first repository.
func (g *GitHub) Reset(cfg core.RuntimeConfig) {
	g.profile = CurrentProfile()
	g.repos = list{n: len(g.profile.Repos)}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the window size.
func (g *GitHub) Resize(w, h int) {
	g.w, g.h = w, h
}

// Step moves the selection.
func (g *GitHub) Step(in core.InputFrame) core.StepResult {
	g.repos.steer(in)
	return core.StepResult{State: g.State()}
}

// Scoreless keeps the app off the scoreboard.
func (*GitHub) Scoreless() {}

// State reports a stopped app so the window can be closed at any time.
func (g *GitHub) State() core.GameState {
	return core.GameState{Paused: true}
}

// Selected returns the highlighted repository, or false if there are none.
func (g *GitHub) Selected() (config.Repo, bool) {
	if g.repos.n == 0 {
		return config.Repo{}, false
	}
	return g.profile.Repos[g.repos.cursor], true
}

// Render draws the card and the repository list.
func (g *GitHub) Render(dst *core.Screen) {
	dst.Clear()
	if tooSmall(dst, githubMinW, githubMinH) {
		return
	}

	r := drawWindow(dst, "GitHub", "↑/↓ select  esc desktop")
	p := g.profile
	y := r.Y

	dst.DrawTextColor(r.X, y, fit(p.Name, r.W), core.ColorBrightWhite)
	if p.Login != "" {
		dst.DrawTextColor(r.X, y+1, fit("@"+p.Login, r.W), core.ColorGray)
	}
	dst.DrawText(r.X, y+2, fit(p.Bio, r.W))
	dst.DrawText(r.X, y+3, fit("Company:  "+p.Company, r.W))
	dst.DrawText(r.X, y+4, fit("Location: "+p.Location, r.W))
	stats := fmt.Sprintf("%d repos · %d followers · %d following", p.PublicRepos, p.Followers, p.Following)
	dst.DrawTextColor(r.X, y+5, fit(stats, r.W), core.ColorCyan)

	dst.DrawTextColor(r.X, y+7, "Top Repositories", core.ColorYellow)
	listTop := y + 8
	footer := r.Bottom() - 1

	if g.repos.n == 0 {
		dst.DrawTextColor(r.X, listTop, "No public repositories.", core.ColorGray)
		dst.DrawTextColor(r.X, footer, fit(p.URL, r.W), core.ColorCyan)
		return
	}

	// Two rows per repository: name and stats, then the description.
	rows := (footer - listTop) / 2
	first := g.repos.scroll(rows)
	for i := first; i < min(first+rows, g.repos.n); i++ {
		repo := p.Repos[i]
		ry := listTop + (i-first)*2

		marker, color := "  ", core.ColorWhite
		if i == g.repos.cursor {
			marker, color = "> ", core.ColorBrightYellow
		}
		meta := fmt.Sprintf("  %s ★%d ⑂%d", repo.Language, repo.Stars, repo.Forks)
		name := fit(marker+repo.Name, r.W-len([]rune(meta)))
		dst.DrawTextColor(r.X, ry, name, color)
		dst.DrawTextColor(r.X+len([]rune(name)), ry, meta, core.ColorGray)
		dst.DrawText(r.X+2, ry+1, fit(repo.Description, r.W-2))
	}

	if repo, ok := g.Selected(); ok {
		dst.DrawTextColor(r.X, footer, fit(repo.URL, r.W), core.ColorCyan)
	}
}
