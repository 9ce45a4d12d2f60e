package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/registry"
)

const testAppID = "testapp"

// lastFake is the most recent game created through the registry.
var lastFake *fakeGame

func init() {
	registry.Register(testAppID, func() registry.Game {
		lastFake = &fakeGame{}
		return lastFake
	})
}

type fakeGame struct {
	resets int
	steps  int
	last   core.InputFrame
	cfg    core.RuntimeConfig
	state  core.GameState
}

func (f *fakeGame) ID() string    { return testAppID }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) {
	f.resets++
	f.cfg = cfg
	f.state = core.GameState{}
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.steps++
	f.last = in.Clone()
	return core.StepResult{State: f.state}
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (f *fakeGame) State() core.GameState { return f.state }

// resizableGame follows resizes instead of restarting.
type resizableGame struct {
	fakeGame
	w, h int
}

func (r *resizableGame) Resize(w, h int) {
	r.w, r.h = w, h
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
