package tui

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newTestGameModel(t *testing.T, game *fakeGame, store *storage.Store) GameModel {
	t.Helper()
	return NewGameModel(game, store, testConfig(), nil, "tester")
}

func send(m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func tick(m GameModel) (GameModel, tea.Cmd) {
	return send(m, TickMsg{Gen: m.gen})
}

func TestNewGameModelResetsGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestGameModel(t, game, nil)

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	if game.cfg.Seed != 42 || game.cfg.ScreenW != 80 || game.cfg.ScreenH != 24 {
		t.Errorf("game config = %+v", game.cfg)
	}
	if m.Init() == nil {
		t.Error("Init() should start the frame loop")
	}
}

func TestNewGameModelPicksSeed(t *testing.T) {
	game := &fakeGame{}
	cfg := testConfig()
	cfg.Seed = 0
	cfg.TickRate = 0
	NewGameModel(game, nil, cfg, nil, "tester")

	if game.cfg.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if game.cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", game.cfg.TickRate)
	}
}

func TestGameModelGenerationsDiffer(t *testing.T) {
	a := newTestGameModel(t, &fakeGame{}, nil)
	b := newTestGameModel(t, &fakeGame{}, nil)
	if a.gen == b.gen {
		t.Errorf("two game models share generation %d", a.gen)
	}
}

func TestGameModelDropsStaleTicks(t *testing.T) {
	game := &fakeGame{}
	m := newTestGameModel(t, game, nil)

	m, cmd := send(m, TickMsg{Gen: m.gen + 1})
	if game.steps != 0 {
		t.Errorf("stale tick stepped the game %d times", game.steps)
	}
	if cmd != nil {
		t.Error("stale tick should not schedule another frame")
	}

	_, cmd = tick(m)
	if game.steps != 1 {
		t.Errorf("steps = %d, want 1", game.steps)
	}
	if cmd == nil {
		t.Error("current tick should schedule the next frame")
	}
}

func TestGameModelDeliversInputOnce(t *testing.T) {
	game := &fakeGame{}
	m := newTestGameModel(t, game, nil)

	m, _ = send(m, keyRune('a'))
	m, _ = send(m, keyType(tea.KeySpace))
	if game.steps != 0 {
		t.Fatal("keys should not step the game")
	}

	m, _ = tick(m)
	if !game.last.Has(core.ActionLeft) || !game.last.Has(core.ActionJump) {
		t.Errorf("frame = %v, want Left and Jump", game.last.Actions)
	}

	tick(m)
	if !game.last.Empty() {
		t.Errorf("input should be cleared after a frame, got %v", game.last.Actions)
	}
}

func TestGameModelKeepsRepeatedKeys(t *testing.T) {
	game := &fakeGame{}
	m := newTestGameModel(t, game, nil)

	for _, msg := range []tea.KeyMsg{keyRune('a'), keyRune('a'), keyType(tea.KeySpace), keyRune('a')} {
		m, _ = send(m, msg)
	}
	tick(m)

	want := []core.Action{core.ActionLeft, core.ActionLeft, core.ActionJump, core.ActionLeft}
	if !slices.Equal(game.last.Presses, want) {
		t.Errorf("Presses = %v, want %v", game.last.Presses, want)
	}
	if got := string(game.last.Text); got != "aaa" {
		t.Errorf("Text = %q, want %q", got, "aaa")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestGameModel(t, &fakeGame{}, nil)

	m, cmd := send(m, keyRune('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if !isQuit(cmd) {
		t.Error("q should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		want  bool
	}{
		{"running", core.GameState{Score: 10}, false},
		{"paused", core.GameState{Paused: true}, true},
		{"game over", core.GameState{GameOver: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &fakeGame{}
			m := newTestGameModel(t, game, nil)
			game.state = tt.state
			m, _ = tick(m)

			m, cmd := send(m, keyType(tea.KeyEsc))
			if m.BackToMenu() != tt.want {
				t.Errorf("BackToMenu() = %v, want %v", m.BackToMenu(), tt.want)
			}
			if isQuit(cmd) {
				t.Error("Back inside the desktop should not quit")
			}
			if game.last.Has(core.ActionBack) {
				t.Error("Back should not reach the game")
			}
		})
	}
}

func TestGameModelBackQuitsStandalone(t *testing.T) {
	game := &fakeGame{}
	m := newTestGameModel(t, game, nil)
	m.standalone = true
	game.state.Paused = true
	m, _ = tick(m)

	_, cmd := send(m, keyRune('b'))
	if !isQuit(cmd) {
		t.Error("Back in a standalone game should quit")
	}
}

func TestGameModelStopsAfterBack(t *testing.T) {
	game := &fakeGame{}
	m := newTestGameModel(t, game, nil)
	game.state.GameOver = true
	m, _ = tick(m)
	m, _ = send(m, keyType(tea.KeyEsc))

	steps := game.steps
	_, cmd := tick(m)
	if game.steps != steps || cmd != nil {
		t.Error("a closed game should not step or reschedule")
	}
}

func TestGameModelRestartOnlyAfterGameOver(t *testing.T) {
	game := &fakeGame{}
	m := newTestGameModel(t, game, nil)

	m, _ = send(m, keyRune('r'))
	m, _ = tick(m)
	if game.resets != 1 {
		t.Errorf("Restart while running reset the game: resets = %d", game.resets)
	}

	game.state.GameOver = true
	m, _ = tick(m)
	m, _ = send(m, keyRune('r'))
	steps := game.steps
	m, _ = tick(m)

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if game.steps != steps+1 {
		t.Error("the restart frame should still be delivered")
	}
	if !game.last.Has(core.ActionRestart) {
		t.Error("the game should see the Restart action")
	}
	if game.cfg.Seed != 42 {
		t.Errorf("fixed seed changed on restart: %d", game.cfg.Seed)
	}
	if m.State().GameOver {
		t.Error("state should be running after restart")
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m := newTestGameModel(t, game, store)

	game.state = core.GameState{Score: 300}
	m, _ = tick(m)
	game.state.GameOver = true
	for range 5 {
		m, _ = tick(m)
	}

	scores, err := store.TopScores(testAppID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 300 || scores[0].Player != "tester" {
		t.Errorf("saved %+v", scores[0])
	}

	// A second game after a restart is recorded too.
	m, _ = send(m, keyRune('r'))
	m, _ = tick(m)
	game.state = core.GameState{Score: 100, GameOver: true}
	tick(m)

	scores, _ = store.TopScores(testAppID, 10)
	if len(scores) != 2 {
		t.Errorf("saved %d scores after restart, want 2", len(scores))
	}
}

func TestGameModelSavesScoreAfterInGameRestart(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m := newTestGameModel(t, game, store)

	game.state = core.GameState{Score: 300, GameOver: true}
	m, _ = tick(m)
	m, _ = tick(m)

	// Enter starts a new game inside Step, without a Reset.
	m, _ = send(m, keyType(tea.KeyEnter))
	game.state = core.GameState{}
	m, _ = tick(m)

	game.state = core.GameState{Score: 500, GameOver: true}
	m, _ = tick(m)
	tick(m)

	if game.resets != 1 {
		t.Fatalf("resets = %d, the game should not have been reset", game.resets)
	}
	scores, err := store.TopScores(testAppID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 300 {
		t.Errorf("saved %v, want 500 then 300", scores)
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m := newTestGameModel(t, game, store)
	game.state.GameOver = true
	tick(m)

	if high, _ := store.HighScore(testAppID); high != 0 {
		t.Errorf("zero score was saved: %d", high)
	}
}

func TestGameModelResizeResetsPlainGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestGameModel(t, game, nil)

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if game.cfg.ScreenW != 100 || game.cfg.ScreenH != 30 {
		t.Errorf("reset config = %+v", game.cfg)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelResizeKeepsResizer(t *testing.T) {
	game := &resizableGame{}
	m := NewGameModel(game, nil, testConfig(), nil, "tester")

	send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.resets != 1 {
		t.Errorf("Resizer game was reset: resets = %d", game.resets)
	}
	if game.w != 120 || game.h != 40 {
		t.Errorf("Resize(%d, %d), want (120, 40)", game.w, game.h)
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestGameModel(t, &fakeGame{}, nil)
	view := m.View()

	if !strings.Contains(view, "fake game") {
		t.Errorf("View() missing game output:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("View() has %d lines, want 24", lines)
	}
}
