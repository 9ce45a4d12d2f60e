package tui

import (
	"io"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/registry"
	"github.com/vovakirdan/retro-desk/internal/storage"
)

var generations atomic.Uint64

// nextGen returns a tick generation no other game model has used.
func nextGen() uint64 {
	return generations.Add(1)
}

// discardLogger is used when the caller does not care about logs.
func discardLogger(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}

// GameModel runs one game window: it owns the frame loop, feeds keys to the
// game as input frames and records the score when the game ends.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	logger    *log.Logger
	player    string
	keyMapper *KeyMapper

	gen        uint64
	fixedSeed  bool
	input      core.InputFrame
	state      core.GameState
	standalone bool // Back quits the program instead of returning to the desktop
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel resets game for cfg and wraps it in a model. A zero seed is
// replaced by the clock, and each restart then draws a fresh one.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) GameModel {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		logger:    discardLogger(logger).With("app", game.ID()),
		player:    player,
		keyMapper: NewKeyMapper(),
		gen:       nextGen(),
		fixedSeed: fixed,
		state:     game.State(),
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.logger.Info("game opened", "player", m.player, "seed", m.config.Seed)
	return tickCmd(m.gen, m.config.TickRate)
}

// Update handles keys, resizes and frame ticks.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height), nil
	case TickMsg:
		if msg.Gen != m.gen {
			m.logger.Debug("dropping stale tick", "gen", msg.Gen, "current", m.gen)
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back only leaves a game that is not running.
	if action == core.ActionBack {
		if m.state.GameOver || m.state.Paused {
			m.backToMenu = true
			m.logger.Info("game closed", "score", m.state.Score)
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.input.Set(action)
	}
	if msg.Type == tea.KeyRunes {
		m.input.Type(msg.Runes...)
	}
	return m, nil
}

func (m GameModel) handleResize(w, h int) GameModel {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
		return m
	}
	m.logger.Debug("resize restarts game", "width", w, "height", h)
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.scoreSaved = false
	return m
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Restart resets the game and still delivers the frame, so a game that
	// starts on Restart begins immediately.
	if m.input.Has(core.ActionRestart) && m.state.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.scoreSaved = false
		m.logger.Info("restart", "seed", m.config.Seed)
	}

	wasOver := m.state.GameOver
	result := m.game.Step(m.input)
	m.state = result.State

	switch {
	case m.state.GameOver && !wasOver:
		m.logger.Info("game over", "score", m.state.Score)
	case wasOver && !m.state.GameOver:
		// The game started over on its own (Enter in Tetris, space in Pong).
		m.scoreSaved = false
		m.logger.Info("new game")
	}
	if m.state.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	m.input.Clear()
	return m, tickCmd(m.gen, m.config.TickRate)
}

// saveScore records a finished game once. Zero scores are not recorded.
func (m *GameModel) saveScore() {
	m.scoreSaved = true
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.player, m.state.Score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game's state as of the last frame.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the user asked to quit the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user closed the game window.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the user quits or closes it.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) error {
	model := NewGameModel(game, store, cfg, logger, player)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
