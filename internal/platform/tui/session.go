package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/desktop"
	"github.com/vovakirdan/retro-desk/internal/registry"
	"github.com/vovakirdan/retro-desk/internal/storage"
)

type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeScores
)

// SessionModel is the whole desktop session: the menu, at most one open game
// window and the scoreboard. It is the top-level model for both the local
// terminal and SSH sessions.
type SessionModel struct {
	desk   *desktop.Desktop
	store  *storage.Store
	config core.RuntimeConfig
	logger *log.Logger
	player string
	limit  int

	mode     sessionMode
	menu     MenuModel
	game     *GameModel
	gameName string
	scores   ScoreboardModel
	now      time.Time
	quitting bool
}

// NewSessionModel creates a session. cfg carries the terminal size, frame
// rate and seed used for every game opened from the desktop.
func NewSessionModel(desk *desktop.Desktop, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, player string) SessionModel {
	logger = discardLogger(logger)
	return SessionModel{
		desk:   desk,
		store:  store,
		config: cfg,
		logger: logger,
		player: player,
		limit:  storage.DefaultLimit,
		menu:   NewMenuModel(desk, cfg.ScreenW, cfg.ScreenH, logger),
		now:    time.Now(),
	}
}

// WithScoreboardSize sets how many scores the scoreboard lists per game.
func (m SessionModel) WithScoreboardSize(n int) SessionModel {
	if n > 0 {
		m.limit = n
	}
	return m
}

// Init starts the taskbar clock.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to whichever window has focus.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ClockMsg:
		// The menu owns the clock and keeps it running in every mode.
		m.now = time.Time(msg)
		next, cmd := m.menu.Update(msg)
		m.menu = next.(MenuModel)
		return m, cmd

	case TickMsg:
		if m.mode != modeGame {
			return m, nil
		}
		return m.updateGame(msg)
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	next, _ := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.mode {
	case modeGame:
		resized, _ := m.game.Update(m.gameSize())
		g := resized.(GameModel)
		m.game = &g
	case modeScores:
		next, _ := m.scores.Update(msg)
		m.scores = next.(ScoreboardModel)
	}
	return m, nil
}

// gameSize is the terminal minus the taskbar row.
func (m SessionModel) gameSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.config.ScreenW, Height: max(m.config.ScreenH-1, 1)}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.menu = m.menu.settle()
		m.scores = NewScoreboardModel(m.store, m.limit, m.config.ScreenW, m.config.ScreenH, m.logger)
		m.mode = modeScores
		return m, cmd
	}

	if selected := m.menu.Selected(); selected != nil {
		m.menu = m.menu.settle()
		return m.openGame(selected.Target)
	}
	return m, cmd
}

func (m SessionModel) openGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("could not open app", "app", id, "error", err)
		return m, nil
	}

	cfg := m.config
	size := m.gameSize()
	cfg.ScreenW, cfg.ScreenH = size.Width, size.Height

	g := NewGameModel(game, m.store, cfg, m.logger, m.player)
	m.game = &g
	m.gameName = registry.Title(id)
	m.mode = modeGame
	return m, g.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	g := next.(GameModel)
	m.game = &g

	if g.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if g.BackToMenu() {
		m.game = nil
		m.gameName = ""
		m.mode = modeMenu
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.mode = modeMenu
		return m, nil
	}
	return m, cmd
}

// View renders the focused window.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeGame:
		return m.game.View() + "\n" + renderTaskbar(m.config.ScreenW, false, m.gameName, m.now)
	case modeScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// InGame reports whether a game window is open.
func (m SessionModel) InGame() bool {
	return m.mode == modeGame
}

// RunDesktop runs the desktop in the local terminal.
func RunDesktop(desk *desktop.Desktop, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger, scoreboardSize int) error {
	model := NewSessionModel(desk, store, cfg, logger, "local").WithScoreboardSize(scoreboardSize)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
