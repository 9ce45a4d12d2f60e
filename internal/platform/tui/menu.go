package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-desk/internal/desktop"
)

// MenuModel is the desktop: a column of shortcuts, a start menu behind the
// Start button, and the taskbar. Choosing an app is reported to the session;
// choosing a link shows its address in the status line.
type MenuModel struct {
	desk      *desktop.Desktop
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger

	startOpen bool
	cursor    int
	width     int
	height    int
	status    string
	now       time.Time

	quitting   bool
	selected   *desktop.Entry
	openScores bool
}

// NewMenuModel creates the desktop for desk.
func NewMenuModel(desk *desktop.Desktop, width, height int, logger *log.Logger) MenuModel {
	h := help.New()
	h.Width = width
	return MenuModel{
		desk:      desk,
		keyMapper: NewKeyMapper(),
		help:      h,
		logger:    discardLogger(logger),
		width:     width,
		height:    height,
		now:       time.Now(),
	}
}

// Init starts the taskbar clock.
func (m MenuModel) Init() tea.Cmd {
	return clockCmd()
}

// items returns the list the cursor is moving through.
func (m MenuModel) items() []desktop.Entry {
	if m.startOpen {
		return m.desk.StartMenu
	}
	return m.desk.Shortcuts
}

// Update handles navigation, resizes and clock ticks.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case ClockMsg:
		m.now = time.Time(msg)
		return m, clockCmd()
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.items()

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(items)-1 {
			m.cursor++
		}

	case MenuActionStart:
		m.startOpen = !m.startOpen
		m.cursor = 0

	case MenuActionBack:
		if m.startOpen {
			m.startOpen = false
			m.cursor = 0
		}

	case MenuActionScores:
		m.openScores = true

	case MenuActionSelect:
		if len(items) == 0 {
			return m, nil
		}
		entry := items[m.cursor]
		m.startOpen = false
		m.cursor = 0
		if entry.Kind == desktop.KindLink {
			m.status = desktop.OpenMessage(entry)
			m.logger.Info("open link", "title", entry.Title, "url", entry.Target)
			return m, nil
		}
		m.status = ""
		m.selected = &entry
	}
	return m, nil
}

// View renders the desktop.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := "Desktop"
	if m.desk.Owner != "" {
		title = fmt.Sprintf("%s's Desktop", m.desk.Owner)
	}
	b.WriteString(titleStyle.Width(max(m.width, 1)).Render(title))
	b.WriteString("\n\n")

	icons := m.renderEntries(m.desk.Shortcuts, !m.startOpen)
	if m.startOpen {
		start := panelStyle.Render("Start\n" + m.renderEntries(m.desk.StartMenu, true))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, icons, "   ", start))
	} else {
		b.WriteString(icons)
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	body := b.String()
	footer := dimStyle.Render(m.help.View(m.keyMapper.menu)) + "\n" +
		renderTaskbar(m.width, m.startOpen, "", m.now)

	// Pin the help line and taskbar to the bottom of the terminal.
	pad := m.height - lipgloss.Height(body) - lipgloss.Height(footer)
	if pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + footer
}

func (m MenuModel) renderEntries(entries []desktop.Entry, active bool) string {
	var b strings.Builder
	for i, e := range entries {
		icon := "▶"
		if e.Kind == desktop.KindLink {
			icon = "↗"
		}
		line := fmt.Sprintf(" %s %s ", icon, e.Title)
		switch {
		case active && i == m.cursor:
			line = selectedStyle.Render(line)
		case !active:
			line = dimStyle.Render(line)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	return b.String()
}

// Selected returns the app the user opened, or nil.
func (m MenuModel) Selected() *desktop.Entry {
	return m.selected
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScores
}

// Status returns the status line, set when a link was opened.
func (m MenuModel) Status() string {
	return m.status
}

// settle clears the one-shot requests after the session acted on them.
func (m MenuModel) settle() MenuModel {
	m.selected = nil
	m.openScores = false
	return m
}
