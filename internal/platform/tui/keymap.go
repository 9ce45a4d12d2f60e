package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-desk/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions. The layout
// is fixed: Tetris and the left Pong paddle share WASD and the arrows, the
// right Pong paddle uses i/k.
type KeyMapper struct {
	menu menuKeys
}

// NewKeyMapper creates a key mapper with the desktop layout.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{menu: newMenuKeys()}
}

// MapKey translates a key to an action and reports whether it asks to quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "i":
		return core.ActionUp2, false
	case "k":
		return core.ActionDown2, false
	case " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the key's action and any typed characters to frame and
// reports whether the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	if msg.Type == tea.KeyRunes {
		frame.Type(msg.Runes...)
	}
	return isQuit
}

// MenuAction is a navigation step in the desktop menu or scoreboard.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScores
	MenuActionStart
	MenuActionQuit
)

// menuKeys are the desktop bindings, shared with the help line.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Start  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newMenuKeys() menuKeys {
	return menuKeys{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Scores: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "scores"),
		),
		Start: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "start menu"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Start, k.Scores, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Start, k.Scores, k.Back, k.Quit},
	}
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	keys := km.menu
	switch {
	case key.Matches(msg, keys.Quit):
		return MenuActionQuit
	case key.Matches(msg, keys.Up):
		return MenuActionUp
	case key.Matches(msg, keys.Down):
		return MenuActionDown
	case key.Matches(msg, keys.Select):
		return MenuActionSelect
	case key.Matches(msg, keys.Scores):
		return MenuActionScores
	case key.Matches(msg, keys.Start):
		return MenuActionStart
	case key.Matches(msg, keys.Back):
		return MenuActionBack
	}
	return MenuActionNone
}
