package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-desk/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w", keyRune('w'), core.ActionUp, false},
		{"up arrow", keyType(tea.KeyUp), core.ActionUp, false},
		{"s", keyRune('s'), core.ActionDown, false},
		{"down arrow", keyType(tea.KeyDown), core.ActionDown, false},
		{"a", keyRune('a'), core.ActionLeft, false},
		{"left arrow", keyType(tea.KeyLeft), core.ActionLeft, false},
		{"d", keyRune('d'), core.ActionRight, false},
		{"right arrow", keyType(tea.KeyRight), core.ActionRight, false},
		{"i", keyRune('i'), core.ActionUp2, false},
		{"k", keyRune('k'), core.ActionDown2, false},
		{"space", keyType(tea.KeySpace), core.ActionJump, false},
		{"enter", keyType(tea.KeyEnter), core.ActionConfirm, false},
		{"esc", keyType(tea.KeyEsc), core.ActionBack, false},
		{"b", keyRune('b'), core.ActionBack, false},
		{"p", keyRune('p'), core.ActionPause, false},
		{"r", keyRune('r'), core.ActionRestart, false},
		{"q", keyRune('q'), core.ActionQuit, true},
		{"ctrl+c", keyType(tea.KeyCtrlC), core.ActionQuit, true},
		{"unbound", keyRune('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	var frame core.InputFrame

	if km.MapKeyToFrame(keyRune('a'), &frame) {
		t.Error("a should not quit")
	}
	km.MapKeyToFrame(keyType(tea.KeySpace), &frame)
	km.MapKeyToFrame(keyRune('z'), &frame)

	if !frame.Has(core.ActionLeft) || !frame.Has(core.ActionJump) {
		t.Error("frame should hold Left and Jump")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound key should not be recorded")
	}
	if got := string(frame.Text); got != "az" {
		t.Errorf("Text = %q, want %q", got, "az")
	}
	if !km.MapKeyToFrame(keyRune('q'), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{keyType(tea.KeyUp), MenuActionUp},
		{keyRune('w'), MenuActionUp},
		{keyRune('k'), MenuActionUp},
		{keyType(tea.KeyDown), MenuActionDown},
		{keyRune('j'), MenuActionDown},
		{keyType(tea.KeyEnter), MenuActionSelect},
		{keyType(tea.KeySpace), MenuActionSelect},
		{keyRune('h'), MenuActionScores},
		{keyType(tea.KeyTab), MenuActionStart},
		{keyType(tea.KeyEsc), MenuActionBack},
		{keyRune('q'), MenuActionQuit},
		{keyType(tea.KeyCtrlC), MenuActionQuit},
		{keyRune('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
