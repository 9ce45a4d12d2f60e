package core

import "slices"

// Action represents a semantic command, abstracted from physical key presses.
// Games react to actions; the platform decides which keys produce them.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - rotate (Tetris), left paddle up (Pong)
	ActionDown           // S, Down arrow - soft drop (Tetris), left paddle down (Pong)
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionUp2            // I - right paddle up (Pong)
	ActionDown2          // K - right paddle down (Pong)
	ActionJump           // Space - hard drop (Tetris), serve/pause (Pong)
	ActionConfirm        // Enter - start a new game
	ActionBack           // B, Escape - back to the desktop
	ActionRestart        // R - restart
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/resume
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp2:     "Up2",
	ActionDown2:   "Down2",
	ActionJump:    "Jump",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame holds the input received during one simulation tick. Actions
// answers "was this pressed at all"; Presses keeps every press in arrival
// order, repeats included, for games that run one command per key event.
// Text holds typed characters for apps that read free input.
type InputFrame struct {
	Actions map[Action]bool
	Presses []Action
	Text    []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set records a press of a.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Presses = append(f.Presses, a)
}

// Type records typed characters.
func (f *InputFrame) Type(r ...rune) {
	f.Text = append(f.Text, r...)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Count returns how many times a was pressed this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, p := range f.Presses {
		if p == a {
			n++
		}
	}
	return n
}

// Empty reports whether nothing was pressed or typed.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Text) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Presses = nil
	f.Text = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Presses = slices.Clone(f.Presses)
	clone.Text = slices.Clone(f.Text)
	return clone
}
