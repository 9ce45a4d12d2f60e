// Package calculator is the desktop's pocket calculator. It takes digits,
// a decimal point and sign changes like any other, but every operation it
// finishes has the same answer: 42.
package calculator

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/retro-desk/internal/core"
	"github.com/vovakirdan/retro-desk/internal/registry"
)

// Answer is the result of every completed operation.
const Answer = "42"

// MaxDigits bounds how many characters typing can put on the display.
const MaxDigits = 12

// Key labels.
const (
	KeyClear   = "C"
	KeySign    = "+/-"
	KeyPercent = "%"
	KeyDivide  = "÷"
	KeyTimes   = "×"
	KeyMinus   = "-"
	KeyPlus    = "+"
	KeyDot     = "."
	KeyEquals  = "="
)

type button struct {
	label    string
	row, col int
	span     int
}

const (
	keypadRows = 5
	keypadCols = 4
)

var keypad = []button{
	{KeyClear, 0, 0, 1}, {KeySign, 0, 1, 1}, {KeyPercent, 0, 2, 1}, {KeyDivide, 0, 3, 1},
	{"7", 1, 0, 1}, {"8", 1, 1, 1}, {"9", 1, 2, 1}, {KeyTimes, 1, 3, 1},
	{"4", 2, 0, 1}, {"5", 2, 1, 1}, {"6", 2, 2, 1}, {KeyMinus, 2, 3, 1},
	{"1", 3, 0, 1}, {"2", 3, 1, 1}, {"3", 3, 2, 1}, {KeyPlus, 3, 3, 1},
	{"0", 4, 0, 2}, {KeyDot, 4, 2, 1}, {KeyEquals, 4, 3, 1},
}

// buttonAt returns the index of the button covering (row, col).
func buttonAt(row, col int) int {
	for i, b := range keypad {
		if b.row == row && col >= b.col && col < b.col+b.span {
			return i
		}
	}
	return 0
}

// typed maps keyboard characters to key labels.
var typed = map[rune]string{
	'.': KeyDot, ',': KeyDot,
	'+': KeyPlus, '-': KeyMinus,
	'*': KeyTimes, 'x': KeyTimes, '/': KeyDivide,
	'=': KeyEquals, '%': KeyPercent,
	'c': KeyClear, 'C': KeyClear, 'n': KeySign,
}

// Calculator holds the display and the pending operation.
type Calculator struct {
	display  string
	prev     string // left operand; empty when none is pending
	operator string
	waiting  bool // the next digit starts a new number
	cursor   int  // highlighted keypad button

	w, h int
}

// New creates a calculator showing 0.
func New() *Calculator {
	c := &Calculator{}
	c.Reset(core.DefaultConfig())
	return c
}

func init() {
	registry.Register("calculator", func() registry.Game {
		return New()
	})
}

// ID returns the app identifier.
func (c *Calculator) ID() string { return "calculator" }

// Title returns the window caption.
func (c *Calculator) Title() string { return "Calculator" }

// Reset clears the calculator and highlights the equals key.
func (c *Calculator) Reset(cfg core.RuntimeConfig) {
	c.clear()
	c.cursor = buttonAt(keypadRows-1, keypadCols-1)
	c.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the window size.
func (c *Calculator) Resize(w, h int) {
	c.w, c.h = w, h
}

// Scoreless keeps the app off the scoreboard.
func (*Calculator) Scoreless() {}

// State reports a stopped app so the window can be closed at any time.
func (c *Calculator) State() core.GameState {
	return core.GameState{Paused: true}
}

// Display returns the number on screen.
func (c *Calculator) Display() string { return c.display }

// Operator returns the pending operator, or "" if none.
func (c *Calculator) Operator() string { return c.operator }

// Highlighted returns the label of the keypad button under the cursor.
func (c *Calculator) Highlighted() string { return keypad[c.cursor].label }

// Step moves the keypad cursor and presses keys. Arrow presses are applied
// before typed characters.
func (c *Calculator) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Presses {
		switch a {
		case core.ActionUp:
			c.moveCursor(-1, 0)
		case core.ActionDown:
			c.moveCursor(1, 0)
		case core.ActionLeft:
			c.moveCursor(0, -1)
		case core.ActionRight:
			c.moveCursor(0, 1)
		case core.ActionJump, core.ActionConfirm:
			c.Press(c.Highlighted())
		}
	}
	for _, r := range in.Text {
		if r >= '0' && r <= '9' {
			c.Press(string(r))
		} else if label, ok := typed[r]; ok {
			c.Press(label)
		}
	}
	return core.StepResult{State: c.State()}
}

func (c *Calculator) moveCursor(dr, dc int) {
	b := keypad[c.cursor]
	col := b.col
	if dc > 0 {
		col += b.span - 1
	}
	row := core.Clamp(b.row+dr, 0, keypadRows-1)
	col = core.Clamp(col+dc, 0, keypadCols-1)
	c.cursor = buttonAt(row, col)
}

// Press applies one keypad button. Unknown labels are ignored.
func (c *Calculator) Press(label string) {
	switch label {
	case KeyClear:
		c.clear()
	case KeySign:
		c.toggleSign()
	case KeyPercent:
		c.display = Answer
		c.waiting = true
	case KeyDivide, KeyTimes, KeyMinus, KeyPlus:
		c.setOperator(label)
	case KeyEquals:
		c.equals()
	case KeyDot:
		c.inputDot()
	default:
		if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
			c.inputDigit(label)
		}
	}
}

func (c *Calculator) clear() {
	c.display = "0"
	c.prev = ""
	c.operator = ""
	c.waiting = false
}

func (c *Calculator) inputDigit(d string) {
	switch {
	case c.waiting:
		c.display = d
		c.waiting = false
	case c.display == "0":
		c.display = d
	case len(c.display) < MaxDigits:
		c.display += d
	}
}

func (c *Calculator) inputDot() {
	if c.waiting {
		c.display = "0."
		c.waiting = false
		return
	}
	if !strings.Contains(c.display, ".") && len(c.display) < MaxDigits {
		c.display += "."
	}
}

func (c *Calculator) toggleSign() {
	v, err := strconv.ParseFloat(c.display, 64)
	if err != nil || v == 0 {
		c.display = "0"
		return
	}
	c.display = strconv.FormatFloat(-v, 'f', -1, 64)
}

// setOperator starts an operation. Chaining a second operator completes the
// first one.
func (c *Calculator) setOperator(op string) {
	if c.prev != "" && !c.waiting {
		c.display = Answer
		c.prev = Answer
	} else {
		c.prev = c.display
	}
	c.operator = op
	c.waiting = true
}

func (c *Calculator) equals() {
	if c.prev == "" || c.operator == "" {
		return
	}
	c.display = Answer
	c.prev = ""
	c.operator = ""
	c.waiting = true
}
