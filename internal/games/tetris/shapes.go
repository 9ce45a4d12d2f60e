// Package tetris implements the desktop's Tetris: a 10x20 playfield, seven
// uniformly drawn tetrominoes, gravity, clockwise rotation without wall kicks,
// and a flat 100 points per cleared row.
package tetris

import (
	"time"

	"github.com/vovakirdan/retro-desk/internal/core"
)

// Playfield dimensions and timing. These are fixed rules, not settings.
const (
	Cols            = 10
	Rows            = 20
	CellSize        = 30 // pixels per cell on a pixel surface
	GravityInterval = 500 * time.Millisecond
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of tetromino kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// Shape is a rectangular 0/1 occupancy matrix for one orientation.
type Shape [][]uint8

var catalog = [KindCount]Shape{
	KindI: {
		{1, 1, 1, 1},
	},
	KindO: {
		{1, 1},
		{1, 1},
	},
	KindT: {
		{0, 1, 0},
		{1, 1, 1},
	},
	KindS: {
		{0, 1, 1},
		{1, 1, 0},
	},
	KindZ: {
		{1, 1, 0},
		{0, 1, 1},
	},
	KindJ: {
		{1, 0, 0},
		{1, 1, 1},
	},
	KindL: {
		{0, 0, 1},
		{1, 1, 1},
	},
}

// CanonicalShape returns a private copy of the spawn orientation of k.
func CanonicalShape(k Kind) Shape {
	return catalog[k].Clone()
}

// Cell is one playfield square: 0 is empty, 1..7 is a settled piece color.
type Cell uint8

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// ColorIndex returns the cell value that pieces of kind k settle as.
func ColorIndex(k Kind) Cell {
	return Cell(k) + 1
}

// Palette holds the display colors indexed by Cell value, for pixel surfaces.
var Palette = [KindCount + 1]string{
	"#000000", // empty
	"#00FFFF", // I
	"#FFFF00", // O
	"#800080", // T
	"#00FF00", // S
	"#FF0000", // Z
	"#0000FF", // J
	"#FFA500", // L
}

// TermPalette holds the terminal colors indexed by Cell value.
var TermPalette = [KindCount + 1]core.Color{
	core.ColorGray,
	core.ColorBrightCyan,
	core.ColorBrightYellow,
	core.ColorPurple,
	core.ColorBrightGreen,
	core.ColorBrightRed,
	core.ColorBrightBlue,
	core.ColorOrange,
}

// Width returns the number of columns in the shape's bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows in the shape's bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy that shares no rows with s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r, row := range s {
		out[r] = append([]uint8(nil), row...)
	}
	return out
}

// Rotated returns s turned 90 degrees clockwise: column c of s, read bottom
// to top, becomes row c of the result.
func (s Shape) Rotated() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for c := range w {
		out[c] = make([]uint8, h)
		for r := range h {
			out[c][r] = s[h-1-r][c]
		}
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}
