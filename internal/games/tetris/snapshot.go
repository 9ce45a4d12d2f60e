package tetris

// Snapshot is an immutable view of the engine for rendering and for tests.
// Current is nil unless a piece is falling in a running game.
type Snapshot struct {
	Phase    Phase
	Field    Playfield
	Current  *Piece
	Next     *Piece
	Score    int
	Lines    int
	Pieces   int
	Playing  bool
	GameOver bool
}

// Snapshot captures the engine state. The returned pieces own their shapes.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:    e.Phase(),
		Field:    e.field,
		Score:    e.score,
		Lines:    e.lines,
		Pieces:   e.pieces,
		Playing:  e.playing,
		GameOver: e.gameOver,
	}
	if cur, ok := e.Current(); ok && e.playing {
		snap.Current = &cur
	}
	if next, ok := e.Next(); ok {
		snap.Next = &next
	}
	return snap
}

// Composite returns the field with the falling piece drawn in, the grid a
// renderer shows for the frame.
func (s Snapshot) Composite() Playfield {
	if s.Current == nil {
		return s.Field
	}
	return Merge(s.Field, *s.Current)
}

// SurfaceSize returns the pixel size of a surface that fits the playfield.
func SurfaceSize() (w, h int) {
	return Cols * CellSize, Rows * CellSize
}

// PreviewSize returns the pixel size of the square next-piece preview.
func PreviewSize() (w, h int) {
	return 4 * CellSize, 4 * CellSize
}
