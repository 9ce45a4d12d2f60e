package tetris

// Collides reports whether piece, placed with its top-left at (x, y), would
// leave the playfield or overlap a settled cell. Rows above the field count
// as out of bounds, which is what makes a blocked spawn end the game.
func Collides(field Playfield, piece Piece, x, y int) bool {
	for r, row := range piece.Shape {
		for c, v := range row {
			if v == 0 {
				continue
			}
			bx, by := x+c, y+r
			if bx < 0 || bx >= Cols || by < 0 || by >= Rows {
				return true
			}
			if field[by][bx] != Empty {
				return true
			}
		}
	}
	return false
}
