package tetris

// Playfield is the grid of settled cells, row 0 at the top. It is a value
// type: every operation below returns a new grid and leaves its input alone.
type Playfield [Rows][Cols]Cell

// Merge returns field with every occupied cell of piece set to the piece's
// color. Cells outside the field are skipped.
func Merge(field Playfield, piece Piece) Playfield {
	for _, p := range piece.Cells() {
		if p.Y < 0 || p.Y >= Rows || p.X < 0 || p.X >= Cols {
			continue
		}
		field[p.Y][p.X] = piece.Color
	}
	return field
}

// ClearFullRows removes every completely filled row, shifting the rows above
// it down and inserting empty rows at the top. It returns the new field and
// the number of rows removed.
func ClearFullRows(field Playfield) (Playfield, int) {
	cleared := 0
	for row := Rows - 1; row >= 0; {
		if !rowFull(field[row]) {
			row--
			continue
		}
		// Shift everything above down by one; re-check the same index.
		for r := row; r > 0; r-- {
			field[r] = field[r-1]
		}
		field[0] = [Cols]Cell{}
		cleared++
	}
	return field, cleared
}

func rowFull(row [Cols]Cell) bool {
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// Filled returns the number of non-empty cells, mostly useful to tests and
// the render layer.
func (f Playfield) Filled() int {
	n := 0
	for r := range f {
		for c := range f[r] {
			if f[r][c] != Empty {
				n++
			}
		}
	}
	return n
}
