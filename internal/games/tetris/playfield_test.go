package tetris

import "testing"

func fillRow(f *Playfield, row int, v Cell, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, c := range except {
		skip[c] = true
	}
	for c := range Cols {
		if !skip[c] {
			f[row][c] = v
		}
	}
}

func TestCollides(t *testing.T) {
	var blocked Playfield
	blocked[19][5] = 3
	var notch Playfield
	notch[17][5] = 3

	tests := []struct {
		name  string
		field Playfield
		piece Piece
		x, y  int
		want  bool
	}{
		{"empty field spawn", Playfield{}, SpawnKind(KindI), 3, 0, false},
		{"left wall", Playfield{}, SpawnKind(KindI), -1, 0, true},
		{"flush right", Playfield{}, SpawnKind(KindI), 6, 0, false},
		{"past right wall", Playfield{}, SpawnKind(KindI), 7, 0, true},
		{"above ceiling", Playfield{}, SpawnKind(KindI), 3, -1, true},
		{"bottom row", Playfield{}, SpawnKind(KindI), 3, 19, false},
		{"below floor", Playfield{}, SpawnKind(KindI), 3, 20, true},
		{"O straddles floor", Playfield{}, SpawnKind(KindO), 4, 19, true},
		{"overlap settled", blocked, SpawnKind(KindO), 4, 18, true},
		{"beside settled", blocked, SpawnKind(KindO), 6, 18, false},
		{"T empty corner over settled", notch, SpawnKind(KindT), 5, 17, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.field, tt.piece, tt.x, tt.y); got != tt.want {
				t.Errorf("Collides(x=%d, y=%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCollidesIsPure(t *testing.T) {
	var field Playfield
	fillRow(&field, 19, 1, 0)
	before := field
	piece := SpawnKind(KindL)
	shapeBefore := piece.Shape.Clone()

	first := Collides(field, piece, 0, 17)
	for range 5 {
		if got := Collides(field, piece, 0, 17); got != first {
			t.Fatalf("Collides not deterministic: %v then %v", first, got)
		}
	}
	if field != before {
		t.Error("Collides modified the field")
	}
	if !piece.Shape.Equal(shapeBefore) {
		t.Error("Collides modified the piece")
	}
}

func TestMerge(t *testing.T) {
	var field Playfield
	piece := SpawnKind(KindO).Moved(-4, 18)

	merged := Merge(field, piece)

	if field.Filled() != 0 {
		t.Error("Merge modified its input")
	}
	want := []Point{{0, 18}, {1, 18}, {0, 19}, {1, 19}}
	for _, p := range want {
		if merged[p.Y][p.X] != ColorIndex(KindO) {
			t.Errorf("cell (%d,%d) = %d, want %d", p.X, p.Y, merged[p.Y][p.X], ColorIndex(KindO))
		}
	}
	if merged.Filled() != 4 {
		t.Errorf("Filled() = %d, want 4", merged.Filled())
	}
}

func TestMergeSkipsOutOfBounds(t *testing.T) {
	piece := SpawnKind(KindI)
	piece.Shape = piece.Shape.Rotated()
	piece.X, piece.Y = 0, -2

	merged := Merge(Playfield{}, piece)

	if merged.Filled() != 2 {
		t.Errorf("Filled() = %d, want 2", merged.Filled())
	}
	if merged[0][0] == Empty || merged[1][0] == Empty {
		t.Error("in-bounds cells were not merged")
	}
}

func TestClearFullRows(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(f *Playfield)
		wantCleared int
		check       func(t *testing.T, f Playfield)
	}{
		{
			name:        "nothing full",
			setup:       func(f *Playfield) { fillRow(f, 19, 1, 9) },
			wantCleared: 0,
			check: func(t *testing.T, f Playfield) {
				if f[19][9] != Empty || f[19][0] != 1 {
					t.Error("partial row was disturbed")
				}
			},
		},
		{
			name: "single bottom row",
			setup: func(f *Playfield) {
				fillRow(f, 19, 1)
				f[18][3] = 5
			},
			wantCleared: 1,
			check: func(t *testing.T, f Playfield) {
				if f[19][3] != 5 {
					t.Errorf("marker not shifted down: row 19 = %v", f[19])
				}
				if f[18] != [Cols]Cell{} || f[0] != [Cols]Cell{} {
					t.Error("expected empty rows above")
				}
			},
		},
		{
			name: "two adjacent rows",
			setup: func(f *Playfield) {
				fillRow(f, 19, 2)
				fillRow(f, 18, 3)
				f[17][9] = 6
			},
			wantCleared: 2,
			check: func(t *testing.T, f Playfield) {
				if f[19][9] != 6 || f.Filled() != 1 {
					t.Errorf("want only marker at (9,19), got row 19 = %v", f[19])
				}
			},
		},
		{
			name: "separated rows keep order",
			setup: func(f *Playfield) {
				fillRow(f, 19, 1)
				f[18][0] = 4 // survivor A
				fillRow(f, 17, 1)
				f[16][1] = 5 // survivor B
			},
			wantCleared: 2,
			check: func(t *testing.T, f Playfield) {
				if f[19][0] != 4 {
					t.Errorf("survivor A at row 19 = %v", f[19])
				}
				if f[18][1] != 5 {
					t.Errorf("survivor B at row 18 = %v", f[18])
				}
				if f.Filled() != 2 {
					t.Errorf("Filled() = %d, want 2", f.Filled())
				}
			},
		},
		{
			name: "top row full",
			setup: func(f *Playfield) {
				fillRow(f, 0, 7)
			},
			wantCleared: 1,
			check: func(t *testing.T, f Playfield) {
				if f.Filled() != 0 {
					t.Errorf("Filled() = %d, want 0", f.Filled())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Playfield
			tt.setup(&f)
			before := f

			got, n := ClearFullRows(f)
			if n != tt.wantCleared {
				t.Errorf("cleared = %d, want %d", n, tt.wantCleared)
			}
			if f != before {
				t.Error("ClearFullRows modified its input")
			}
			for r := range Rows {
				if rowFull(got[r]) {
					t.Errorf("row %d still full", r)
				}
			}
			tt.check(t, got)
		})
	}
}
