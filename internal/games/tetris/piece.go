package tetris

import "math/rand"

// Point is a column/row coordinate on the playfield.
type Point struct {
	X, Y int
}

// Piece is a tetromino placed on the playfield. X and Y locate the top-left
// of its shape's bounding box. Pieces are values: moving or rotating one
// produces a new Piece and never touches the catalog.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color Cell
	X, Y  int
}

// Moved returns the piece shifted by (dx, dy). The shape is shared, which is
// safe because shapes are never mutated after creation.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece with its shape turned clockwise in place.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotated()
	return p
}

// CellsAt returns the playfield coordinates of every occupied cell when the
// piece sits at (x, y).
func (p Piece) CellsAt(x, y int) []Point {
	cells := make([]Point, 0, 4)
	for r, row := range p.Shape {
		for c, v := range row {
			if v != 0 {
				cells = append(cells, Point{X: x + c, Y: y + r})
			}
		}
	}
	return cells
}

// Cells returns the playfield coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	return p.CellsAt(p.X, p.Y)
}

// Spawner produces the pieces an Engine plays with.
type Spawner interface {
	Spawn() Piece
}

// Factory draws kinds uniformly and independently. There is no bag, so the
// same kind may repeat any number of times.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a factory drawing from rng.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// Spawn returns a fresh random piece at the top-center of the playfield.
func (f *Factory) Spawn() Piece {
	return SpawnKind(Kind(f.rng.Intn(KindCount)))
}

// SpawnKind returns a fresh piece of kind k at the top-center of the playfield.
func SpawnKind(k Kind) Piece {
	shape := CanonicalShape(k)
	return Piece{
		Kind:  k,
		Shape: shape,
		Color: ColorIndex(k),
		X:     spawnX(shape),
		Y:     0,
	}
}

func spawnX(s Shape) int {
	return (Cols - s.Width()) / 2
}
