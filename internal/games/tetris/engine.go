package tetris

// Phase is the controller's position in its state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // never started
	PhasePlaying               // gravity and commands active
	PhasePaused                // board kept, gravity and commands ignored
	PhaseGameOver              // a spawned piece collided; frozen until Start
)

var phaseNames = map[Phase]string{
	PhaseIdle:     "idle",
	PhasePlaying:  "playing",
	PhasePaused:   "paused",
	PhaseGameOver: "game_over",
}

// String returns the snake_case name of the phase.
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// PointsPerLine is awarded for every cleared row, with no multi-line bonus.
const PointsPerLine = 100

// Engine owns a game of Tetris: the playfield, the falling piece, the preview
// piece and the score. It is not safe for concurrent use; callers deliver
// ticks and commands one at a time.
type Engine struct {
	spawner Spawner

	field    Playfield
	current  *Piece
	next     *Piece
	score    int
	lines    int
	pieces   int
	playing  bool
	gameOver bool
	started  bool
}

// NewEngine creates an idle engine that draws pieces from spawner.
func NewEngine(spawner Spawner) *Engine {
	return &Engine{spawner: spawner}
}

// Start begins a new game, discarding any previous board and score. The two
// initial pieces are not collision checked; the board is empty.
func (e *Engine) Start() {
	e.field = Playfield{}
	e.score = 0
	e.lines = 0
	e.pieces = 1
	e.gameOver = false
	e.playing = true
	e.started = true

	current := e.spawner.Spawn()
	next := e.spawner.Spawn()
	e.current = &current
	e.next = &next
}

// Pause stops a running game without touching the board.
func (e *Engine) Pause() {
	if e.active() {
		e.playing = false
	}
}

// Resume continues a paused game.
func (e *Engine) Resume() {
	if e.Phase() == PhasePaused {
		e.playing = true
	}
}

// Tick applies one step of gravity.
func (e *Engine) Tick() {
	e.Move(0, 1)
}

// Move shifts the current piece by (dx, dy) and reports whether it moved.
// A blocked downward move lands the piece; a blocked sideways move does nothing.
func (e *Engine) Move(dx, dy int) bool {
	if !e.active() {
		return false
	}
	x, y := e.current.X+dx, e.current.Y+dy
	if !Collides(e.field, *e.current, x, y) {
		moved := e.current.Moved(dx, dy)
		e.current = &moved
		return true
	}
	if dy > 0 {
		e.land()
	}
	return false
}

// Rotate turns the current piece clockwise if the result fits where it is.
// There is no wall kick: a rotation that collides is simply dropped.
func (e *Engine) Rotate() {
	if !e.active() {
		return
	}
	rotated := e.current.Rotated()
	if !Collides(e.field, rotated, rotated.X, rotated.Y) {
		e.current = &rotated
	}
}

// HardDrop drops the current piece as far as it goes and lands it.
func (e *Engine) HardDrop() {
	if !e.active() {
		return
	}
	for !Collides(e.field, *e.current, e.current.X, e.current.Y+1) {
		moved := e.current.Moved(0, 1)
		e.current = &moved
	}
	e.land()
}

// land settles the current piece, clears rows, scores them and brings in the
// next piece. If the incoming piece is blocked at its spawn point the game ends.
func (e *Engine) land() {
	field, cleared := ClearFullRows(Merge(e.field, *e.current))
	e.field = field
	e.lines += cleared
	e.score += cleared * PointsPerLine

	incoming := *e.next
	incoming.X = spawnX(incoming.Shape)
	incoming.Y = 0
	if Collides(e.field, incoming, incoming.X, incoming.Y) {
		e.gameOver = true
		e.playing = false
		e.current = nil
		return
	}
	e.current = &incoming
	e.pieces++
	next := e.spawner.Spawn()
	e.next = &next
}

func (e *Engine) active() bool {
	return e.playing && !e.gameOver && e.current != nil
}

// Phase returns where the engine is in its lifecycle.
func (e *Engine) Phase() Phase {
	switch {
	case e.gameOver:
		return PhaseGameOver
	case e.playing:
		return PhasePlaying
	case e.started:
		return PhasePaused
	default:
		return PhaseIdle
	}
}

// Playing reports whether gravity and commands currently apply.
func (e *Engine) Playing() bool { return e.playing }

// GameOver reports whether the last spawn was blocked.
func (e *Engine) GameOver() bool { return e.gameOver }

// Score returns the points scored in the current game.
func (e *Engine) Score() int { return e.score }

// Field returns a copy of the settled cells.
func (e *Engine) Field() Playfield { return e.field }

// Current returns a copy of the falling piece, or false if there is none.
func (e *Engine) Current() (Piece, bool) {
	if e.current == nil {
		return Piece{}, false
	}
	return clonePiece(*e.current), true
}

// Next returns a copy of the preview piece, or false if there is none.
func (e *Engine) Next() (Piece, bool) {
	if e.next == nil {
		return Piece{}, false
	}
	return clonePiece(*e.next), true
}

func clonePiece(p Piece) Piece {
	p.Shape = p.Shape.Clone()
	return p
}
