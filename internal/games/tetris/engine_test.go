package tetris

import "testing"

// scriptedSpawner hands out kinds in order, cycling when it runs out.
type scriptedSpawner struct {
	kinds []Kind
	i     int
}

func (s *scriptedSpawner) Spawn() Piece {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return SpawnKind(k)
}

func newScripted(kinds ...Kind) *Engine {
	return NewEngine(&scriptedSpawner{kinds: kinds})
}

func mustCurrent(t *testing.T, e *Engine) Piece {
	t.Helper()
	p, ok := e.Current()
	if !ok {
		t.Fatal("expected a current piece")
	}
	return p
}

func TestEngineIdle(t *testing.T) {
	e := newScripted(KindT)

	if e.Phase() != PhaseIdle {
		t.Errorf("Phase() = %s, want idle", e.Phase())
	}
	if e.Move(-1, 0) {
		t.Error("Move before Start should be a no-op")
	}
	e.Tick()
	e.Rotate()
	e.HardDrop()
	e.Pause()
	if e.Phase() != PhaseIdle {
		t.Errorf("Phase() after commands = %s, want idle", e.Phase())
	}
	if _, ok := e.Current(); ok {
		t.Error("idle engine should have no current piece")
	}
}

func TestEngineStart(t *testing.T) {
	e := newScripted(KindT, KindI)
	e.Start()

	if !e.Playing() || e.GameOver() {
		t.Fatalf("after Start playing=%v gameOver=%v", e.Playing(), e.GameOver())
	}
	cur := mustCurrent(t, e)
	if cur.Kind != KindT || cur.X != 3 || cur.Y != 0 {
		t.Errorf("current = %s at (%d,%d), want T at (3,0)", cur.Kind, cur.X, cur.Y)
	}
	next, ok := e.Next()
	if !ok || next.Kind != KindI {
		t.Errorf("next = %v, want I", next.Kind)
	}
	if e.Score() != 0 || e.Field().Filled() != 0 {
		t.Error("Start should give an empty board and zero score")
	}
}

func TestEngineOLandsLeft(t *testing.T) {
	e := newScripted(KindO, KindI)
	e.Start()

	for range 3 {
		if !e.Move(-1, 0) {
			t.Fatal("left move unexpectedly blocked")
		}
	}
	if cur := mustCurrent(t, e); cur.X != 1 {
		t.Fatalf("X = %d after three left moves, want 1", cur.X)
	}

	e.HardDrop()

	field := e.Field()
	for _, p := range []Point{{1, 18}, {2, 18}, {1, 19}, {2, 19}} {
		if field[p.Y][p.X] != 2 {
			t.Errorf("cell (%d,%d) = %d, want 2", p.X, p.Y, field[p.Y][p.X])
		}
	}
	if field.Filled() != 4 {
		t.Errorf("Filled() = %d, want 4", field.Filled())
	}
	if e.Score() != 0 {
		t.Errorf("Score() = %d, want 0", e.Score())
	}
	if cur := mustCurrent(t, e); cur.Kind != KindI || cur.Y != 0 {
		t.Errorf("current = %s at row %d, want I at row 0", cur.Kind, cur.Y)
	}
}

func TestEngineWallStopsMove(t *testing.T) {
	e := newScripted(KindO)
	e.Start()

	for range 4 {
		e.Move(-1, 0)
	}
	if e.Move(-1, 0) {
		t.Error("move through the left wall should fail")
	}
	if cur := mustCurrent(t, e); cur.X != 0 {
		t.Errorf("X = %d, want 0", cur.X)
	}
}

func TestEngineSingleLineClear(t *testing.T) {
	e := newScripted(KindI, KindO)
	e.Start()

	fillRow(&e.field, 19, 3, 3, 4, 5, 6)
	e.field[18][0] = 4

	e.HardDrop()

	if e.Score() != 100 {
		t.Errorf("Score() = %d, want 100", e.Score())
	}
	snap := e.Snapshot()
	if snap.Lines != 1 {
		t.Errorf("Lines = %d, want 1", snap.Lines)
	}
	if snap.Field[19][0] != 4 || snap.Field.Filled() != 1 {
		t.Errorf("expected only the marker shifted to row 19, got %v", snap.Field[19])
	}
}

func TestEngineDoubleLineClear(t *testing.T) {
	e := newScripted(KindO, KindI)
	e.Start()

	fillRow(&e.field, 19, 1, 4, 5)
	fillRow(&e.field, 18, 1, 4, 5)
	e.field[17][9] = 6

	e.HardDrop()

	if e.Score() != 200 {
		t.Errorf("Score() = %d, want 200 (no multi-line bonus)", e.Score())
	}
	field := e.Field()
	if field[19][9] != 6 || field.Filled() != 1 {
		t.Errorf("expected only the marker at (9,19), got %v", field[19])
	}
}

func TestEngineNextBecomesCurrent(t *testing.T) {
	e := newScripted(KindO, KindT, KindI)
	e.Start()
	e.HardDrop()

	cur := mustCurrent(t, e)
	next, _ := e.Next()
	if cur.Kind != KindT || next.Kind != KindI {
		t.Errorf("current=%s next=%s, want T and I", cur.Kind, next.Kind)
	}
	if cur.X != 3 || cur.Y != 0 {
		t.Errorf("current at (%d,%d), want spawn point (3,0)", cur.X, cur.Y)
	}
	if got := e.Snapshot().Pieces; got != 2 {
		t.Errorf("Pieces = %d, want 2", got)
	}
}

func TestEngineRotate(t *testing.T) {
	e := newScripted(KindT)
	e.Start()
	orig := mustCurrent(t, e).Shape

	e.Rotate()
	if got := mustCurrent(t, e).Shape; !got.Equal(orig.Rotated()) {
		t.Errorf("after one rotation shape = %v", got)
	}
	for range 3 {
		e.Rotate()
	}
	if got := mustCurrent(t, e).Shape; !got.Equal(orig) {
		t.Errorf("after four rotations shape = %v, want %v", got, orig)
	}
}

func TestEngineRotateBlockedAtWall(t *testing.T) {
	e := newScripted(KindI)
	e.Start()
	e.Rotate()

	for e.Move(1, 0) {
	}
	before := mustCurrent(t, e)
	if before.X != 9 || before.Shape.Height() != 4 {
		t.Fatalf("setup: vertical I at x=%d height=%d", before.X, before.Shape.Height())
	}

	e.Rotate()

	after := mustCurrent(t, e)
	if after.X != 9 || !after.Shape.Equal(before.Shape) {
		t.Errorf("blocked rotation changed the piece: x=%d shape=%v", after.X, after.Shape)
	}
}

func TestEngineTickLands(t *testing.T) {
	e := newScripted(KindO, KindI)
	e.Start()

	for range 18 {
		e.Tick()
	}
	if cur := mustCurrent(t, e); cur.Kind != KindO || cur.Y != 18 {
		t.Fatalf("current = %s at row %d, want O at row 18", cur.Kind, cur.Y)
	}

	e.Tick()

	if e.Field().Filled() != 4 {
		t.Errorf("O should have landed, Filled() = %d", e.Field().Filled())
	}
	if cur := mustCurrent(t, e); cur.Kind != KindI {
		t.Errorf("current = %s, want I", cur.Kind)
	}
}

func TestEngineGameOver(t *testing.T) {
	e := newScripted(KindI, KindO)
	e.Start()
	fillRow(&e.field, 1, 5, 9)

	e.Tick()

	if !e.GameOver() || e.Playing() {
		t.Fatalf("gameOver=%v playing=%v, want true/false", e.GameOver(), e.Playing())
	}
	if e.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %s, want game_over", e.Phase())
	}
	if _, ok := e.Current(); ok {
		t.Error("game over should leave no current piece")
	}
	if e.Snapshot().Current != nil {
		t.Error("snapshot should not carry a current piece")
	}

	before := e.Snapshot()
	e.Tick()
	e.Move(-1, 0)
	e.Move(0, 1)
	e.Rotate()
	e.HardDrop()
	e.Pause()
	e.Resume()
	after := e.Snapshot()

	if after.Field != before.Field || after.Score != before.Score ||
		after.Phase != before.Phase || after.Playing != before.Playing {
		t.Error("commands after game over changed the state")
	}

	e.Start()
	if !e.Playing() || e.GameOver() || e.Field().Filled() != 0 {
		t.Error("Start after game over should reset the game")
	}
}

func TestEnginePauseResume(t *testing.T) {
	e := newScripted(KindT)
	e.Start()
	e.Tick()
	e.Pause()

	if e.Phase() != PhasePaused {
		t.Fatalf("Phase() = %s, want paused", e.Phase())
	}
	y := mustCurrent(t, e).Y
	e.Tick()
	if e.Move(1, 0) {
		t.Error("Move while paused should be ignored")
	}
	if got := mustCurrent(t, e).Y; got != y {
		t.Errorf("Tick while paused moved the piece from %d to %d", y, got)
	}
	if e.Snapshot().Current != nil {
		t.Error("paused snapshot should not show the falling piece")
	}

	e.Resume()
	if e.Phase() != PhasePlaying {
		t.Errorf("Phase() = %s, want playing", e.Phase())
	}
	if !e.Move(1, 0) {
		t.Error("Move after Resume should work")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	e := newScripted(KindL)
	e.Start()

	snap := e.Snapshot()
	snap.Current.Shape[0][0] = 9
	snap.Field[0][0] = 9

	if mustCurrent(t, e).Shape[0][0] == 9 {
		t.Error("snapshot shares the current piece's shape")
	}
	if e.Field()[0][0] != Empty {
		t.Error("snapshot shares the playfield")
	}
}

func TestSnapshotComposite(t *testing.T) {
	e := newScripted(KindO)
	e.Start()

	grid := e.Snapshot().Composite()
	if grid[0][4] != 2 || grid[1][5] != 2 {
		t.Error("composite should include the falling piece")
	}
	if e.Field().Filled() != 0 {
		t.Error("Composite must not settle the piece")
	}
}

func TestSurfaceSize(t *testing.T) {
	w, h := SurfaceSize()
	if w != 300 || h != 600 {
		t.Errorf("SurfaceSize() = %dx%d, want 300x600", w, h)
	}
	pw, ph := PreviewSize()
	if pw != 120 || ph != 120 {
		t.Errorf("PreviewSize() = %dx%d, want 120x120", pw, ph)
	}
}
