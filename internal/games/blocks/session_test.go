package blocks

import (
	"math/rand"
	"testing"
)

func newTestSession(seed int64) *Session {
	return NewSession(DefaultTuning(), rand.New(rand.NewSource(seed)), 1)
}

func TestNewSessionSpawnsImmediately(t *testing.T) {
	s := newTestSession(1)

	if s.Phase() != PhaseFalling {
		t.Errorf("Fresh session should be falling, got %v", s.Phase())
	}
	if !s.hasActive {
		t.Error("Fresh session should hold an active piece")
	}
	if s.Score() != 0 || s.Lines() != 0 {
		t.Error("Fresh session should have zero score and lines")
	}
	if s.Level() != 1 {
		t.Errorf("Default start level should be 1, got %d", s.Level())
	}
}

func TestStartLevelClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if s := NewSession(DefaultTuning(), rng, 0); s.Level() != 1 {
		t.Errorf("Start level 0 should clamp to 1, got %d", s.Level())
	}
	if s := NewSession(DefaultTuning(), rng, -3); s.Level() != 1 {
		t.Errorf("Negative start level should clamp to 1, got %d", s.Level())
	}
	if s := NewSession(DefaultTuning(), rng, 7); s.Level() != 7 {
		t.Errorf("Start level 7 should be kept, got %d", s.Level())
	}
}

func TestLineClearScoringTable(t *testing.T) {
	tests := []struct {
		rows      int
		wantScore int
	}{
		{1, 100},
		{2, 300},
		{3, 500},
		{4, 800},
	}

	for _, tc := range tests {
		s := newTestSession(1)
		// Bottom rows complete except column 9; a vertical I over the gap
		// finishes exactly tc.rows rows when it locks.
		for row := BoardHeight - tc.rows; row < BoardHeight; row++ {
			fillRow(&s.board, row, 9)
		}
		s.active = ActivePiece{Kind: KindI, Rot: 1, Row: 16, Col: 7}

		s.Apply(HardDrop) // already resting, so no drop bonus

		if s.Score() != tc.wantScore {
			t.Errorf("%d-row clear: score = %d, expected %d", tc.rows, s.Score(), tc.wantScore)
		}
		if s.Lines() != tc.rows {
			t.Errorf("%d-row clear: lines = %d, expected %d", tc.rows, s.Lines(), tc.rows)
		}
	}
}

func TestClearAwardUsesLevelAtClearTime(t *testing.T) {
	tuning := DefaultTuning()
	tuning.LinesPerLevel = 1 // level up after every line
	s := NewSession(tuning, rand.New(rand.NewSource(1)), 1)

	plantSingleClear := func() {
		s.board.Reset()
		fillRow(&s.board, 19, 9)
		s.active = ActivePiece{Kind: KindI, Rot: 1, Row: 16, Col: 7}
		s.hasActive = true
		s.phase = PhaseFalling
		s.Apply(HardDrop)
	}

	plantSingleClear()
	if s.Score() != 100 {
		t.Fatalf("First clear at level 1 should award 100, got %d", s.Score())
	}
	if s.Level() != 2 {
		t.Fatalf("Level should rise to 2 after the clear, got %d", s.Level())
	}

	// The second clear happens at level 2, so the award doubles even
	// though the clear itself triggers another level-up.
	plantSingleClear()
	if s.Score() != 300 {
		t.Errorf("Second clear should award 200 on top of 100, got total %d", s.Score())
	}
	if s.Level() != 3 {
		t.Errorf("Level should rise to 3, got %d", s.Level())
	}
}

func TestLevelProgression(t *testing.T) {
	s := newTestSession(3)

	s.lines = 9
	s.advanceLevel()
	if s.Level() != 1 {
		t.Errorf("9 lines should keep level 1, got %d", s.Level())
	}

	s.lines = 10
	s.advanceLevel()
	if s.Level() != 2 {
		t.Errorf("10 lines should reach level 2, got %d", s.Level())
	}

	s.lines = 47
	s.advanceLevel()
	if s.Level() != 5 {
		t.Errorf("47 lines should reach level 5, got %d", s.Level())
	}

	// The level never drops, even if the line counter were rewound.
	s.lines = 0
	s.advanceLevel()
	if s.Level() != 5 {
		t.Errorf("Level must never decrease, got %d", s.Level())
	}
}

func TestLevelRespectsStartOffset(t *testing.T) {
	s := NewSession(DefaultTuning(), rand.New(rand.NewSource(1)), 5)

	s.lines = 10
	s.advanceLevel()
	if s.Level() != 6 {
		t.Errorf("10 lines from start level 5 should reach 6, got %d", s.Level())
	}
}

func TestLevelFrozenWithoutLinesPerLevel(t *testing.T) {
	tuning := DefaultTuning()
	tuning.LinesPerLevel = 0
	s := NewSession(tuning, rand.New(rand.NewSource(1)), 3)

	s.lines = 90
	s.advanceLevel()
	if s.Level() != 3 {
		t.Errorf("Level should stay fixed at 3, got %d", s.Level())
	}
}

func TestDropIntervalCurve(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		level  int
		wantMs int64
	}{
		{0, 800}, // clamped to level 1
		{1, 800},
		{2, 740},
		{12, 140},
		{13, 100}, // raw 80ms hits the floor
		{50, 100},
	}
	for _, tc := range tests {
		if got := tuning.DropInterval(tc.level).Milliseconds(); got != tc.wantMs {
			t.Errorf("DropInterval(%d) = %dms, expected %dms", tc.level, got, tc.wantMs)
		}
	}

	// Monotone non-increasing across the whole curve.
	prev := tuning.DropInterval(1)
	for level := 2; level <= 30; level++ {
		cur := tuning.DropInterval(level)
		if cur > prev {
			t.Fatalf("Interval rose from %v to %v at level %d", prev, cur, level)
		}
		prev = cur
	}
}

func TestSoftDrop(t *testing.T) {
	s := newTestSession(7)
	rowBefore := s.active.Row

	s.Apply(SoftDrop)

	if s.active.Row != rowBefore+1 {
		t.Errorf("Soft drop should descend one row, got %d -> %d", rowBefore, s.active.Row)
	}
	if s.Score() != DefaultTuning().SoftDropBonus {
		t.Errorf("Soft drop should award the per-cell bonus, got %d", s.Score())
	}
}

func TestSoftDropRejectionDoesNotLock(t *testing.T) {
	s := newTestSession(7)
	resting := ActivePiece{Kind: KindO, Rot: 0, Row: 18, Col: 3}
	s.active = resting
	scoreBefore := s.Score()

	s.Apply(SoftDrop)

	if s.active != resting {
		t.Error("Rejected soft drop must leave the piece in place")
	}
	if s.Score() != scoreBefore {
		t.Error("Rejected soft drop must not score")
	}
	if s.Phase() != PhaseFalling {
		t.Errorf("Piece must stay falling until gravity locks it, got %v", s.Phase())
	}
	if s.board != (Board{}) {
		t.Error("Rejected soft drop must not lock the piece")
	}
}

func TestHardDropLocksAndScores(t *testing.T) {
	s := newTestSession(11)
	dist := HardDropDistance(&s.board, s.active)
	if dist == 0 {
		t.Fatal("Fresh piece should have room to drop")
	}

	s.Apply(HardDrop)

	if s.Score() != dist*DefaultTuning().HardDropBonus {
		t.Errorf("Hard drop score = %d, expected %d", s.Score(), dist*2)
	}
	settled := 0
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			if s.board[row][col] != CellEmpty {
				settled++
			}
		}
	}
	if settled != PieceCells {
		t.Errorf("Exactly one piece should be settled, found %d cells", settled)
	}
	if s.Phase() != PhaseFalling {
		t.Errorf("Next piece should spawn right after the drop, got %v", s.Phase())
	}
	if s.active.Row != SpawnRow || s.active.Col != SpawnCol {
		t.Error("Replacement piece should sit at the spawn anchor")
	}
}

func TestTickDescendsThenLocks(t *testing.T) {
	s := newTestSession(13)
	s.active = ActivePiece{Kind: KindO, Rot: 0, Row: 17, Col: 3}

	s.Tick()
	if s.active.Row != 18 {
		t.Fatalf("Tick should descend one row, got row %d", s.active.Row)
	}

	// Now resting on the floor: the next tick locks and respawns.
	s.Tick()
	if s.board[18][4] == CellEmpty || s.board[19][5] == CellEmpty {
		t.Error("Blocked tick should lock the piece into the well")
	}
	if s.Phase() != PhaseFalling {
		t.Errorf("Lock should resolve into a fresh falling piece, got %v", s.Phase())
	}
	if s.active.Row != SpawnRow || s.active.Col != SpawnCol {
		t.Error("Respawned piece should sit at the spawn anchor")
	}
}

func TestBlockedSpawnEndsRound(t *testing.T) {
	s := newTestSession(17)

	// Hard drops at the spawn column never complete a row, so the stack
	// must reach the top well within a bounded number of pieces.
	for i := 0; i < 200 && !s.Over(); i++ {
		s.Apply(HardDrop)
	}
	if !s.Over() {
		t.Fatal("Stacking without clears should top out")
	}
	if s.Phase() != PhaseGameOver {
		t.Fatalf("Ended round should report game over, got %v", s.Phase())
	}

	// The terminal state absorbs everything.
	snap := s.Snapshot()
	s.Tick()
	s.Apply(MoveLeft)
	s.Apply(RotateCW)
	s.Apply(HardDrop)
	if s.Snapshot() != snap {
		t.Error("Ticks and commands after game over must change nothing")
	}
}

func TestSevenBagDeal(t *testing.T) {
	bag := newPieceBag(rand.New(rand.NewSource(42)))

	for batch := 0; batch < 2; batch++ {
		counts := make(map[Kind]int)
		for i := 0; i < KindCount; i++ {
			counts[bag.next()]++
		}
		for k := Kind(0); k < KindCount; k++ {
			if counts[k] != 1 {
				t.Errorf("Batch %d: kind %v dealt %d times, expected once", batch, k, counts[k])
			}
		}
	}
}

func TestBagDealIsSeeded(t *testing.T) {
	b1 := newPieceBag(rand.New(rand.NewSource(42)))
	b2 := newPieceBag(rand.New(rand.NewSource(42)))

	for i := 0; i < 28; i++ {
		if k1, k2 := b1.next(), b2.next(); k1 != k2 {
			t.Fatalf("Deal %d diverged: %v vs %v", i, k1, k2)
		}
	}
}

func TestSessionDeterminism(t *testing.T) {
	s1 := newTestSession(99)
	s2 := newTestSession(99)

	for i := 0; i < 400; i++ {
		switch i % 5 {
		case 0:
			s1.Apply(MoveLeft)
			s2.Apply(MoveLeft)
		case 1:
			s1.Apply(RotateCW)
			s2.Apply(RotateCW)
		case 2:
			s1.Apply(SoftDrop)
			s2.Apply(SoftDrop)
		case 3:
			s1.Apply(MoveRight)
			s2.Apply(MoveRight)
		case 4:
			s1.Tick()
			s2.Tick()
		}
		if i%31 == 0 {
			s1.Apply(HardDrop)
			s2.Apply(HardDrop)
		}
	}

	if s1.Snapshot() != s2.Snapshot() {
		t.Error("Equal seeds and commands must produce equal snapshots")
	}
}

func TestActivePieceNeverOverlapsStack(t *testing.T) {
	s := newTestSession(77)

	// len 5 is coprime with the tick cadence, so every command fires.
	commands := []Command{MoveLeft, RotateCW, MoveRight, SoftDrop, RotateCCW}
	for i := 0; i < 600 && s.Phase() != PhaseGameOver; i++ {
		switch {
		case i%37 == 0:
			s.Apply(HardDrop)
		case i%3 == 0:
			s.Tick()
		default:
			s.Apply(commands[i%len(commands)])
		}

		if !s.hasActive {
			continue
		}
		for _, c := range AbsoluteCells(s.active) {
			if c.Col < 0 || c.Col >= BoardWidth || c.Row >= BoardHeight {
				t.Fatalf("Op %d: active cell %v left the well", i, c)
			}
			if c.Row >= 0 && s.board[c.Row][c.Col] != CellEmpty {
				t.Fatalf("Op %d: active cell %v overlaps the stack", i, c)
			}
		}
	}
}

func TestGhostMarksHardDropLanding(t *testing.T) {
	s := newTestSession(5)
	snap := s.Snapshot()
	dist := HardDropDistance(&s.board, s.active)

	for i, c := range snap.ActiveCells {
		want := Point{Row: c.Row + dist, Col: c.Col}
		if snap.GhostCells[i] != want {
			t.Errorf("Ghost cell %d = %v, expected %v", i, snap.GhostCells[i], want)
		}
	}

	s.Apply(HardDrop)
	for _, c := range snap.GhostCells {
		if s.board[c.Row][c.Col] == CellEmpty {
			t.Errorf("Piece should settle exactly on its ghost at %v", c)
		}
	}
}

func TestSnapshotCompositesWithoutMutating(t *testing.T) {
	s := newTestSession(21)
	snap := s.Snapshot()

	if !snap.HasActive {
		t.Fatal("Snapshot of a falling session should carry the active piece")
	}
	for _, c := range snap.ActiveCells {
		if c.Row < 0 {
			continue
		}
		if snap.Grid[c.Row][c.Col] == CellEmpty {
			t.Errorf("Grid should composite the active cell at %v", c)
		}
		if s.board[c.Row][c.Col] != CellEmpty {
			t.Errorf("Session board must stay untouched at %v", c)
		}
	}
}
