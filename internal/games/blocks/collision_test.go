package blocks

import "testing"

func TestEveryOrientationHasFourDistinctCells(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		for rot := 0; rot < rotationStates; rot++ {
			seen := make(map[Point]bool)
			for _, off := range pieceShapes[k][rot] {
				if off.Row < 0 || off.Row > 3 || off.Col < 0 || off.Col > 3 {
					t.Errorf("%v rot %d: offset %v leaves the 4x4 shape box", k, rot, off)
				}
				seen[off] = true
			}
			if len(seen) != PieceCells {
				t.Errorf("%v rot %d: expected %d distinct cells, got %d", k, rot, PieceCells, len(seen))
			}
		}
	}
}

func TestRotationCycleReturnsToStart(t *testing.T) {
	var b Board

	for k := Kind(0); k < KindCount; k++ {
		for _, dir := range []int{1, -1} {
			start := ActivePiece{Kind: k, Rot: 0, Row: 8, Col: 3}
			startCells := AbsoluteCells(start)

			cur := start
			for i := 0; i < rotationStates; i++ {
				next, ok := TryRotate(&b, cur, dir)
				if !ok {
					t.Fatalf("%v dir %d: rotation %d rejected in open space", k, dir, i)
				}
				cur = next
			}

			if cur.Rot != start.Rot {
				t.Errorf("%v dir %d: four rotations should restore orientation, got %d", k, dir, cur.Rot)
			}
			if AbsoluteCells(cur) != startCells {
				t.Errorf("%v dir %d: four rotations should restore the cell set", k, dir)
			}
		}
	}
}

func TestRotationKicksOffLeftWall(t *testing.T) {
	var b Board
	// Vertical I hugging the left wall: rotating to horizontal needs a
	// two-column nudge to the right.
	p := ActivePiece{Kind: KindI, Rot: 1, Row: 5, Col: -2}
	if !CanPlace(&b, p) {
		t.Fatal("Vertical I at the left wall should be placeable")
	}

	rotated, ok := TryRotate(&b, p, 1)
	if !ok {
		t.Fatal("Rotation at the wall should succeed via a kick")
	}
	if rotated.Rot != 2 || rotated.Col != 0 || rotated.Row != 5 {
		t.Errorf("Kick result = rot %d at (%d,%d), expected rot 2 at (5,0)",
			rotated.Rot, rotated.Row, rotated.Col)
	}

	// Kick resolution is pure, so repeating it gives the same answer.
	again, _ := TryRotate(&b, p, 1)
	if again != rotated {
		t.Error("Kick resolution should be deterministic")
	}
}

func TestRotationKickPrefersLeftNudge(t *testing.T) {
	var b Board
	// Vertical I hugging the right wall: both one-column nudges are in the
	// kick table, and the leftward one comes first.
	p := ActivePiece{Kind: KindI, Rot: 1, Row: 5, Col: 7}

	rotated, ok := TryRotate(&b, p, 1)
	if !ok {
		t.Fatal("Rotation at the right wall should succeed via a kick")
	}
	if rotated.Col != 6 {
		t.Errorf("First fitting kick is one column left, expected col 6, got %d", rotated.Col)
	}
}

func TestRotationBlockedKeepsPiece(t *testing.T) {
	p := ActivePiece{Kind: KindT, Rot: 0, Row: 17, Col: 3}
	own := make(map[Point]bool)
	for _, c := range AbsoluteCells(p) {
		own[c] = true
	}

	// Pack every surrounding cell so no rotation or kick can fit.
	var b Board
	for row := 16; row < BoardHeight; row++ {
		for col := 1; col <= 7; col++ {
			if !own[Point{Row: row, Col: col}] {
				b[row][col] = cellFor(KindI)
			}
		}
	}
	if !CanPlace(&b, p) {
		t.Fatal("Piece should fit its own pocket")
	}

	for _, dir := range []int{1, -1} {
		got, ok := TryRotate(&b, p, dir)
		if ok {
			t.Errorf("dir %d: rotation in a packed pocket should be rejected", dir)
		}
		if got != p {
			t.Errorf("dir %d: rejected rotation must return the piece unchanged", dir)
		}
	}
}

func TestTryMoveRejectionKeepsPiece(t *testing.T) {
	var b Board

	atWall := ActivePiece{Kind: KindJ, Rot: 0, Row: 5, Col: 0}
	got, ok := TryMove(&b, atWall, 0, -1)
	if ok {
		t.Error("Moving through the left wall should be rejected")
	}
	if got != atWall {
		t.Error("Rejected move must return the piece unchanged")
	}

	resting := ActivePiece{Kind: KindO, Rot: 0, Row: 18, Col: 3}
	if _, ok := TryMove(&b, resting, 1, 0); ok {
		t.Error("Moving below the floor should be rejected")
	}
}

func TestCanPlaceAboveWell(t *testing.T) {
	var b Board

	// Vertical I poking above the well: rows -2..1 in column 5.
	p := ActivePiece{Kind: KindI, Rot: 1, Row: -2, Col: 3}
	if !CanPlace(&b, p) {
		t.Error("Cells above the well should not block placement")
	}

	b[1][5] = cellFor(KindZ)
	if CanPlace(&b, p) {
		t.Error("The visible part of the piece must still collide")
	}
}

func TestHardDropDistance(t *testing.T) {
	var b Board
	p := spawnPiece(KindI) // horizontal, occupies row 1

	if got := HardDropDistance(&b, p); got != 18 {
		t.Errorf("Distance to the floor = %d, expected 18", got)
	}

	fillRow(&b, 19)
	if got := HardDropDistance(&b, p); got != 17 {
		t.Errorf("Distance onto a settled row = %d, expected 17", got)
	}

	resting := ActivePiece{Kind: KindI, Rot: 0, Row: 17, Col: 3}
	if got := HardDropDistance(&b, resting); got != 0 {
		t.Errorf("Resting piece distance = %d, expected 0", got)
	}
}

func TestSpawnPiece(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		p := spawnPiece(k)
		if p.Row != SpawnRow || p.Col != SpawnCol || p.Rot != 0 {
			t.Errorf("%v should spawn at the anchor in orientation 0", k)
		}
		for _, c := range AbsoluteCells(p) {
			if c.Col < 3 || c.Col > 6 || c.Row < 0 || c.Row > 1 {
				t.Errorf("%v spawn cell %v outside the centered top rows", k, c)
			}
		}
	}
}
