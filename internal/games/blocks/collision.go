package blocks

// ActivePiece is the falling tetromino: a shape kind, an orientation index
// and the anchor position of its 4x4 shape box on the board. The piece is
// a value; movement helpers return updated copies so a rejected move never
// leaves a half-applied piece behind.
type ActivePiece struct {
	Kind Kind
	Rot  int // orientation index, 0..3
	Row  int // anchor row, may be negative right after spawn
	Col  int // anchor column
}

// spawnPiece returns a piece of the given kind at the spawn anchor in its
// spawn orientation.
func spawnPiece(k Kind) ActivePiece {
	return ActivePiece{Kind: k, Rot: 0, Row: SpawnRow, Col: SpawnCol}
}

// AbsoluteCells returns the four board coordinates the piece occupies.
func AbsoluteCells(p ActivePiece) [PieceCells]Point {
	var cells [PieceCells]Point
	for i, off := range pieceShapes[p.Kind][p.Rot] {
		cells[i] = Point{Row: p.Row + off.Row, Col: p.Col + off.Col}
	}
	return cells
}

// CanPlace reports whether every cell of the piece is legal: inside the
// columns, not below the floor, and not overlapping a settled cell. Cells
// above the well (negative rows) are legal, which lets tall pieces rotate
// right after spawning.
func CanPlace(b *Board, p ActivePiece) bool {
	for _, c := range AbsoluteCells(p) {
		if c.Col < 0 || c.Col >= BoardWidth || c.Row >= BoardHeight {
			return false
		}
		if c.Row >= 0 && b.IsOccupied(c.Row, c.Col) {
			return false
		}
	}
	return true
}

// TryMove attempts to translate the piece by the given row/column delta.
// On success it returns the moved piece and true; on rejection the
// original piece and false. The board is never modified.
func TryMove(b *Board, p ActivePiece, dRow, dCol int) (ActivePiece, bool) {
	moved := p
	moved.Row += dRow
	moved.Col += dCol
	if !CanPlace(b, moved) {
		return p, false
	}
	return moved, true
}

// TryRotate attempts to rotate the piece one step. dir is +1 for clockwise
// and -1 for counter-clockwise. The rotated piece is tried at each kick
// offset of its kind in table order; the first legal placement wins. If
// none fits, the piece is returned unchanged with false.
func TryRotate(b *Board, p ActivePiece, dir int) (ActivePiece, bool) {
	rotated := p
	rotated.Rot = (p.Rot + dir + rotationStates) % rotationStates
	for _, kick := range kickOffsets[p.Kind] {
		kicked := rotated
		kicked.Row += kick.Row
		kicked.Col += kick.Col
		if CanPlace(b, kicked) {
			return kicked, true
		}
	}
	return p, false
}

// HardDropDistance returns how many rows the piece can descend before it
// would collide. Zero means the piece is already resting.
func HardDropDistance(b *Board, p ActivePiece) int {
	dist := 0
	probe := p
	for {
		probe.Row++
		if !CanPlace(b, probe) {
			return dist
		}
		dist++
	}
}
