package blocks

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct tetromino shapes.
const KindCount = 7

// PieceCells is the number of cells every tetromino occupies.
const PieceCells = 4

// rotationStates is the number of orientations per shape. Rotating four
// times in the same direction always returns to the original state.
const rotationStates = 4

// Point is a board coordinate. Row 0 is the top of the well and grows
// downward; negative rows sit above the visible well.
type Point struct {
	Row, Col int
}

// Spawn anchor: the top-left corner of the 4x4 shape box when a piece
// enters the well. Column 3 centers the box on a 10-wide board.
const (
	SpawnRow = 0
	SpawnCol = 3
)

// pieceShapes holds the cell offsets of every kind in every orientation,
// relative to the piece anchor. Offsets stay within a 4x4 box and each
// orientation lists exactly PieceCells entries. Index 0 is the spawn
// orientation; rotating clockwise advances the index.
var pieceShapes = [KindCount][rotationStates][PieceCells]Point{
	KindI: {
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	},
	KindO: {
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {1, 2}},
	},
	KindT: {
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 1}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	},
	KindS: {
		{{0, 1}, {0, 2}, {1, 0}, {1, 1}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 1}, {1, 2}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	},
	KindZ: {
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{0, 2}, {1, 1}, {1, 2}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	},
	KindJ: {
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {0, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 0}, {2, 1}},
	},
	KindL: {
		{{0, 2}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	},
}

// kickOffsets lists, per kind, the translations tried when a rotation is
// blocked. Order matters: the first offset that yields a legal placement
// wins, so rotation outcomes stay deterministic. All kicks are horizontal
// nudges; O never needs one, I reaches two columns because of its length.
var kickOffsets = [KindCount][]Point{
	KindI: {{0, 0}, {0, -1}, {0, 1}, {0, -2}, {0, 2}},
	KindO: {{0, 0}},
	KindT: {{0, 0}, {0, -1}, {0, 1}},
	KindS: {{0, 0}, {0, -1}, {0, 1}},
	KindZ: {{0, 0}, {0, -1}, {0, 1}},
	KindJ: {{0, 0}, {0, -1}, {0, 1}},
	KindL: {{0, 0}, {0, -1}, {0, 1}},
}

// String returns the conventional one-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}
