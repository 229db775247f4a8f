package blocks

import "fmt"

// Board dimensions in cells. The well is taller than it is wide; row 0 is
// the top row and row BoardHeight-1 rests on the floor.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is the content of one board position. Zero means empty; otherwise
// the value is the piece kind that locked there plus one, so the renderer
// can recover the color of settled blocks.
type Cell uint8

// CellEmpty marks an unoccupied board position.
const CellEmpty Cell = 0

// cellFor returns the board marker for a locked piece of the given kind.
func cellFor(k Kind) Cell {
	return Cell(k) + 1
}

// Board is the well of settled cells. The active piece is never part of
// the board; it only enters via Lock.
type Board [BoardHeight][BoardWidth]Cell

// IsInside reports whether the column is valid and the row is not below
// the floor. Negative rows count as inside: pieces may extend above the
// visible well right after spawning.
func (b *Board) IsInside(row, col int) bool {
	return col >= 0 && col < BoardWidth && row < BoardHeight
}

// IsOccupied reports whether a settled cell fills the given position.
// Rows above the well are always free. Querying below the floor or outside
// the columns is a caller bug and panics.
func (b *Board) IsOccupied(row, col int) bool {
	if row < 0 {
		return false
	}
	if row >= BoardHeight || col < 0 || col >= BoardWidth {
		panic(fmt.Sprintf("blocks: occupancy query outside the well: row=%d col=%d", row, col))
	}
	return b[row][col] != CellEmpty
}

// Lock writes a piece's cells into the board. All four cells must be
// inside the visible well and empty; locking anywhere else means collision
// detection was skipped, so Lock panics rather than corrupt the well.
// The board is validated before any cell is written.
func (b *Board) Lock(cells [PieceCells]Point, c Cell) {
	for _, p := range cells {
		if p.Row < 0 || p.Row >= BoardHeight || p.Col < 0 || p.Col >= BoardWidth {
			panic(fmt.Sprintf("blocks: lock outside the well: row=%d col=%d", p.Row, p.Col))
		}
		if b[p.Row][p.Col] != CellEmpty {
			panic(fmt.Sprintf("blocks: lock over settled cell: row=%d col=%d", p.Row, p.Col))
		}
	}
	for _, p := range cells {
		b[p.Row][p.Col] = c
	}
}

// ClearFullRows removes every completely filled row in one pass, slides
// the surviving rows down without reordering them, and refills the top
// with empty rows. Returns the number of rows removed (0..4 in play,
// since a single piece spans at most four rows).
func (b *Board) ClearFullRows() int {
	write := BoardHeight - 1
	for read := BoardHeight - 1; read >= 0; read-- {
		if b.rowFull(read) {
			continue
		}
		if write != read {
			b[write] = b[read]
		}
		write--
	}

	cleared := write + 1
	for row := 0; row <= write; row++ {
		b[row] = [BoardWidth]Cell{}
	}
	return cleared
}

// rowFull reports whether every cell in the row is settled.
func (b *Board) rowFull(row int) bool {
	for col := 0; col < BoardWidth; col++ {
		if b[row][col] == CellEmpty {
			return false
		}
	}
	return true
}

// Reset empties the entire well.
func (b *Board) Reset() {
	*b = Board{}
}
