package blocks

// Snapshot captures everything observable about a session at one instant
// for rendering, determinism testing and replay. Two sessions created
// from the same seed and fed the same calls produce equal snapshots, so
// the struct holds only comparable fields.
type Snapshot struct {
	// Grid is the well with the active piece composited in. Building it
	// copies the board; the session's own well is never touched.
	Grid  Board
	Score int
	Level int
	Lines int
	Phase Phase
	Next  Kind

	// HasActive is false only after game over; the cell arrays below are
	// meaningful only while it is true.
	HasActive   bool
	ActiveKind  Kind
	ActiveCells [PieceCells]Point
	GhostCells  [PieceCells]Point
}

// Snapshot returns the current observable state. Ghost cells mark where
// the active piece would rest after a hard drop.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:  s.board,
		Score: s.score,
		Level: s.level,
		Lines: s.lines,
		Phase: s.phase,
		Next:  s.next,
	}

	if !s.hasActive {
		return snap
	}

	snap.HasActive = true
	snap.ActiveKind = s.active.Kind
	snap.ActiveCells = AbsoluteCells(s.active)

	ghost := s.active
	ghost.Row += HardDropDistance(&s.board, s.active)
	snap.GhostCells = AbsoluteCells(ghost)

	for _, c := range snap.ActiveCells {
		if c.Row >= 0 {
			snap.Grid[c.Row][c.Col] = cellFor(s.active.Kind)
		}
	}
	return snap
}
