package blocks

import (
	"math/rand"
	"time"
)

// Phase is the session lifecycle state. Locking, clearing and spawning
// resolve synchronously inside the call that triggered them, so between
// calls a session is only ever Falling or GameOver.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Command is a player action applied to the falling piece.
type Command int

const (
	MoveLeft Command = iota
	MoveRight
	RotateCW
	RotateCCW
	SoftDrop
	HardDrop
)

// Session is one complete round: the well, the falling piece, the deal
// queue and the score counters. It is pure simulation; time only advances
// when the caller invokes Tick, so the caller owns the gravity clock.
// A Session is not safe for concurrent use.
type Session struct {
	board     Board
	active    ActivePiece
	hasActive bool
	next      Kind
	bag       *pieceBag
	tuning    Tuning

	phase      Phase
	score      int
	level      int
	startLevel int
	lines      int
}

// NewSession starts a round with an empty well and the first piece already
// spawned. startLevel below 1 is raised to 1. The rng drives the piece
// deal only, so equal seeds give equal rounds under equal commands.
func NewSession(tuning Tuning, rng *rand.Rand, startLevel int) *Session {
	if startLevel < 1 {
		startLevel = 1
	}
	s := &Session{
		bag:        newPieceBag(rng),
		tuning:     tuning,
		level:      startLevel,
		startLevel: startLevel,
	}
	s.next = s.bag.next()
	s.spawn()
	return s
}

// Tick advances gravity by one step: the piece descends one row, or locks
// if it cannot. Lock, clear and respawn all resolve before Tick returns.
// Once the session is over, Tick does nothing.
func (s *Session) Tick() {
	if s.phase != PhaseFalling {
		return
	}
	if moved, ok := TryMove(&s.board, s.active, 1, 0); ok {
		s.active = moved
		return
	}
	s.lockAndContinue()
}

// Apply executes one player command against the falling piece. Rejected
// moves and rotations are ignored; a rejected soft drop does NOT lock the
// piece, only gravity locks. HardDrop locks immediately and resolves the
// rest of the cycle before returning. After game over, Apply does nothing.
func (s *Session) Apply(cmd Command) {
	if s.phase != PhaseFalling {
		return
	}

	switch cmd {
	case MoveLeft:
		if moved, ok := TryMove(&s.board, s.active, 0, -1); ok {
			s.active = moved
		}
	case MoveRight:
		if moved, ok := TryMove(&s.board, s.active, 0, 1); ok {
			s.active = moved
		}
	case RotateCW:
		if rotated, ok := TryRotate(&s.board, s.active, 1); ok {
			s.active = rotated
		}
	case RotateCCW:
		if rotated, ok := TryRotate(&s.board, s.active, -1); ok {
			s.active = rotated
		}
	case SoftDrop:
		if moved, ok := TryMove(&s.board, s.active, 1, 0); ok {
			s.active = moved
			s.score += s.tuning.SoftDropBonus
		}
	case HardDrop:
		dist := HardDropDistance(&s.board, s.active)
		s.active.Row += dist
		s.score += dist * s.tuning.HardDropBonus
		s.lockAndContinue()
	}
}

// lockAndContinue settles the active piece, clears any full rows, scores
// them at the level in effect before leveling up, and spawns the next
// piece. The session leaves in PhaseFalling or PhaseGameOver.
func (s *Session) lockAndContinue() {
	s.phase = PhaseLocking
	s.board.Lock(AbsoluteCells(s.active), cellFor(s.active.Kind))
	s.hasActive = false

	s.phase = PhaseClearing
	if cleared := s.board.ClearFullRows(); cleared > 0 {
		s.score += s.tuning.lineClearScore(cleared, s.level)
		s.lines += cleared
		s.advanceLevel()
	}

	s.spawn()
}

// advanceLevel recomputes the level from total cleared lines. The level
// never decreases, and a non-positive LinesPerLevel freezes it.
func (s *Session) advanceLevel() {
	if s.tuning.LinesPerLevel <= 0 {
		return
	}
	if lv := s.startLevel + s.lines/s.tuning.LinesPerLevel; lv > s.level {
		s.level = lv
	}
}

// spawn brings the queued kind into the well and deals a replacement. If
// the spawn cells are already blocked the round is over and no piece
// becomes active.
func (s *Session) spawn() {
	s.phase = PhaseSpawning
	piece := spawnPiece(s.next)
	s.next = s.bag.next()
	if !CanPlace(&s.board, piece) {
		s.phase = PhaseGameOver
		return
	}
	s.active = piece
	s.hasActive = true
	s.phase = PhaseFalling
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Over reports whether the round has ended.
func (s *Session) Over() bool {
	return s.phase == PhaseGameOver
}

// Score returns the accumulated score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the total number of cleared rows.
func (s *Session) Lines() int {
	return s.lines
}

// NextKind returns the kind that will spawn after the current piece locks.
func (s *Session) NextKind() Kind {
	return s.next
}

// DropInterval returns the gravity interval at the current level.
func (s *Session) DropInterval() time.Duration {
	return s.tuning.DropInterval(s.level)
}
