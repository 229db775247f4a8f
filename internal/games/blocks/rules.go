package blocks

import "time"

// Tuning collects every numeric rule the session consults: score awards,
// drop bonuses, leveling pace and gravity curve. The engine never reads
// configuration itself; the adapter builds a Tuning and hands it over.
type Tuning struct {
	// LineClearScores is indexed by the number of rows removed at once
	// and multiplied by the level in effect when the clear happened.
	// Index 0 must be 0.
	LineClearScores []int
	SoftDropBonus   int // points per cell descended under soft drop
	HardDropBonus   int // points per cell descended under hard drop

	LinesPerLevel int // lines per level-up; 0 or less freezes the level
	StartLevel    int

	BaseInterval time.Duration // drop interval at level 1
	IntervalStep time.Duration // reduction per level above 1
	MinInterval  time.Duration // floor, never crossed
}

// DefaultTuning returns the classic rule set: 100/300/500/800 clear
// awards, one point per soft-dropped cell, two per hard-dropped cell,
// a level every ten lines, and gravity from 800ms down to 100ms in
// 60ms steps.
func DefaultTuning() Tuning {
	return Tuning{
		LineClearScores: []int{0, 100, 300, 500, 800},
		SoftDropBonus:   1,
		HardDropBonus:   2,
		LinesPerLevel:   10,
		StartLevel:      1,
		BaseInterval:    800 * time.Millisecond,
		IntervalStep:    60 * time.Millisecond,
		MinInterval:     100 * time.Millisecond,
	}
}

// DropInterval returns the gravity interval at the given level. The
// interval shrinks linearly with the level and clamps at MinInterval.
func (t Tuning) DropInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := t.BaseInterval - time.Duration(level-1)*t.IntervalStep
	if interval < t.MinInterval {
		return t.MinInterval
	}
	return interval
}

// lineClearScore returns the award for removing rows simultaneously at
// the given level. Clear counts beyond the table use the last entry.
func (t Tuning) lineClearScore(rows, level int) int {
	if rows <= 0 || len(t.LineClearScores) == 0 {
		return 0
	}
	if rows >= len(t.LineClearScores) {
		rows = len(t.LineClearScores) - 1
	}
	return t.LineClearScores[rows] * level
}
