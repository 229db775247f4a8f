// Package config provides YAML-based rule configuration loading and
// difficulty management for the blockfall platform.
package config

// BlocksConfig contains all tunable rules for the falling-blocks game.
type BlocksConfig struct {
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Leveling   LevelingConfig   `yaml:"leveling"`
	Sprint     SprintConfig     `yaml:"sprint"`
	Visuals    VisualsConfig    `yaml:"visuals"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScoringConfig defines point awards.
// LineClears is indexed by the number of rows cleared at once (index 0
// unused); missing entries fall back to the defaults.
type ScoringConfig struct {
	LineClears    []int `yaml:"line_clears"`     // award per simultaneous clear count, multiplied by level
	SoftDropBonus int   `yaml:"soft_drop_bonus"` // points per cell descended under soft drop
	HardDropBonus int   `yaml:"hard_drop_bonus"` // points per cell descended under hard drop
}

// GravityConfig defines the fall-speed curve.
type GravityConfig struct {
	BaseIntervalMs int `yaml:"base_interval_ms"` // drop interval at level 1
	StepMs         int `yaml:"step_ms"`          // reduction per level above 1
	MinIntervalMs  int `yaml:"min_interval_ms"`  // floor, never crossed
}

// LevelingConfig defines level progression.
// LinesPerLevel <= 0 freezes the level at StartLevel.
type LevelingConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
	StartLevel    int `yaml:"start_level"`
}

// SprintConfig defines the sprint mode goal.
type SprintConfig struct {
	TargetLines int `yaml:"target_lines"`
}

// VisualsConfig toggles optional board decorations.
type VisualsConfig struct {
	ShowGhost bool `yaml:"show_ghost"` // landing preview at the hard-drop position
	ShowNext  bool `yaml:"show_next"`  // next-piece box in the HUD
}

// DifficultyConfig defines the pressure progression system, applied by the
// platform on top of the level-based gravity curve.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = relaxed, 1.0 = max pressure
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how pressure increases over a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", or "none"
	MaxAt int    `yaml:"max_at"` // lines/score at which max pressure is reached
}

// ScalingConfig defines the magnitude of pressure changes.
type ScalingConfig struct {
	IntervalReductionMs int `yaml:"interval_reduction_ms"` // extra gravity reduction at max pressure
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
