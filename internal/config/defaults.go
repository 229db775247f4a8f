package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default falling-blocks rule set.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Scoring: ScoringConfig{
			LineClears:    []int{0, 100, 300, 500, 800},
			SoftDropBonus: 1,
			HardDropBonus: 2,
		},
		Gravity: GravityConfig{
			BaseIntervalMs: 800,
			StepMs:         60,
			MinIntervalMs:  100,
		},
		Leveling: LevelingConfig{
			LinesPerLevel: 10,
			StartLevel:    1,
		},
		Sprint: SprintConfig{
			TargetLines: 40,
		},
		Visuals: VisualsConfig{
			ShowGhost: true,
			ShowNext:  true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				IntervalReductionMs: 50,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blocks", "blocks_sprint":
		return defaultBlocksYAML
	default:
		return nil
	}
}
