package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocks loads the falling-blocks rule configuration.
// Search order: customPath -> ~/.blockfall/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
func LoadBlocks(customPath string) (BlocksConfig, error) {
	var cfg BlocksConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		normalizeBlocks(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blocks.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				normalizeBlocks(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/blocks.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			normalizeBlocks(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBlocksYAML, &cfg); err != nil {
		return DefaultBlocksConfig(), nil // Fallback to hardcoded if embed fails
	}
	normalizeBlocks(&cfg)
	return cfg, nil
}

// normalizeBlocks fills gaps a hand-edited config may leave so the engine
// never sees zero awards or a non-positive gravity curve.
func normalizeBlocks(cfg *BlocksConfig) {
	def := DefaultBlocksConfig()

	if len(cfg.Scoring.LineClears) < len(def.Scoring.LineClears) {
		merged := make([]int, len(def.Scoring.LineClears))
		copy(merged, def.Scoring.LineClears)
		copy(merged, cfg.Scoring.LineClears)
		cfg.Scoring.LineClears = merged
	}
	if cfg.Gravity.BaseIntervalMs <= 0 {
		cfg.Gravity.BaseIntervalMs = def.Gravity.BaseIntervalMs
	}
	if cfg.Gravity.MinIntervalMs <= 0 {
		cfg.Gravity.MinIntervalMs = def.Gravity.MinIntervalMs
	}
	if cfg.Gravity.StepMs < 0 {
		cfg.Gravity.StepMs = def.Gravity.StepMs
	}
	if cfg.Leveling.StartLevel < 1 {
		cfg.Leveling.StartLevel = def.Leveling.StartLevel
	}
	if cfg.Sprint.TargetLines <= 0 {
		cfg.Sprint.TargetLines = def.Sprint.TargetLines
	}
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Leveling.LinesPerLevel = 0 // freeze gravity at the start level
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the gravity curve based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseIntervalMs = 1000
		cfg.Gravity.StepMs = 50
	case DifficultyHard:
		cfg.Gravity.BaseIntervalMs = 640
		cfg.Gravity.StepMs = 70
		if cfg.Leveling.StartLevel < 3 {
			cfg.Leveling.StartLevel = 3
		}
	}
}
