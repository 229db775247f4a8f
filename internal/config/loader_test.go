package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultBlocksConfig(t *testing.T) {
	cfg := DefaultBlocksConfig()

	want := []int{0, 100, 300, 500, 800}
	if len(cfg.Scoring.LineClears) != len(want) {
		t.Fatalf("expected %d clear awards, got %d", len(want), len(cfg.Scoring.LineClears))
	}
	for i, award := range want {
		if cfg.Scoring.LineClears[i] != award {
			t.Errorf("LineClears[%d] = %d, expected %d", i, cfg.Scoring.LineClears[i], award)
		}
	}

	if cfg.Gravity.BaseIntervalMs != 800 || cfg.Gravity.StepMs != 60 || cfg.Gravity.MinIntervalMs != 100 {
		t.Errorf("unexpected gravity curve: %+v", cfg.Gravity)
	}
	if cfg.Leveling.LinesPerLevel != 10 || cfg.Leveling.StartLevel != 1 {
		t.Errorf("unexpected leveling: %+v", cfg.Leveling)
	}
	if cfg.Sprint.TargetLines != 40 {
		t.Errorf("expected sprint target 40, got %d", cfg.Sprint.TargetLines)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg BlocksConfig
	if err := yaml.Unmarshal(defaultBlocksYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	normalizeBlocks(&cfg)

	def := DefaultBlocksConfig()
	if cfg.Gravity != def.Gravity {
		t.Errorf("gravity mismatch: embedded %+v, hardcoded %+v", cfg.Gravity, def.Gravity)
	}
	if cfg.Leveling != def.Leveling {
		t.Errorf("leveling mismatch: embedded %+v, hardcoded %+v", cfg.Leveling, def.Leveling)
	}
	if cfg.Sprint != def.Sprint {
		t.Errorf("sprint mismatch: embedded %+v, hardcoded %+v", cfg.Sprint, def.Sprint)
	}
	if cfg.Visuals != def.Visuals {
		t.Errorf("visuals mismatch: embedded %+v, hardcoded %+v", cfg.Visuals, def.Visuals)
	}
	if cfg.Difficulty != def.Difficulty {
		t.Errorf("difficulty mismatch: embedded %+v, hardcoded %+v", cfg.Difficulty, def.Difficulty)
	}
	if len(cfg.Scoring.LineClears) != len(def.Scoring.LineClears) {
		t.Fatalf("clear award table length mismatch")
	}
	for i := range def.Scoring.LineClears {
		if cfg.Scoring.LineClears[i] != def.Scoring.LineClears[i] {
			t.Errorf("LineClears[%d]: embedded %d, hardcoded %d", i, cfg.Scoring.LineClears[i], def.Scoring.LineClears[i])
		}
	}
}

func TestLoadBlocksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	custom := `
scoring:
  line_clears: [0, 40]
  soft_drop_bonus: 3
gravity:
  base_interval_ms: 500
leveling:
  lines_per_level: 5
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := LoadBlocks(path)
	if err != nil {
		t.Fatalf("LoadBlocks failed: %v", err)
	}

	// Explicit values are kept
	if cfg.Scoring.SoftDropBonus != 3 {
		t.Errorf("SoftDropBonus = %d, expected 3", cfg.Scoring.SoftDropBonus)
	}
	if cfg.Gravity.BaseIntervalMs != 500 {
		t.Errorf("BaseIntervalMs = %d, expected 500", cfg.Gravity.BaseIntervalMs)
	}
	if cfg.Leveling.LinesPerLevel != 5 {
		t.Errorf("LinesPerLevel = %d, expected 5", cfg.Leveling.LinesPerLevel)
	}

	// Gaps are filled from the defaults
	if cfg.Gravity.MinIntervalMs != 100 {
		t.Errorf("MinIntervalMs = %d, expected default 100", cfg.Gravity.MinIntervalMs)
	}
	if cfg.Leveling.StartLevel != 1 {
		t.Errorf("StartLevel = %d, expected default 1", cfg.Leveling.StartLevel)
	}
	if cfg.Sprint.TargetLines != 40 {
		t.Errorf("TargetLines = %d, expected default 40", cfg.Sprint.TargetLines)
	}

	// A short award table keeps its prefix and inherits the tail
	if len(cfg.Scoring.LineClears) != 5 {
		t.Fatalf("LineClears length = %d, expected 5", len(cfg.Scoring.LineClears))
	}
	if cfg.Scoring.LineClears[1] != 40 {
		t.Errorf("LineClears[1] = %d, expected custom 40", cfg.Scoring.LineClears[1])
	}
	if cfg.Scoring.LineClears[2] != 300 || cfg.Scoring.LineClears[4] != 800 {
		t.Errorf("LineClears tail not inherited: %v", cfg.Scoring.LineClears)
	}
}

func TestLoadBlocksMissingFile(t *testing.T) {
	_, err := LoadBlocks(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadBlocksBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("scoring: [not: a map"), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	if _, err := LoadBlocks(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestNormalizeFillsGaps(t *testing.T) {
	var cfg BlocksConfig
	normalizeBlocks(&cfg)

	def := DefaultBlocksConfig()
	if cfg.Gravity.BaseIntervalMs != def.Gravity.BaseIntervalMs {
		t.Errorf("BaseIntervalMs = %d, expected %d", cfg.Gravity.BaseIntervalMs, def.Gravity.BaseIntervalMs)
	}
	if cfg.Gravity.MinIntervalMs != def.Gravity.MinIntervalMs {
		t.Errorf("MinIntervalMs = %d, expected %d", cfg.Gravity.MinIntervalMs, def.Gravity.MinIntervalMs)
	}
	if cfg.Leveling.StartLevel != 1 {
		t.Errorf("StartLevel = %d, expected 1", cfg.Leveling.StartLevel)
	}
	if cfg.Sprint.TargetLines != def.Sprint.TargetLines {
		t.Errorf("TargetLines = %d, expected %d", cfg.Sprint.TargetLines, def.Sprint.TargetLines)
	}
	if len(cfg.Scoring.LineClears) != len(def.Scoring.LineClears) {
		t.Errorf("LineClears not defaulted: %v", cfg.Scoring.LineClears)
	}

	// Zero is meaningful for both of these: StepMs 0 is a flat gravity
	// curve, LinesPerLevel 0 freezes the level. Neither gets defaulted.
	if cfg.Gravity.StepMs != 0 {
		t.Errorf("StepMs = %d, expected explicit 0 to be preserved", cfg.Gravity.StepMs)
	}
	if cfg.Leveling.LinesPerLevel != 0 {
		t.Errorf("LinesPerLevel = %d, expected 0 to be preserved", cfg.Leveling.LinesPerLevel)
	}
}

func TestApplyBlocksPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		check  func(t *testing.T, cfg BlocksConfig)
	}{
		{DifficultyEasy, func(t *testing.T, cfg BlocksConfig) {
			if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.0 {
				t.Errorf("easy: unexpected difficulty %+v", cfg.Difficulty)
			}
			if cfg.Gravity.BaseIntervalMs != 1000 || cfg.Gravity.StepMs != 50 {
				t.Errorf("easy: unexpected gravity %+v", cfg.Gravity)
			}
		}},
		{DifficultyNormal, func(t *testing.T, cfg BlocksConfig) {
			if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.3 {
				t.Errorf("normal: unexpected difficulty %+v", cfg.Difficulty)
			}
			if cfg.Gravity.BaseIntervalMs != 800 {
				t.Errorf("normal: gravity should stay at the config value, got %+v", cfg.Gravity)
			}
		}},
		{DifficultyHard, func(t *testing.T, cfg BlocksConfig) {
			if cfg.Difficulty.InitialLevel != 0.7 {
				t.Errorf("hard: InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
			}
			if cfg.Gravity.BaseIntervalMs != 640 || cfg.Gravity.StepMs != 70 {
				t.Errorf("hard: unexpected gravity %+v", cfg.Gravity)
			}
			if cfg.Leveling.StartLevel < 3 {
				t.Errorf("hard: StartLevel = %d, expected at least 3", cfg.Leveling.StartLevel)
			}
		}},
		{DifficultyFixed, func(t *testing.T, cfg BlocksConfig) {
			if cfg.Difficulty.Enabled {
				t.Error("fixed: pressure progression should be disabled")
			}
			if cfg.Leveling.LinesPerLevel != 0 {
				t.Errorf("fixed: LinesPerLevel = %d, expected 0 (frozen)", cfg.Leveling.LinesPerLevel)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			ApplyBlocksPreset(&cfg, tc.preset)
			tc.check(t, cfg)
		})
	}
}

func TestIsFixedPreset(t *testing.T) {
	if !IsFixedPreset(DifficultyFixed) {
		t.Error("fixed should be a fixed preset")
	}
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, ""} {
		if IsFixedPreset(p) {
			t.Errorf("%q should not be a fixed preset", p)
		}
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "lines", MaxAt: 100},
		Scaling:      ScalingConfig{IntervalReductionMs: 50},
	})

	approx := func(got, want float64) bool {
		return math.Abs(got-want) < 1e-9
	}

	if got := mgr.Level(0, 0); !approx(got, 0.3) {
		t.Errorf("Level at 0 lines = %v, expected 0.3", got)
	}
	if got := mgr.Level(0, 50); !approx(got, 0.65) {
		t.Errorf("Level at 50 lines = %v, expected 0.65", got)
	}
	if got := mgr.Level(0, 100); !approx(got, 1.0) {
		t.Errorf("Level at 100 lines = %v, expected 1.0", got)
	}
	if got := mgr.Level(0, 250); !approx(got, 1.0) {
		t.Errorf("Level past max = %v, expected clamp at 1.0", got)
	}

	// Score is ignored under lines progression
	if got := mgr.Level(99999, 0); !approx(got, 0.3) {
		t.Errorf("Level should ignore score under lines progression, got %v", got)
	}

	// Disabled manager always reports the initial level
	mgr.SetEnabled(false)
	if got := mgr.Level(0, 100); !approx(got, 0.3) {
		t.Errorf("disabled Level = %v, expected 0.3", got)
	}
}

func TestDifficultyManagerScoreProgression(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
	})

	if got := mgr.Level(500, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at 500 score = %v, expected 0.5", got)
	}
	if got := mgr.Level(0, 500); got != 0.0 {
		t.Errorf("Level should ignore lines under score progression, got %v", got)
	}
}

func TestDifficultyManagerInterval(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "lines", MaxAt: 100},
		Scaling:      ScalingConfig{IntervalReductionMs: 50},
	})

	// No pressure: interval untouched
	if got := mgr.Interval(800, 100, 0, 0); got != 800 {
		t.Errorf("Interval at zero pressure = %d, expected 800", got)
	}

	// Full pressure: full reduction
	if got := mgr.Interval(800, 100, 0, 100); got != 750 {
		t.Errorf("Interval at max pressure = %d, expected 750", got)
	}

	// The floor is never crossed
	if got := mgr.Interval(120, 100, 0, 100); got != 100 {
		t.Errorf("Interval below floor = %d, expected clamp at 100", got)
	}
}

func TestDifficultyManagerSetInitialLevelClamps(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{Enabled: false})

	mgr.SetInitialLevel(1.8)
	if got := mgr.Level(0, 0); got != 1.0 {
		t.Errorf("Level = %v, expected clamp at 1.0", got)
	}

	mgr.SetInitialLevel(-0.5)
	if got := mgr.Level(0, 0); got != 0.0 {
		t.Errorf("Level = %v, expected clamp at 0.0", got)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if GetDefaultYAML("blocks") == nil {
		t.Error("expected embedded YAML for blocks")
	}
	if GetDefaultYAML("blocks_sprint") == nil {
		t.Error("expected embedded YAML for blocks_sprint")
	}
	if GetDefaultYAML("pinball") != nil {
		t.Error("expected nil for unknown game")
	}
}
