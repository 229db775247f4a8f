package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective rule set",
	Long: `Print the rule set a round would run with, as YAML.

The output reflects the full resolution chain: the --config path, the
user config in ~/.blockfall/configs, ./configs, then the embedded
defaults. A --difficulty preset is applied on top.

Examples:
  blockfall rules
  blockfall rules --config ./my-rules.yaml
  blockfall rules --difficulty hard > configs/blocks.yaml`,
	Run: runRules,
}

func init() {
	rulesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rulesCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runRules(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}

	if preset, ok := parsePreset(flagDifficulty); ok {
		config.ApplyBlocksPreset(&cfg, preset)
	} else if flagDifficulty != "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (expected easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding rules: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(string(out))
}

// parsePreset maps a CLI difficulty name to its preset.
func parsePreset(s string) (config.DifficultyPreset, bool) {
	switch s {
	case "easy":
		return config.DifficultyEasy, true
	case "normal":
		return config.DifficultyNormal, true
	case "hard":
		return config.DifficultyHard, true
	case "fixed":
		return config.DifficultyFixed, true
	}
	return "", false
}
