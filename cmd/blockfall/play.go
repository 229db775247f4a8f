package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. With no mode argument a selector
is shown for mode and starting level.

Controls:
  Left/Right/A/D  - Move piece
  Up/W/X          - Rotate clockwise
  Z               - Rotate counter-clockwise
  Down/S          - Soft drop
  Space           - Hard drop
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slow gravity, pressure builds to max over time
  normal - Start at 30% pressure, progresses to max
  hard   - Fast gravity from level 3, 70% starting pressure
  fixed  - No progression, stays at the configured speed

Examples:
  blockfall play
  blockfall play blocks
  blockfall play blocks_sprint
  blockfall play blocks --level 5
  blockfall play blocks --difficulty hard
  blockfall play blocks --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = configured default)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	blocks.SetConfigPath(flagConfig)
	blocks.SetDifficultyPreset(flagDifficulty)

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
			os.Exit(1)
		}
		if flagLevel > 0 {
			blocks.SetStartLevel(flagLevel)
		}
	} else {
		// Show mode/level selector
		selection, updatedCfg, selErr := tui.RunBlocksModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		gameID = "blocks"
		if selection.Mode == tui.BlocksModeSprint {
			gameID = "blocks_sprint"
		}
		level := flagLevel
		if selection.StartLevel > 0 {
			level = selection.StartLevel
		}
		if level > 0 {
			blocks.SetStartLevel(level)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Rounds finished during this run, printed on exit
	results := tui.NewResultLog()

	// Run the game
	if runErr := tui.Run(game, results, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	printSummary(results)
}

// printSummary prints the most recent finished round, if any.
func printSummary(results *tui.ResultLog) {
	rounds := results.Rounds("")
	if len(rounds) == 0 {
		return
	}

	last := rounds[0]
	fmt.Printf("%s: %d points, %d lines, level %d in %s\n",
		last.Mode, last.Score, last.Lines, last.Level, last.Duration.Round(time.Second))
}
