package blocks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon" // play until the well fills up
	ModeSprint   Mode = "sprint"   // race to a fixed number of lines
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// selectedStartLevel stores the start level picked in the menu or via CLI.
// Consumed by the next marathon Reset.
var selectedStartLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the starting level for the next marathon round.
// 0 means use the configured start level.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// Game adapts a Session to the platform game interface: it translates
// input frames into commands, drives gravity from the tick counter and
// draws the well. All rule logic lives in the Session.
type Game struct {
	mode Mode

	session *Session
	rng     *rand.Rand
	tick    uint64

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BlocksConfig
	difficulty *config.DifficultyManager

	// Gravity clock: the session ticks once every framesPerDrop frames.
	framesPerDrop   int
	framesUntilDrop int
	dropMs          int // effective interval shown in the sidebar

	sprintTarget int
	won          bool
	paused       bool

	// Layout (computed from screen size)
	boardX, boardY int
	sidebarX       int
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a marathon mode game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewSprint creates a sprint mode game.
func NewSprint() *Game {
	return &Game{mode: ModeSprint}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
	registry.Register("blocks_sprint", func() registry.Game {
		return NewSprint()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSprint {
		return "blocks_sprint"
	}
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSprint {
		return "Blockfall (Sprint)"
	}
	return "Blockfall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Apply selected start level (marathon only)
	start := cfg.Leveling.StartLevel
	if g.mode == ModeMarathon && selectedStartLevel > 0 {
		start = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.session = NewSession(tuningFromConfig(cfg), g.rng, start)

	g.tick = 0
	g.won = false
	g.paused = false
	g.sprintTarget = cfg.Sprint.TargetLines

	g.calculateLayout()
	g.refreshGravity()
	g.framesUntilDrop = g.framesPerDrop
}

// tuningFromConfig maps the loaded configuration onto engine tuning.
func tuningFromConfig(cfg config.BlocksConfig) Tuning {
	return Tuning{
		LineClearScores: append([]int(nil), cfg.Scoring.LineClears...),
		SoftDropBonus:   cfg.Scoring.SoftDropBonus,
		HardDropBonus:   cfg.Scoring.HardDropBonus,
		LinesPerLevel:   cfg.Leveling.LinesPerLevel,
		StartLevel:      cfg.Leveling.StartLevel,
		BaseInterval:    time.Duration(cfg.Gravity.BaseIntervalMs) * time.Millisecond,
		IntervalStep:    time.Duration(cfg.Gravity.StepMs) * time.Millisecond,
		MinInterval:     time.Duration(cfg.Gravity.MinIntervalMs) * time.Millisecond,
	}
}

// calculateLayout centers the well and the sidebar on the screen.
func (g *Game) calculateLayout() {
	boardFrameW := BoardWidth*2 + 2 // two runes per cell plus borders
	totalW := boardFrameW + sidebarGap + sidebarWidth

	g.minScreenW = totalW
	g.minScreenH = BoardHeight + 3 // HUD row, borders
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH

	g.boardX = core.Max((g.runtime.ScreenW-totalW)/2, 0)
	g.boardY = 1
	g.sidebarX = g.boardX + boardFrameW + sidebarGap
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.isOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.isOver() || g.paused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(input)
	g.checkSprintWin()
	if g.isOver() {
		return core.StepResult{State: g.State()}
	}

	// Gravity
	g.framesUntilDrop--
	if g.framesUntilDrop <= 0 {
		g.session.Tick()
		g.refreshGravity()
		g.framesUntilDrop = g.framesPerDrop
		g.checkSprintWin()
	}

	return core.StepResult{State: g.State()}
}

// applyInput forwards triggered actions to the session. The order is
// fixed so frames carrying several actions resolve deterministically:
// rotations first, then shifts, then drops.
func (g *Game) applyInput(input core.InputFrame) {
	if input.Has(core.ActionRotateCCW) {
		g.session.Apply(RotateCCW)
	}
	if input.Has(core.ActionRotateCW) {
		g.session.Apply(RotateCW)
	}
	if input.Has(core.ActionLeft) {
		g.session.Apply(MoveLeft)
	}
	if input.Has(core.ActionRight) {
		g.session.Apply(MoveRight)
	}
	if input.Has(core.ActionSoftDrop) {
		g.session.Apply(SoftDrop)
	}
	if input.Has(core.ActionHardDrop) {
		g.session.Apply(HardDrop)
	}
}

// checkSprintWin ends a sprint round once the line target is reached.
func (g *Game) checkSprintWin() {
	if g.mode == ModeSprint && !g.won && g.session.Lines() >= g.sprintTarget {
		g.won = true
	}
}

// refreshGravity recomputes how many frames pass between gravity ticks.
// The session supplies the level interval; the difficulty manager may
// shave it further as score and lines accumulate.
func (g *Game) refreshGravity() {
	ms := int(g.session.DropInterval() / time.Millisecond)
	if g.difficulty.IsEnabled() {
		ms = g.difficulty.Interval(ms, g.cfg.Gravity.MinIntervalMs, g.session.Score(), g.session.Lines())
	}

	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	frames := ms * rate / 1000
	if frames < 1 {
		frames = 1
	}
	g.framesPerDrop = frames
	g.dropMs = ms
}

// isOver reports whether the round has ended, by loss or by sprint win.
func (g *Game) isOver() bool {
	return g.won || g.session.Over()
}

// Lines returns the total cleared rows of the current round.
func (g *Game) Lines() int {
	return g.session.Lines()
}

// Level returns the current level of the round.
func (g *Game) Level() int {
	return g.session.Level()
}

// Snapshot returns the underlying session snapshot for determinism
// verification.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.isOver(),
		Paused:   g.paused,
	}
}
