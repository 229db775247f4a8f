package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blocks"
)

// BlocksMode represents the selected game mode.
type BlocksMode int

const (
	BlocksModeMarathon BlocksMode = iota
	BlocksModeSprint
)

// startLevelCount is how many starting levels the selector offers.
const startLevelCount = 15

// BlocksSelection holds the user's selection from the mode menu.
type BlocksSelection struct {
	Mode       BlocksMode
	StartLevel int // 0 = configured default, 1-15 = specific level
}

// BlocksModeModel lets users choose game mode and starting level.
type BlocksModeModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     BlocksSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewBlocksModeModel creates a new mode selection model.
func NewBlocksModeModel(width, height int) BlocksModeModel {
	return BlocksModeModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m BlocksModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BlocksModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BlocksModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m BlocksModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Marathon, Sprint, Select Start Level
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Marathon
			m.choosing = false
			m.selection = BlocksSelection{Mode: BlocksModeMarathon, StartLevel: 0}
			return m, tea.Quit
		case 1: // Sprint
			m.choosing = false
			m.selection = BlocksSelection{Mode: BlocksModeSprint, StartLevel: 0}
			return m, tea.Quit
		case 2: // Select Start Level
			m.inLevelSelect = true
			m.levelCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m BlocksModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < startLevelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = BlocksSelection{
			Mode:       BlocksModeMarathon,
			StartLevel: m.levelCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode/level selection.
func (m BlocksModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m BlocksModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B L O C K F A L L", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Marathon (play until top out)",
		"Sprint (clear 40 lines)",
		"Select Start Level...",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m BlocksModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT START LEVEL", m.width))
	b.WriteString("\n\n")

	tuning := blocks.DefaultTuning()
	for i := 0; i < startLevelCount; i++ {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		level := i + 1
		interval := tuning.DropInterval(level) / time.Millisecond
		line := fmt.Sprintf("%sLevel %2d (%dms per row)", cursor, level, interval)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BlocksModeModel) Selected() *BlocksSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m BlocksModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m BlocksModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BlocksModeModel) WantsBack() bool {
	return m.back
}

// RunBlocksModeSelector runs the mode selection and returns the selection.
func RunBlocksModeSelector(cfg core.RuntimeConfig) (*BlocksSelection, core.RuntimeConfig, error) {
	model := NewBlocksModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(BlocksModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
