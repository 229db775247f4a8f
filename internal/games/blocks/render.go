package blocks

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	GhostChar = '░'
)

// Sidebar layout next to the well.
const (
	sidebarGap   = 2
	sidebarWidth = 16
)

// kindColors maps shapes to their conventional colors.
var kindColors = [KindCount]core.Color{
	KindI: core.ColorBrightCyan,
	KindO: core.ColorBrightYellow,
	KindT: core.ColorBrightMagenta,
	KindS: core.ColorBrightGreen,
	KindZ: core.ColorBrightRed,
	KindJ: core.ColorBrightBlue,
	KindL: core.ColorOrange,
}

// colorForCell recovers the display color of a settled cell.
func colorForCell(c Cell) core.Color {
	if c == CellEmpty {
		return core.ColorDefault
	}
	return kindColors[Kind(c-1)]
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.screenTooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	snap := g.session.Snapshot()
	g.renderWell(dst, snap)
	g.renderSidebar(dst, snap)
	g.renderHint(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Target Reached!", fmt.Sprintf("Final Score: %d", snap.Score))
	case snap.Phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeSprint {
		hud = fmt.Sprintf(" Blockfall (Sprint)  Lines: %d/%d", g.session.Lines(), g.sprintTarget)
	} else {
		hud = fmt.Sprintf(" Blockfall  Score: %d  Level: %d", g.session.Score(), g.session.Level())
	}
	dst.DrawText(0, 0, hud)
}

// renderWell draws the well frame, the settled cells, the falling piece
// and its ghost. Each board cell is two runes wide so the well reads
// roughly square in a terminal.
func (g *Game) renderWell(dst *core.Screen, snap Snapshot) {
	frameW := BoardWidth*2 + 2
	frameH := BoardHeight + 2
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, frameW, frameH))

	// Ghost first: the grid pass paints settled and active cells over it,
	// so the shadow only shows through empty cells.
	if g.cfg.Visuals.ShowGhost && snap.HasActive {
		for _, c := range snap.GhostCells {
			g.drawBoardCell(dst, c.Row, c.Col, GhostChar, core.ColorGray)
		}
	}

	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			cell := snap.Grid[row][col]
			if cell == CellEmpty {
				continue
			}
			g.drawBoardCell(dst, row, col, BlockChar, colorForCell(cell))
		}
	}
}

// drawBoardCell paints one board cell as a two-rune pair. Cells above the
// well (negative rows) are clipped.
func (g *Game) drawBoardCell(dst *core.Screen, row, col int, r rune, c core.Color) {
	if row < 0 || row >= BoardHeight || col < 0 || col >= BoardWidth {
		return
	}
	x := g.boardX + 1 + col*2
	y := g.boardY + 1 + row
	dst.SetCell(x, y, r, c)
	dst.SetCell(x+1, y, r, c)
}

// renderSidebar draws the next-piece preview and the round counters to
// the right of the well.
func (g *Game) renderSidebar(dst *core.Screen, snap Snapshot) {
	x := g.sidebarX
	y := g.boardY + 1

	if g.cfg.Visuals.ShowNext {
		dst.DrawText(x, y, "Next")
		box := core.NewRect(x, y+1, PieceCells*2+2, 4)
		dst.DrawBox(box)
		for _, off := range pieceShapes[snap.Next][0] {
			px := box.X + 1 + off.Col*2
			py := box.Y + 1 + off.Row
			dst.SetCell(px, py, BlockChar, kindColors[snap.Next])
			dst.SetCell(px+1, py, BlockChar, kindColors[snap.Next])
		}
		y += 6
	}

	dst.DrawText(x, y, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(x, y+1, fmt.Sprintf("Level  %d", snap.Level))
	if g.mode == ModeSprint {
		dst.DrawText(x, y+2, fmt.Sprintf("Lines  %d/%d", snap.Lines, g.sprintTarget))
	} else {
		dst.DrawText(x, y+2, fmt.Sprintf("Lines  %d", snap.Lines))
	}
	dst.DrawText(x, y+3, fmt.Sprintf("Speed  %dms", g.dropMs))
}

// renderHint draws the key reference under the well when there is room.
func (g *Game) renderHint(dst *core.Screen) {
	hintY := g.boardY + BoardHeight + 2
	if hintY >= dst.Height() {
		return
	}
	dst.DrawTextCentered(hintY, "left/right move  z/x rotate  down soft  space drop  p pause")
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
