package game

import (
	"fmt"

	"github.com/vovakirdan/snack/internal/core"
)

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Play field border
	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, g.cfg.GridW+2, g.cfg.GridH+2))

	g.renderSnake(dst)

	if g.foodActive {
		dst.SetCell(g.offsetX+g.food.X, g.offsetY+g.food.Y, '*', core.ColorBrightRed)
	}

	switch {
	case g.phase == PhaseEnded && g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
	case g.phase == PhaseEnded:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score))
	case g.phase == PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snack — Score: %d", g.score)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderSnake draws the snake, head before body.
func (g *Game) renderSnake(dst *core.Screen) {
	for i, seg := range g.snake.Positions() {
		x := g.offsetX + seg.X
		y := g.offsetY + seg.Y
		if i == 0 {
			dst.SetCell(x, y, 'O', core.ColorGreen)
		} else {
			dst.SetCell(x, y, 'o', core.ColorBrightGreen)
		}
	}
}

// renderOverlay draws a centered boxed two-line message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
