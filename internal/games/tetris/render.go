package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockpilot/internal/core"
	"github.com/vovakirdan/blockpilot/internal/games/tetris/board"
)

const (
	cellWidth    = 2 // Terminal columns per board cell
	sidebarGap   = 2
	sidebarWidth = 16
	hudHeight    = 1
)

const (
	blockRune = '█'
	ghostRune = '░'
)

// requiredWidth is the narrowest screen the game can be drawn on.
func (g *Game) requiredWidth() int {
	return g.cfg.Board.Width*cellWidth + 2 + sidebarGap + sidebarWidth
}

// requiredHeight is the shortest screen the game can be drawn on.
func (g *Game) requiredHeight() int {
	return g.cfg.Board.Height + 2 + hudHeight
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < g.requiredWidth() || height < g.requiredHeight()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.requiredWidth(), g.requiredHeight()))
		return
	}

	ox := (dst.Width() - g.requiredWidth()) / 2
	oy := hudHeight + (dst.Height()-g.requiredHeight())/2

	g.renderHUD(dst)
	dst.DrawBoxColored(core.NewRect(ox, oy, g.cfg.Board.Width*cellWidth+2, g.cfg.Board.Height+2), core.ColorGray)
	g.renderWell(dst, ox+1, oy+1)
	g.renderSidebar(dst, ox+g.cfg.Board.Width*cellWidth+2+sidebarGap, oy)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s · Score: %d  Lines: %d  Level: %d", g.Title(), g.score, g.lines, g.level)
	dst.DrawText(0, 0, hud)
}

// renderWell draws locked blocks, the ghost and the falling piece with the
// top-left cell at (x0, y0).
func (g *Game) renderWell(dst *core.Screen, x0, y0 int) {
	plot := func(x, y int, r rune, c core.Color) {
		for i := range cellWidth {
			dst.SetColored(x0+x*cellWidth+i, y0+y, r, c)
		}
	}

	for x, y := range g.board.Occupied() {
		plot(x, y, blockRune, g.board.At(x, y).Kind().Color())
	}

	if ghost, ok := g.board.Landing(); ok && !g.gameOver {
		for _, c := range ghost.Cells {
			plot(c.X, c.Y, ghostRune, core.ColorGray)
		}
	}
	if p, ok := g.board.Falling(); ok {
		for _, c := range p.Cells {
			plot(c.X, c.Y, blockRune, p.Kind.Color())
		}
	}
}

// renderSidebar draws the next piece, counters and pilot status.
func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, "NEXT")
	g.renderPreview(dst, x, y+1, g.next)

	row := y + 5
	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.score},
		{"LINES", g.lines},
		{"LEVEL", g.level},
		{"PIECES", g.pieces},
	}
	for _, s := range stats {
		dst.DrawText(x, row, s.label)
		dst.DrawTextColored(x, row+1, fmt.Sprintf("%d", s.value), core.ColorBrightWhite)
		row += 2
	}

	row++
	dst.DrawText(x, row, "PILOT")
	dst.DrawText(x, row+1, g.pilot.Name())
	if g.autoplay {
		dst.DrawTextColored(x, row+2, "[AUTO]", core.ColorBrightGreen)
	} else {
		dst.DrawTextColored(x, row+2, "[A] to engage", core.ColorGray)
	}
}

// renderPreview draws kind k in its spawn orientation.
func (g *Game) renderPreview(dst *core.Screen, x, y int, k board.Kind) {
	preview := board.New(4, 2)
	if err := preview.Spawn(k); err != nil {
		return
	}
	p, _ := preview.Falling()
	minY := p.Cells[0].Y
	for _, c := range p.Cells {
		minY = min(minY, c.Y)
	}
	for _, c := range p.Cells {
		for i := range cellWidth {
			dst.SetColored(x+c.X*cellWidth+i, y+c.Y-minY, blockRune, k.Color())
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.Fill(box, ' ', core.ColorDefault)
	dst.DrawBoxColored(box, core.ColorYellow)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
