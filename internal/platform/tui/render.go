package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockpilot/internal/core"
)

// ScreenRenderer turns Screen buffers into styled strings for one output.
// SSH sessions get their own renderer so colors match the client terminal.
type ScreenRenderer struct {
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer builds styles for r. A nil r uses the default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	palette := core.Palette()
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = r.NewStyle()
	for _, c := range palette {
		styles[c] = r.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return &ScreenRenderer{styles: styles}
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells with the same color share one escape sequence.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := sr.styles[color]
			if !ok {
				style = sr.styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders with the default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultScreenRenderer.Render(s)
}

var defaultScreenRenderer = NewScreenRenderer(nil)
