package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Palette maps core colors to lipgloss styles for one renderer.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the color styles on r. SSH sessions pass their own
// renderer so colors match the client terminal.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Palette{
		core.ColorDefault:     r.NewStyle(),
		core.ColorRed:         fg("1"),
		core.ColorGreen:       fg("2"),
		core.ColorYellow:      fg("3"),
		core.ColorCyan:        fg("6"),
		core.ColorWhite:       fg("7"),
		core.ColorBrightRed:   fg("9"),
		core.ColorBrightGreen: fg("10"),
		core.ColorBrightWhite: fg("15"),
		core.ColorGray:        fg("245"),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetGlyph(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if g.Color != startColor {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
