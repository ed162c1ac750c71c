package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2 // HUD line plus separator

// Glyphs used on the playfield.
const (
	glyphHead = '█'
	glyphBody = '▓'
	glyphFood = '●'
)

// layout describes where the playfield lands on a screen.
type layout struct {
	cellW    int
	originX  int // Screen column of grid x=0
	originY  int // Screen row of grid y=0
	box      core.Rect
	tooSmall bool
}

// computeLayout centers the bordered playfield below the HUD. With cellWidth
// 0, cells take two columns when they fit (terminal glyphs are about twice
// as tall as wide).
func computeLayout(grid core.Grid, cellWidth, screenW, screenH int) layout {
	fits := func(cw int) bool {
		return grid.Width*cw+2 <= screenW && grid.Height+2+hudHeight <= screenH
	}

	cw := cellWidth
	switch {
	case cw == 0 && fits(2):
		cw = 2
	case cw == 0:
		cw = 1
	}

	if !fits(cw) {
		return layout{cellW: cw, tooSmall: true}
	}

	boxW := grid.Width*cw + 2
	boxH := grid.Height + 2
	boxX := (screenW - boxW) / 2
	return layout{
		cellW:   cw,
		originX: boxX + 1,
		originY: hudHeight + 1,
		box:     core.NewRect(boxX, hudHeight, boxW, boxH),
	}
}

// Render draws the game to the screen.
func (s *Session) Render(dst *core.Screen) {
	DrawBoard(dst, s.Board(), s.cellWidth)
}

// DrawBoard renders a board view: HUD, bordered playfield and the end of
// session overlays. cellWidth 0 picks the widest layout that fits.
func DrawBoard(dst *core.Screen, b Board, cellWidth int) {
	dst.Clear()
	renderHUD(dst, b)

	lay := computeLayout(b.Grid, cellWidth, dst.Width(), dst.Height())
	if lay.tooSmall {
		need := fmt.Sprintf("Need %dx%d", b.Grid.Width*lay.cellW+2, b.Grid.Height+2+hudHeight)
		renderOverlay(dst, "Window too small", need)
		return
	}

	dst.DrawBox(lay.box, core.ColorGray)

	if b.HasFood {
		drawCell(dst, lay, b.Food, glyphFood, core.ColorBrightRed)
	}

	// Tail first so the head wins if a collision frame overlaps
	for i := len(b.Body) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, lay, b.Body[i], glyphHead, core.ColorBrightGreen)
		} else {
			drawCell(dst, lay, b.Body[i], glyphBody, core.ColorGreen)
		}
	}

	switch b.Phase {
	case PhaseOver:
		renderOverlay(dst, "GAME OVER!", "Press Enter to restart")
	case PhaseWon:
		renderOverlay(dst, "Board full. You win!", fmt.Sprintf("Final Score: %d", b.Score))
	}
}

func drawCell(dst *core.Screen, lay layout, c core.Cell, r rune, color core.Color) {
	x := lay.originX + c.X*lay.cellW
	y := lay.originY + c.Y
	for i := 0; i < lay.cellW; i++ {
		dst.SetColored(x+i, y, r, color)
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, b Board) {
	hud := fmt.Sprintf(" %s | Score: %d  Length: %d", b.Title, b.Score, len(b.Body))
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
