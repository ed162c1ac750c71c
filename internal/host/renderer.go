package host

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ScreenRenderer draws boards into an off-screen buffer. When Out is set,
// every frame is also written to it as plain text.
type ScreenRenderer struct {
	Out io.Writer

	screen    *core.Screen
	cellWidth int
	frames    int
}

// NewScreenRenderer creates a renderer with a width x height buffer.
func NewScreenRenderer(width, height, cellWidth int) *ScreenRenderer {
	return &ScreenRenderer{
		screen:    core.NewScreen(width, height),
		cellWidth: cellWidth,
	}
}

// Draw renders the board.
func (r *ScreenRenderer) Draw(board snake.Board) {
	snake.DrawBoard(r.screen, board, r.cellWidth)
	r.frames++
	if r.Out != nil {
		fmt.Fprintf(r.Out, "%s\n", r.screen.String())
	}
}

// Screen returns the buffer holding the most recent frame.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Frames returns how many boards have been drawn.
func (r *ScreenRenderer) Frames() int {
	return r.frames
}
