// Package host drives a snake session outside of a terminal UI: it polls an
// input source, advances the session at a fixed rate and hands every
// resulting board to a renderer.
package host

import (
	"context"
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// InputSource yields the actions that arrived since the previous poll,
// oldest first.
type InputSource interface {
	Poll() []core.Action
}

// Renderer presents a board. It is called once per tick even when nothing
// changed.
type Renderer interface {
	Draw(board snake.Board)
}

// Scheduler invokes tick at a fixed rate until tick returns false or ctx is
// done. Ticks never overlap and run in order.
type Scheduler interface {
	Run(ctx context.Context, tick func() bool) error
}

// Loop wires a session to its collaborators.
type Loop struct {
	Session   *snake.Session
	Input     InputSource
	Renderer  Renderer
	Scheduler Scheduler

	// MaxTicks stops the loop after that many ticks; 0 means no limit.
	MaxTicks int

	// OnResult, if set, observes every step result.
	OnResult func(core.StepResult)
}

// Run draws the initial board and then steps the session once per scheduled
// tick. It returns the last step result. Cancellation of ctx is not treated
// as an error.
func (l *Loop) Run(ctx context.Context) (core.StepResult, error) {
	last := core.StepResult{State: l.Session.State()}
	l.draw()

	ticks := 0
	frame := core.NewInputFrame()
	err := l.Scheduler.Run(ctx, func() bool {
		frame.Clear()
		if l.Input != nil {
			for _, a := range l.Input.Poll() {
				frame.Set(a)
			}
		}

		last = l.Session.Step(frame)
		ticks++
		l.draw()

		if l.OnResult != nil {
			l.OnResult(last)
		}
		if last.Quit {
			return false
		}
		return l.MaxTicks == 0 || ticks < l.MaxTicks
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return last, err
}

func (l *Loop) draw() {
	if l.Renderer != nil {
		l.Renderer.Draw(l.Session.Board())
	}
}
