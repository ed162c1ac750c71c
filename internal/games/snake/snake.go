package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// StepOutcome is the result of advancing the snake by one cell.
type StepOutcome int

const (
	Continue StepOutcome = iota
	Collided
)

func (o StepOutcome) String() string {
	if o == Collided {
		return "collided"
	}
	return "continue"
}

// Snake owns movement, direction, growth and self-collision on a wrapping grid.
type Snake struct {
	grid         core.Grid
	body         []core.Cell // Head at index 0
	targetLength int
	direction    core.Direction // Pending direction for the next step
	lastApplied  core.Direction // Direction used by the most recent step
}

// NewSnake creates a snake of length 1 at the grid center, facing right.
func NewSnake(grid core.Grid) *Snake {
	s := &Snake{grid: grid}
	s.Reset()
	return s
}

// Reset puts the snake back to its starting state.
func (s *Snake) Reset() {
	s.body = []core.Cell{s.grid.Center()}
	s.targetLength = 1
	s.direction = core.DirRight
	s.lastApplied = core.DirRight
}

// SetDirection requests a new direction for the next step.
// A request opposite to the last applied direction is ignored.
func (s *Snake) SetDirection(d core.Direction) bool {
	if d.IsOpposite(s.lastApplied) {
		return false
	}
	s.direction = d
	return true
}

// Step moves the head one cell, wrapping at the edges.
//
// The new head is checked against every segment except the current head,
// including the tail cell that this step would vacate. On collision the body
// is left as it was.
func (s *Snake) Step() StepOutcome {
	dx, dy := s.direction.Delta()
	next := s.grid.Wrap(s.Head().Add(dx, dy))

	for _, seg := range s.body[1:] {
		if seg == next {
			return Collided
		}
	}

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = next
	if len(s.body) > s.targetLength {
		s.body = s.body[:len(s.body)-1]
	}

	s.lastApplied = s.direction
	return Continue
}

// Grow raises the target length by one. The body catches up on the next step.
func (s *Snake) Grow() {
	s.targetLength++
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// TargetLength returns the length the snake is growing toward.
func (s *Snake) TargetLength() int {
	return s.targetLength
}

// Direction returns the pending direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// LastApplied returns the direction used by the most recent step.
func (s *Snake) LastApplied() core.Direction {
	return s.lastApplied
}

// Occupies reports whether any body segment is on c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}
