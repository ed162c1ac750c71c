package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var allDirs = []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

// place overwrites the snake body and marks dir as the last applied direction.
func place(s *Snake, dir core.Direction, body ...core.Cell) {
	s.body = append([]core.Cell(nil), body...)
	s.targetLength = len(body)
	s.direction = dir
	s.lastApplied = dir
}

func TestSetDirectionAntiReversal(t *testing.T) {
	grid := core.NewGrid(40, 30)

	for _, last := range allDirs {
		for _, requested := range allDirs {
			s := NewSnake(grid)
			place(s, last, core.Cell{X: 10, Y: 10})

			accepted := s.SetDirection(requested)

			if requested == last.Opposite() {
				if accepted || s.Direction() != last {
					t.Errorf("last=%v requested=%v: reversal should be ignored, direction is %v", last, requested, s.Direction())
				}
				continue
			}
			if !accepted || s.Direction() != requested {
				t.Errorf("last=%v requested=%v: direction should change, got %v", last, requested, s.Direction())
			}
		}
	}
}

func TestSetDirectionChecksLastAppliedNotPending(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 30))

	// Up then Down in the same frame: Down is only the opposite of the pending
	// direction, not of the last applied one (Right), so it is accepted.
	s.SetDirection(core.DirUp)
	s.SetDirection(core.DirDown)
	if s.Direction() != core.DirDown {
		t.Fatalf("last valid request should win, got %v", s.Direction())
	}

	s.Step()
	if s.Head() != (core.Cell{X: 20, Y: 16}) {
		t.Errorf("head = %v, expected (20,16)", s.Head())
	}
}

func TestStepWrapsAllEdges(t *testing.T) {
	grid := core.NewGrid(40, 30)

	tests := []struct {
		name     string
		start    core.Cell
		dir      core.Direction
		expected core.Cell
	}{
		{"right edge", core.Cell{X: 39, Y: 7}, core.DirRight, core.Cell{X: 0, Y: 7}},
		{"left edge", core.Cell{X: 0, Y: 7}, core.DirLeft, core.Cell{X: 39, Y: 7}},
		{"bottom edge", core.Cell{X: 12, Y: 29}, core.DirDown, core.Cell{X: 12, Y: 0}},
		{"top edge", core.Cell{X: 12, Y: 0}, core.DirUp, core.Cell{X: 12, Y: 29}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(grid)
			place(s, tc.dir, tc.start)

			if got := s.Step(); got != Continue {
				t.Fatalf("Step() = %v, expected continue", got)
			}
			if s.Head() != tc.expected {
				t.Errorf("head = %v, expected %v", s.Head(), tc.expected)
			}
		})
	}
}

func TestThreeRightStepsFromCenter(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 30))

	if s.Head() != (core.Cell{X: 20, Y: 15}) {
		t.Fatalf("start head = %v, expected (20,15)", s.Head())
	}
	if s.Direction() != core.DirRight || s.LastApplied() != core.DirRight {
		t.Fatalf("snake should start facing right")
	}

	expected := []core.Cell{{X: 21, Y: 15}, {X: 22, Y: 15}, {X: 23, Y: 15}}
	for i, want := range expected {
		s.Step()
		if s.Head() != want {
			t.Errorf("step %d: head = %v, expected %v", i+1, s.Head(), want)
		}
		if s.Len() != 1 {
			t.Errorf("step %d: len = %d, expected 1", i+1, s.Len())
		}
	}
}

func TestReversalIgnoredOnLongSnake(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 30))
	place(s, core.DirRight, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5}, core.Cell{X: 3, Y: 5})

	s.SetDirection(core.DirLeft)
	if got := s.Step(); got != Continue {
		t.Fatalf("Step() = %v, expected continue", got)
	}

	if s.Head() != (core.Cell{X: 6, Y: 5}) {
		t.Errorf("head = %v, expected (6,5)", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("len = %d, expected 3", s.Len())
	}
}

func TestGrowthIsOneTickDelayed(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 30))
	s.Step()

	s.Grow()
	if s.TargetLength() != 2 || s.Len() != 1 {
		t.Fatalf("after Grow: target=%d len=%d, expected 2 and 1", s.TargetLength(), s.Len())
	}

	s.Step()
	if s.Len() != 2 {
		t.Errorf("after growing step: len = %d, expected 2", s.Len())
	}

	s.Step()
	if s.Len() != 2 {
		t.Errorf("after plain step: len = %d, expected 2", s.Len())
	}

	body := s.Body()
	if body[0] != (core.Cell{X: 23, Y: 15}) || body[1] != (core.Cell{X: 22, Y: 15}) {
		t.Errorf("body = %v, expected [(23,15) (22,15)]", body)
	}
}

func TestSelfCollisionLeavesBodyUnchanged(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 30))
	place(s, core.DirUp,
		core.Cell{X: 5, Y: 5}, // Head
		core.Cell{X: 5, Y: 6},
		core.Cell{X: 6, Y: 6},
		core.Cell{X: 6, Y: 5},
		core.Cell{X: 6, Y: 4},
	)
	before := s.Body()

	// Right from (5,5) lands on (6,5)
	s.SetDirection(core.DirRight)
	if got := s.Step(); got != Collided {
		t.Fatalf("Step() = %v, expected collided", got)
	}

	after := s.Body()
	if len(after) != len(before) {
		t.Fatalf("body length changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("body[%d] changed from %v to %v", i, before[i], after[i])
		}
	}
	if s.LastApplied() != core.DirUp {
		t.Errorf("last applied direction should not change on collision, got %v", s.LastApplied())
	}
}

func TestCollisionCountsTheVacatingTail(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 30))
	// A 2x2 loop; the tail at (1,2) would move away this step but still counts.
	place(s, core.DirLeft,
		core.Cell{X: 1, Y: 1},
		core.Cell{X: 2, Y: 1},
		core.Cell{X: 2, Y: 2},
		core.Cell{X: 1, Y: 2},
	)

	s.SetDirection(core.DirDown)
	if got := s.Step(); got != Collided {
		t.Errorf("moving onto the tail should collide, got %v", got)
	}
}

func TestCollisionAcrossWrappedEdge(t *testing.T) {
	s := NewSnake(core.NewGrid(10, 10))
	place(s, core.DirRight,
		core.Cell{X: 9, Y: 0},
		core.Cell{X: 8, Y: 0},
		core.Cell{X: 0, Y: 0},
	)

	if got := s.Step(); got != Collided {
		t.Errorf("wrapping onto own body should collide, got %v", got)
	}
}

func TestSnakeReset(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 30))
	place(s, core.DirUp, core.Cell{X: 1, Y: 1}, core.Cell{X: 1, Y: 2})
	s.Grow()

	s.Reset()

	if s.Len() != 1 || s.TargetLength() != 1 {
		t.Errorf("after Reset: len=%d target=%d, expected 1 and 1", s.Len(), s.TargetLength())
	}
	if s.Head() != (core.Cell{X: 20, Y: 15}) {
		t.Errorf("after Reset: head = %v, expected (20,15)", s.Head())
	}
	if s.Direction() != core.DirRight || s.LastApplied() != core.DirRight {
		t.Errorf("after Reset: direction=%v last=%v, expected right", s.Direction(), s.LastApplied())
	}
}

func TestBodyIsACopy(t *testing.T) {
	s := NewSnake(core.NewGrid(40, 30))
	body := s.Body()
	body[0] = core.Cell{X: 0, Y: 0}

	if s.Head() != (core.Cell{X: 20, Y: 15}) {
		t.Error("mutating Body() result should not affect the snake")
	}
	if !s.Occupies(core.Cell{X: 20, Y: 15}) || s.Occupies(core.Cell{X: 0, Y: 0}) {
		t.Error("Occupies should reflect the real body")
	}
}
