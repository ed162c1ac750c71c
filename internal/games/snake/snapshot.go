package snake

import "fmt"

// Snapshot captures the complete game state for determinism testing and
// for the headless sim command.
type Snapshot struct {
	Tick         uint64
	Score        int
	SnakeLen     int
	TargetLength int
	HeadX        int
	HeadY        int
	Dir          string
	FoodX        int
	FoodY        int
	HasFood      bool
	Phase        string
}

// Snapshot returns the current game snapshot for determinism verification.
func (s *Session) Snapshot() Snapshot {
	head := s.snake.Head()
	return Snapshot{
		Tick:         s.tick,
		Score:        s.score,
		SnakeLen:     s.snake.Len(),
		TargetLength: s.snake.TargetLength(),
		HeadX:        head.X,
		HeadY:        head.Y,
		Dir:          s.snake.LastApplied().String(),
		FoodX:        s.food.X,
		FoodY:        s.food.Y,
		HasFood:      s.hasFood,
		Phase:        s.phase.String(),
	}
}

func (sn Snapshot) String() string {
	return fmt.Sprintf("tick=%d score=%d len=%d target=%d head=(%d,%d) dir=%s food=(%d,%d) phase=%s",
		sn.Tick, sn.Score, sn.SnakeLen, sn.TargetLength, sn.HeadX, sn.HeadY, sn.Dir, sn.FoodX, sn.FoodY, sn.Phase)
}
