package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended (collision or full board)
	Won      bool // Whether the session ended because the board filled up
}

// Event is something notable that happened during a tick.
type Event int

const (
	EventAte       Event = iota + 1 // Snake consumed food
	EventCollided                   // Snake ran into itself
	EventBoardFull                  // No free cell left for food
	EventRestarted                  // Session was reset after game over
)

func (e Event) String() string {
	switch e {
	case EventAte:
		return "ate"
	case EventCollided:
		return "collided"
	case EventBoardFull:
		return "board_full"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // An ActionQuit was seen; the host should end the session
}

// Has reports whether the result carries the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

// RandomSource supplies uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}
