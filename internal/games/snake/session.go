// Package snake implements the classic grid snake: a wrapping playfield, one
// piece of food at a time, and a session that ends when the snake bites itself.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Phase is the session state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseOver          // Self-collision; waits for restart
	PhaseWon           // No free cell left for food; waits for restart
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Variant identifiers.
const (
	IDClassic = "snake"
	IDCompact = "snake_compact"
)

// Compact variant grid: fits an 80x24 terminal at two columns per cell
// with the HUD, border and help line.
const (
	compactWidth  = 38
	compactHeight = 19
)

// Board is a read-only view of the playfield handed to renderers.
type Board struct {
	Title     string
	Grid      core.Grid
	Body      []core.Cell // Head first
	Food      core.Cell
	HasFood   bool
	Score     int
	Phase     Phase
	Direction core.Direction
}

// Session orchestrates the per-tick update order, scoring and restart.
type Session struct {
	id            string
	title         string
	grid          core.Grid
	pointsPerFood int
	cellWidth     int

	rng     core.RandomSource
	snake   *Snake
	spawner *FoodSpawner
	food    core.Cell
	hasFood bool
	score   int
	phase   Phase
	tick    uint64
	events  []core.Event
}

// Option customizes a Session built with NewSession.
type Option func(*Session)

// WithPointsPerFood sets the score awarded per food.
func WithPointsPerFood(points int) Option {
	return func(s *Session) {
		s.pointsPerFood = points
	}
}

// WithCellWidth fixes how many terminal columns one cell takes (1 or 2).
func WithCellWidth(w int) Option {
	return func(s *Session) {
		s.cellWidth = w
	}
}

// WithIdentity sets the registry id and display title.
func WithIdentity(id, title string) Option {
	return func(s *Session) {
		s.id = id
		s.title = title
	}
}

// NewSession creates a session on grid drawing food positions from rng.
// The session starts in the playing phase with food already placed.
func NewSession(grid core.Grid, rng core.RandomSource, opts ...Option) *Session {
	s := &Session{
		id:            IDClassic,
		title:         "Snake",
		grid:          grid,
		pointsPerFood: 10,
		rng:           rng,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snake = NewSnake(grid)
	s.spawner = NewFoodSpawner(grid, rng)
	s.restart()
	s.events = nil
	return s
}

// New creates the classic variant sized from settings.
func New(settings config.Settings) *Session {
	return fromSettings(core.NewGrid(settings.Grid.Width, settings.Grid.Height), settings,
		WithIdentity(IDClassic, "Snake"))
}

// NewCompact creates the variant sized for a standard 80x24 terminal.
func NewCompact(settings config.Settings) *Session {
	return fromSettings(core.NewGrid(compactWidth, compactHeight), settings,
		WithIdentity(IDCompact, "Snake (Compact)"))
}

func fromSettings(grid core.Grid, settings config.Settings, opts ...Option) *Session {
	opts = append(opts,
		WithPointsPerFood(settings.Scoring.PointsPerFood),
		WithCellWidth(settings.Render.CellWidth),
	)
	return NewSession(grid, rand.New(rand.NewSource(1)), opts...)
}

func init() {
	registry.Register(IDClassic, func(settings config.Settings) registry.Game {
		return New(settings)
	})
	registry.Register(IDCompact, func(settings config.Settings) registry.Game {
		return NewCompact(settings)
	})
}

// ID returns the variant identifier.
func (s *Session) ID() string {
	return s.id
}

// Title returns the display name.
func (s *Session) Title() string {
	return s.title
}

// Reset reseeds the food placement and starts a fresh session.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.spawner = NewFoodSpawner(s.grid, s.rng)
	s.restart()
	s.events = nil
}

// Restart starts a fresh session with the current random source.
func (s *Session) Restart() {
	s.restart()
}

func (s *Session) restart() {
	s.snake.Reset()
	s.score = 0
	s.tick = 0
	s.phase = PhasePlaying
	s.respawnFood()
	s.events = append(s.events, core.EventRestarted)
}

// HandleInput applies one action. Direction changes only apply while
// playing, restart only applies once the session has ended. It reports
// whether the host should terminate the session.
func (s *Session) HandleInput(a core.Action) (quit bool) {
	switch a {
	case core.ActionQuit:
		return true
	case core.ActionRestart:
		if s.phase != PhasePlaying {
			s.restart()
		}
	default:
		if d, ok := a.Direction(); ok && s.phase == PhasePlaying {
			s.snake.SetDirection(d)
		}
	}
	return false
}

// Tick advances the session by one step and returns the resulting state
// along with every event recorded since the previous result. Once the
// session has ended, ticks change nothing.
func (s *Session) Tick() core.StepResult {
	if s.phase == PhasePlaying {
		s.tick++
		s.advance()
	}
	return s.drain(false)
}

// advance runs one playing tick: step, collision check, food check.
func (s *Session) advance() {
	if s.snake.Step() == Collided {
		s.phase = PhaseOver
		s.events = append(s.events, core.EventCollided)
		return
	}

	if s.hasFood && s.snake.Head() == s.food {
		s.snake.Grow()
		s.score += s.pointsPerFood
		s.events = append(s.events, core.EventAte)
		s.respawnFood()
	}
}

func (s *Session) respawnFood() {
	food, ok := s.spawner.Respawn(s.snake.Body())
	s.food, s.hasFood = food, ok
	if !ok {
		s.phase = PhaseWon
		s.events = append(s.events, core.EventBoardFull)
	}
}

// Step feeds every action of the frame to HandleInput in arrival order and
// then ticks, unless the frame restarted the session or asked to quit.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	quit := false
	restarted := false
	for _, a := range in.Actions() {
		wasOver := s.phase != PhasePlaying
		if s.HandleInput(a) {
			quit = true
		}
		if wasOver && s.phase == PhasePlaying {
			restarted = true
		}
	}

	if quit || restarted {
		return s.drain(quit)
	}
	return s.Tick()
}

func (s *Session) drain(quit bool) core.StepResult {
	res := core.StepResult{
		State:  s.State(),
		Events: s.events,
		Quit:   quit,
	}
	s.events = nil
	return res
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.phase != PhasePlaying,
		Won:      s.phase == PhaseWon,
	}
}

// Board returns a copy of the playfield for renderers.
func (s *Session) Board() Board {
	return Board{
		Title:     s.title,
		Grid:      s.grid,
		Body:      s.snake.Body(),
		Food:      s.food,
		HasFood:   s.hasFood,
		Score:     s.score,
		Phase:     s.phase,
		Direction: s.snake.LastApplied(),
	}
}

// Snake exposes the controller for inspection.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food returns the food cell and whether food is on the board.
func (s *Session) Food() (core.Cell, bool) {
	return s.food, s.hasFood
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Grid returns the playfield dimensions.
func (s *Session) Grid() core.Grid {
	return s.grid
}
