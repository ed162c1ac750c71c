package snake

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// scriptedRand replays a fixed sequence of values.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v
}

// panicRand fails the test if it is ever consulted.
type panicRand struct{}

func (panicRand) Intn(int) int {
	panic("random source should not be used")
}

func TestRespawnSkipsOccupiedCells(t *testing.T) {
	grid := core.NewGrid(3, 3)
	rng := &scriptedRand{values: []int{0, 0, 2, 1, 1, 1}}
	spawner := NewFoodSpawner(grid, rng)

	occupied := []core.Cell{{X: 0, Y: 0}, {X: 2, Y: 1}}
	food, ok := spawner.Respawn(occupied)

	if !ok {
		t.Fatal("expected food to be placed")
	}
	if food != (core.Cell{X: 1, Y: 1}) {
		t.Errorf("food = %v, expected (1,1)", food)
	}
	if rng.calls != 6 {
		t.Errorf("random source called %d times, expected 6", rng.calls)
	}
}

func TestRespawnNeverLandsOnSnake(t *testing.T) {
	grid := core.NewGrid(10, 10)
	rng := rand.New(rand.NewSource(42))
	spawner := NewFoodSpawner(grid, rng)

	// Occupy everything except the last row.
	var occupied []core.Cell
	taken := make(map[core.Cell]bool)
	for y := 0; y < 9; y++ {
		for x := 0; x < 10; x++ {
			c := core.Cell{X: x, Y: y}
			occupied = append(occupied, c)
			taken[c] = true
		}
	}

	for i := 0; i < 500; i++ {
		food, ok := spawner.Respawn(occupied)
		if !ok {
			t.Fatal("expected food to be placed")
		}
		if taken[food] {
			t.Fatalf("food placed on occupied cell %v", food)
		}
		if !grid.Contains(food) {
			t.Fatalf("food placed outside the grid at %v", food)
		}
	}
}

func TestRespawnFullBoard(t *testing.T) {
	grid := core.NewGrid(2, 2)
	spawner := NewFoodSpawner(grid, panicRand{})

	occupied := []core.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	if _, ok := spawner.Respawn(occupied); ok {
		t.Error("expected no food on a full board")
	}
}

func TestRespawnIgnoresDuplicateAndForeignCells(t *testing.T) {
	grid := core.NewGrid(2, 1)
	rng := &scriptedRand{values: []int{1, 0}}
	spawner := NewFoodSpawner(grid, rng)

	// Duplicates and out-of-grid cells must not make the board look full.
	occupied := []core.Cell{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 5}}
	food, ok := spawner.Respawn(occupied)
	if !ok {
		t.Fatal("expected food to be placed")
	}
	if food != (core.Cell{X: 1, Y: 0}) {
		t.Errorf("food = %v, expected (1,0)", food)
	}
}

func TestRespawnRejectsOutOfRangeRandom(t *testing.T) {
	spawner := NewFoodSpawner(core.NewGrid(4, 4), &scriptedRand{values: []int{7}})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for out-of-range random value")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "outside [0, 4)") {
			t.Errorf("unexpected panic message: %v", r)
		}
	}()
	spawner.Respawn(nil)
}
