package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodSpawner places food on a uniformly random free cell.
type FoodSpawner struct {
	grid core.Grid
	rng  core.RandomSource
}

// NewFoodSpawner creates a spawner drawing from rng.
func NewFoodSpawner(grid core.Grid, rng core.RandomSource) *FoodSpawner {
	return &FoodSpawner{grid: grid, rng: rng}
}

// Respawn samples random cells until one is not in occupied.
// It returns ok=false without sampling when occupied covers the whole grid.
func (f *FoodSpawner) Respawn(occupied []core.Cell) (core.Cell, bool) {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		if f.grid.Contains(c) {
			taken[c] = struct{}{}
		}
	}
	if len(taken) >= f.grid.Cells() {
		return core.Cell{}, false
	}

	for {
		c := core.Cell{X: f.intn(f.grid.Width), Y: f.intn(f.grid.Height)}
		if _, busy := taken[c]; !busy {
			return c, true
		}
	}
}

func (f *FoodSpawner) intn(n int) int {
	v := f.rng.Intn(n)
	if v < 0 || v >= n {
		panic(fmt.Sprintf("snake: random source returned %d outside [0, %d)", v, n))
	}
	return v
}
