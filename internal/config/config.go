// Package config provides YAML-based settings loading for the snake game.
package config

import (
	"errors"
	"fmt"
)

// Settings contains all configuration for the snake game.
type Settings struct {
	Grid    GridSettings    `yaml:"grid"`
	Speed   SpeedSettings   `yaml:"speed"`
	Scoring ScoringSettings `yaml:"scoring"`
	Audio   AudioSettings   `yaml:"audio"`
	Render  RenderSettings  `yaml:"render"`
}

// GridSettings defines the playfield size in cells.
type GridSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedSettings defines the simulation pace.
type SpeedSettings struct {
	TickRate int `yaml:"tick_rate"` // Ticks (snake moves) per second
}

// ScoringSettings defines how points are awarded.
type ScoringSettings struct {
	PointsPerFood int `yaml:"points_per_food"`
}

// AudioSettings controls the optional sound cues.
type AudioSettings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 = silent, 1.0 = full
}

// RenderSettings controls how cells map to terminal columns.
type RenderSettings struct {
	CellWidth int `yaml:"cell_width"` // 1 or 2 columns per cell, 0 = pick automatically
}

// Limits for Validate.
const (
	MinGridSize = 2
	MaxGridSize = 500
	MaxTickRate = 120
)

// Validate reports every invalid field at once.
func (s Settings) Validate() error {
	var errs []error

	if s.Grid.Width < MinGridSize || s.Grid.Width > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid.width must be in [%d, %d], got %d", MinGridSize, MaxGridSize, s.Grid.Width))
	}
	if s.Grid.Height < MinGridSize || s.Grid.Height > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid.height must be in [%d, %d], got %d", MinGridSize, MaxGridSize, s.Grid.Height))
	}
	if s.Speed.TickRate < 1 || s.Speed.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("speed.tick_rate must be in [1, %d], got %d", MaxTickRate, s.Speed.TickRate))
	}
	if s.Scoring.PointsPerFood < 1 {
		errs = append(errs, fmt.Errorf("scoring.points_per_food must be positive, got %d", s.Scoring.PointsPerFood))
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %g", s.Audio.Volume))
	}
	if s.Render.CellWidth < 0 || s.Render.CellWidth > 2 {
		errs = append(errs, fmt.Errorf("render.cell_width must be 0, 1 or 2, got %d", s.Render.CellWidth))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
