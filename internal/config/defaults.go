package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in settings: the classic 40x30 board
// (an 800x600 window of 20px cells) moving 10 times per second.
func Default() Settings {
	return Settings{
		Grid: GridSettings{
			Width:  40,
			Height: 30,
		},
		Speed: SpeedSettings{
			TickRate: 10,
		},
		Scoring: ScoringSettings{
			PointsPerFood: 10,
		},
		Audio: AudioSettings{
			Enabled: false,
			Volume:  0.5,
		},
		Render: RenderSettings{
			CellWidth: 0,
		},
	}
}
