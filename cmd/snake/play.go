package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing snake. The variant defaults to "snake".

Controls:
  Arrows/WASD/HJKL - Steer
  Enter/R          - Restart after game over
  Esc/Q/Ctrl+C     - Quit
  Ctrl+S           - Save a text screenshot to ~/.snake/screenshots
  ?                - Show all keys

Examples:
  snake play
  snake play snake_compact
  snake play --seed 42 --fps 15
  snake play --sound --log-file snake.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant := snake.IDClassic
	if len(args) > 0 {
		variant = args[0]
	}

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see available variants)", variant)
	}

	settings, source, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("settings loaded", "source", source, "grid", fmt.Sprintf("%dx%d", settings.Grid.Width, settings.Grid.Height))

	player, err := audio.Open(settings.Audio.Enabled, settings.Audio.Volume)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer player.Close()

	return playVariant(variant, settings, logger, player)
}

// terminalSize returns the local terminal size, or 80x24 when stdout is not
// a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// playVariant runs one TUI session of variant until the player quits.
func playVariant(variant string, settings config.Settings, logger *log.Logger, player audio.Player) error {
	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.Speed.TickRate,
		Seed:     flagSeed,
	}

	game, err := registry.Create(variant, settings)
	if err != nil {
		return err
	}

	return tui.Run(game, cfg,
		tui.WithLogger(logger),
		tui.WithPlayer(player),
		tui.WithScreenshotDir(tui.DefaultScreenshotDir()),
	)
}
