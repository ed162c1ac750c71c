package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start snake with a variant picker.

After a session ends you return to the picker to choose again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  snake menu
  snake menu --fps 15 --sound`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	settings, source, err := loadSettings(cmd)
	if err != nil {
		return err
	}

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

	current := snake.IDClassic
	for {
		width, height := terminalSize()
		variant, err := tui.RunMenu(current, width, height)
		if err != nil {
			return err
		}
		if variant == "" {
			return nil
		}
		current = variant

		logger.Info("variant selected", "variant", variant)
		if err := playVariant(variant, settings, logger, player); err != nil {
			return err
		}
	}
}
