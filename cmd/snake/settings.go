package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// loadSettings loads the settings file and applies flags the user set
// explicitly on the command line.
func loadSettings(cmd *cobra.Command) (config.Settings, config.Source, error) {
	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return settings, source, err
	}

	applyFlagOverrides(cmd, &settings)

	if err := settings.Validate(); err != nil {
		return settings, source, err
	}
	return settings, source, nil
}

// applyFlagOverrides copies changed flags into settings.
func applyFlagOverrides(cmd *cobra.Command, settings *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		settings.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		settings.Grid.Height = flagHeight
	}
	if flags.Changed("fps") {
		settings.Speed.TickRate = flagFPS
	}
	if flags.Changed("sound") {
		settings.Audio.Enabled = flagSound
	}
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback; the returned close func is always safe to call.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
