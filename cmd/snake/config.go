package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as YAML",
	Long: `Print the settings after the config search and flag overrides.

Save the output to ~/.snake/configs/snake.yaml to make it your default.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	settings, source, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	data, err := config.Marshal(settings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
