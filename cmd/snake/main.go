// snake is the classic grid snake game for the terminal.
//
// Usage:
//
//	snake                    - Play the classic 40x30 board
//	snake play [variant]     - Play a variant (see list)
//	snake menu               - Pick a variant from a menu
//	snake list               - List available variants
//	snake serve              - Start SSH server for remote play
//	snake sim                - Run a scripted headless game
//	snake config             - Print the effective settings
//
// Global flags:
//
//	--config <path>    - Settings YAML (default: search ~/.snake/configs, ./configs)
//	--fps <rate>       - Ticks per second (default: 10)
//	--seed <value>     - RNG seed for reproducible food placement
//	--width, --height  - Board size
//	--sound            - Enable audio cues
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagWidth    int
	flagHeight   int
	flagSound    bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Steer the snake around a wrapping board, eat food to grow,
and avoid running into yourself.

Available commands:
  play     - Play a variant (default when no command is given)
  menu     - Pick a variant from a menu
  list     - Show all variants
  serve    - Start SSH server for remote play
  sim      - Run a scripted headless game
  config   - Print the effective settings

Examples:
  snake
  snake play snake_compact
  snake --width 20 --height 15 --fps 8
  snake serve --ssh :2222
  snake sim --seed 7 --script "3:up 9:left" --ticks 50`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to settings YAML")
	pf.IntVar(&flagFPS, "fps", 10, "Tick rate (snake moves per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagWidth, "width", 40, "Board width in cells")
	pf.IntVar(&flagHeight, "height", 30, "Board height in cells")
	pf.BoolVar(&flagSound, "sound", false, "Enable audio cues")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
