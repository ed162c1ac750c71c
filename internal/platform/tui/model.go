package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	inputFrame    core.InputFrame
	gameState     core.GameState
	keys          KeyMap
	help          help.Model
	palette       Palette
	logger        *log.Logger
	player        audio.Player
	screenshotDir string
	status        string
	quitting      bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithPlayer routes game events to an audio player.
func WithPlayer(p audio.Player) ModelOption {
	return func(m *Model) {
		m.player = p
	}
}

// WithRenderer styles output for a specific lipgloss renderer.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.palette = NewPalette(r)
		m.help.Styles = help.New().Styles
		if r != nil {
			m.help.Styles.ShortKey = r.NewStyle().Foreground(lipgloss.Color("245"))
			m.help.Styles.ShortDesc = r.NewStyle().Foreground(lipgloss.Color("240"))
		}
	}
}

// WithScreenshotDir sets where ctrl+s writes screenshots. An empty dir
// disables screenshots.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// DefaultScreenshotDir returns ~/.snake/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "screenshots")
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		palette:    NewPalette(nil),
		logger:     log.New(io.Discard),
		player:     audio.Nop{},
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the action for the next tick. Quit leaves at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.config.ScreenH-m.footerLines())
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.logger.Info("session ended", "game", m.game.ID(), "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// footerLines is the help footer height in each mode.
func (m Model) footerLines() int {
	if m.help.ShowAll {
		return 4
	}
	return 1
}

// handleResize only resizes the buffer; layout is recomputed every frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-m.footerLines())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game with everything typed since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame = core.NewInputFrame()
	m.gameState = result.State

	m.logEvents(result)
	audio.PlayEvents(m.player, result.Events)

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(result core.StepResult) {
	for _, e := range result.Events {
		switch e {
		case core.EventAte:
			m.logger.Debug("food eaten", "score", result.State.Score)
		case core.EventCollided:
			m.logger.Info("game over", "game", m.game.ID(), "score", result.State.Score)
		case core.EventBoardFull:
			m.logger.Info("board full", "game", m.game.ID(), "score", result.State.Score)
		case core.EventRestarted:
			m.logger.Info("restarted", "game", m.game.ID())
		}
	}
}

// saveScreenshot writes the current frame as plain text and returns a
// status line for the footer.
func (m Model) saveScreenshot() string {
	if m.screenshotDir == "" {
		return "screenshots disabled"
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	m.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Quitting reports whether the session asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" && !m.help.ShowAll {
		footer = m.status
	}
	return m.palette.RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program with the given game on the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
