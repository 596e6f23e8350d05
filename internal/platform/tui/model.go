package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea model driving the snake state machine.
type Model struct {
	machine  *snake.Machine
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	frame    core.KeyFrame
	config   core.RuntimeConfig
	log      *log.Logger
	tooSmall bool
	quitting bool
}

// NewModel creates a model for machine. The screen always has the size of the
// play field; cfg only supplies the tick rate and the initial terminal size.
func NewModel(machine *snake.Machine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		machine: machine,
		screen:  core.NewScreen(snake.Width, snake.Height),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		frame:   core.NewKeyFrame(),
		config:  cfg,
		log:     logger,
	}
	m.tooSmall = terminalTooSmall(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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

// handleKey collects a key for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.frame) {
		m.log.Info("interrupted")
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize tracks whether the play field still fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	tooSmall := terminalTooSmall(msg.Width, msg.Height)
	if tooSmall != m.tooSmall {
		m.log.Debug("terminal resized", "width", msg.Width, "height", msg.Height, "fits", !tooSmall)
	}
	m.tooSmall = tooSmall
	return m, nil
}

// handleTick runs one frame of the state machine with the keys collected
// since the previous frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.machine.Tick(m.screen, m.frame) {
		m.quitting = true
		return m, tea.Quit
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display. The key help
// line goes below the play field when the terminal has a spare row.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall {
		return tooSmallView(m.config.ScreenW, m.config.ScreenH)
	}
	view := RenderScreen(m.screen)
	if m.config.ScreenH > snake.Height {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Quitting reports whether the program is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}

func terminalTooSmall(w, h int) bool {
	// Unknown size, let the first WindowSizeMsg decide
	if w <= 0 || h <= 0 {
		return false
	}
	return w < snake.Width || h < snake.Height
}

var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

func tooSmallView(w, h int) string {
	return noticeStyle.Render(fmt.Sprintf(
		"Terminal too small: need %dx%d, have %dx%d.\nEnlarge the window or press ctrl+c to quit.",
		snake.Width, snake.Height, w, h,
	))
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(machine *snake.Machine, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(machine, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
