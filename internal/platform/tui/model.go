package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jumpy-jack/internal/core"
	"github.com/vovakirdan/jumpy-jack/internal/logging"
	"github.com/vovakirdan/jumpy-jack/internal/runner"
)

// Options configures a terminal run.
type Options struct {
	Runtime core.RuntimeConfig
	// Recorder captures key presses for the replay journal. May be nil.
	Recorder *runner.Recorder
	Logger   *log.Logger
}

// Result summarizes a finished terminal run.
type Result struct {
	Score  int
	Frames uint64
	Events []runner.InputRecord
}

// Model is the Bubble Tea model driving a runner session.
type Model struct {
	session  *runner.Session
	recorder *runner.Recorder
	queue    *core.EventQueue
	screen   *core.Screen
	snapshot runner.Snapshot
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model for the given session.
// One terminal row is reserved for the key help footer.
func NewModel(session *runner.Session, opts Options) Model {
	cfg := opts.Runtime
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard().Logger
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session:  session,
		recorder: opts.Recorder,
		queue:    &core.EventQueue{},
		screen:   core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		snapshot: session.Snapshot(),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		config:   cfg,
	}
}

func playfieldHeight(h int) int {
	return core.Max(h-1, 1)
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the input event for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, ok := m.keys.Event(msg)
	if !ok {
		m.saveScreenshot()
		return m, nil
	}
	m.queue.Push(ev)
	return m, nil
}

// handleTick runs one session frame with the queued events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	sn, ok := m.recorder.Frame(m.session, m.queue.Drain())
	if !ok {
		m.quitting = true
		m.logger.Debug("close requested", "frame", m.session.Frames())
		return m, tea.Quit
	}
	m.snapshot = sn
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	runner.Render(m.screen, m.snapshot)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".jumpy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("jumpy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	runner.Render(m.screen, m.snapshot)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Result reports the session outcome.
func (m Model) Result() Result {
	return Result{
		Score:  m.session.Score(),
		Frames: m.session.Frames(),
		Events: m.recorder.Events(),
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(session *runner.Session, opts Options) (Result, error) {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model.Result(), fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Result(), nil
	}
	return model.Result(), nil
}
