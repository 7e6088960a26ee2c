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

	"github.com/vovakirdan/star-fire/internal/core"
	"github.com/vovakirdan/star-fire/internal/games/starfire"
	"github.com/vovakirdan/star-fire/internal/registry"
	"github.com/vovakirdan/star-fire/internal/storage"
)

// helpRows is the height of the help bar under the game.
const helpRows = 1

// resizer is implemented by games that can change screen size mid-run.
type resizer interface {
	Resize(w, h int)
}

// statsReporter is implemented by games that count what happened in a run.
type statsReporter interface {
	RunStats() starfire.RunStats
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	panel     *sessionPanel
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	holds     *HoldTracker
	gameState core.GameState

	width, height int
	showPanel     bool
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil; the session panel then shows that the log is off.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		holds:  NewHoldTracker(DefaultHoldWindow),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.layout()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.panel = newSessionPanel(store, m.height-helpRows)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// layout splits the terminal between the arena and the panel.
func (m *Model) layout() {
	m.showPanel = m.width >= minWidthForPanel
	gameW := m.width
	if m.showPanel {
		gameW -= panelWidth + 1
	}
	m.config.ScreenW = max(gameW, 1)
	m.config.ScreenH = max(m.height-helpRows, 1)
	m.help.Width = m.width
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	m.holds.Press(m.keys.Action(msg), now)
	return m, nil
}

// handleResize keeps the run going at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.panel.resize(m.height - helpRows)
	m.panel.refresh()

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation step with the keys held right now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.holds.Frame(now))
	m.gameState = result.State

	if m.gameState.GameOver && !prev.GameOver {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun saves the run that just ended to the session log.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}

	rec := storage.RunRecord{
		Score:         m.gameState.Score,
		ElapsedMillis: m.gameState.ElapsedMillis,
	}
	if sr, ok := m.game.(statsReporter); ok {
		st := sr.RunStats()
		rec.Kills = st.Kills
		rec.Shots = st.Shots
		rec.Hits = st.Hits
		rec.Dashes = st.Dashes
	}

	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("cannot record run", "err", err)
		return
	}
	m.logger.Debug("run recorded", "score", rec.Score, "elapsed_ms", rec.ElapsedMillis)
	m.panel.refresh()
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".starfire", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.showPanel {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, " ", m.panel.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, view, m.help.View(m.keys))
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
