package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocks-diamonds/internal/config"
	"github.com/vovakirdan/rocks-diamonds/internal/core"
	"github.com/vovakirdan/rocks-diamonds/internal/games/rocks"
	"github.com/vovakirdan/rocks-diamonds/internal/storage"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// Model is the Bubble Tea model for one play session.
type Model struct {
	game       *rocks.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	player     string
	quitting   bool
	scoreSaved bool

	// ScreenshotDir is where ctrl+s writes screen dumps.
	ScreenshotDir string
	lastShot      string
}

// NewModel creates a new Bubble Tea model for the given session.
// store may be nil, in which case scores are not recorded.
func NewModel(game *rocks.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	if player == "" {
		player = "local"
	}
	game.Resize(cfg.ScreenW, cfg.ScreenH-helpHeight)

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		store:         store,
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		inputFrame:    core.NewInputFrame(),
		gameState:     game.State(),
		player:        player,
		ScreenshotDir: config.DataDir("screenshots"),
	}
}

// Init starts the frame and gravity schedulers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.config.TickRate),
		gravityCmd(m.game.GravityInterval()),
	)
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

	case GravityMsg:
		m.game.Fall()
		m.gameState = m.game.State()
		return m, gravityCmd(m.game.GravityInterval())
	}

	return m, nil
}

// handleKey records the action for the next controller cycle.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the session and only changes the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.game.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one controller cycle with the actions gathered since
// the previous frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveScore()
		m.scoreSaved = false
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the current session once. Sessions where the player
// never moved are not recorded.
func (m *Model) saveScore() {
	if m.store == nil || m.scoreSaved {
		return
	}
	snap := m.game.Sim().Snapshot()
	if snap.Score == 0 && m.game.Sim().Player.Pos == m.game.Sim().Player.Start {
		return
	}

	//nolint:errcheck // Best-effort save, the session ends regardless
	m.store.SaveScore(storage.ScoreEntry{
		LevelID: m.game.ID(),
		Player:  m.player,
		Score:   snap.Score,
		Ticks:   snap.Ticks,
		Cycles:  snap.Cycles,
		Cleared: m.game.State().Cleared,
	})
	m.scoreSaved = true
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.ScreenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err == nil {
		m.lastShot = path
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the status after the most recent message.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// LastScreenshot returns the path of the most recent screenshot, if any.
func (m Model) LastScreenshot() string {
	return m.lastShot
}

// Run starts the Bubble Tea program for a local session.
func Run(game *rocks.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg, "local")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
