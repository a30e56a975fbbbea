package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snack/internal/core"
	"github.com/vovakirdan/snack/internal/game"
	"github.com/vovakirdan/snack/internal/platform/audio"
)

// helpHeight is the number of screen rows reserved below the game for the
// help footer.
const helpHeight = 1

// Model is the Bubble Tea model driving the game.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	input     core.InputFrame
	state     core.GameState
	keys      KeyMap
	help      help.Model
	sounds    *audio.Manager
	lastFrame time.Time
	quitting  bool
}

// NewModel creates a Bubble Tea model for the given game.
// The sounds manager may be a disabled one; it is never nil-checked.
func NewModel(g *game.Game, sounds *audio.Manager, cfg core.RuntimeConfig) Model {
	// Use a time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	gameH := cfg.ScreenH - helpHeight
	g.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  gameH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	})

	m := Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, gameH),
		config: cfg,
		input:  core.NewInputFrame(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		sounds: sounds,
	}
	m.state = g.State()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers keyboard input into the current frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		// Restart only makes sense after game over; anything earlier is an
		// accidental key press.
		if m.state.GameOver {
			m.input.Set(action)
		}
	case core.ActionNone:
	default:
		m.input.Set(action)
	}

	return m, nil
}

// handleResize adapts to a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	gameH := msg.Height - helpHeight
	m.screen.Resize(msg.Width, gameH)

	// The board is laid out from the screen size, so a live game restarts
	// with the new dimensions. A finished game keeps its final board.
	if !m.state.GameOver {
		m.game.Reset(core.RuntimeConfig{
			ScreenW:  msg.Width,
			ScreenH:  gameH,
			TickRate: m.config.TickRate,
			Seed:     time.Now().UnixNano(),
		})
		m.state = m.game.State()
	}

	return m, nil
}

// handleFrame runs one frame of the simulation.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	// A frame delayed by a suspended terminal must not flush a burst of
	// queued time into the accumulator.
	if dt < 0 || dt > 0.25 {
		dt = 1.0 / float64(m.config.TickRate)
	}
	m.lastFrame = now

	result := m.game.Advance(dt, m.input)
	m.state = result.State
	m.sounds.HandleEvents(result.Events)
	m.input.Clear()

	return m, frameCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts a Bubble Tea program for the given game.
func Run(g *game.Game, sounds *audio.Manager, cfg core.RuntimeConfig) error {
	model := NewModel(g, sounds, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
