package tui

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringrun/internal/backdrop"
	"github.com/vovakirdan/ringrun/internal/config"
	"github.com/vovakirdan/ringrun/internal/core"
	"github.com/vovakirdan/ringrun/internal/game"
)

// headerLines is the score header above the field. The help below it takes
// one line, or more while the full help is shown.
const headerLines = 1

// Options configures a game session model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig // ScreenW/ScreenH are the whole terminal
	Logger  *log.Logger

	// Background enables fetching Config.Background.URL.
	Background bool
	HTTPClient *http.Client

	// Context bounds the background download; a session context when
	// served over SSH.
	Context context.Context

	// Stats, when set, receives the frame and round counters every frame.
	Stats *SessionStats
}

// SessionStats exposes a running session's counters to code outside the
// Bubble Tea loop.
type SessionStats struct {
	frames atomic.Uint64
	rounds atomic.Int64
}

// Frames returns the number of completed frames.
func (s *SessionStats) Frames() uint64 {
	return s.frames.Load()
}

// Rounds returns the number of game overs.
func (s *SessionStats) Rounds() int {
	return int(s.rounds.Load())
}

func (s *SessionStats) record(st core.GameState) {
	s.frames.Store(st.Frame)
	s.rounds.Store(int64(st.Rounds))
}

// backgroundMsg carries the result of the background download.
type backgroundMsg struct {
	img *backdrop.Image
	err error
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	label     *ScoreLabel
	announcer *Announcer
	hold      *KeyHold
	keys      KeyMap
	help      help.Model
	opts      Options
	runtime   core.RuntimeConfig
	input     core.InputFrame
	state     core.GameState
	width     int
	height    int
	now       func() time.Time
	quitting  bool
}

// NewModel creates a model and resets the game.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	rc := opts.Runtime
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.CellAspect <= 0 {
		rc.CellAspect = 2
	}
	width, height := rc.ScreenW, rc.ScreenH
	keys := DefaultKeyMap()
	h := help.New()
	h.Width = width
	rc.ScreenW, rc.ScreenH = fieldSize(width, height, renderHelp(h, keys))

	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	label := &ScoreLabel{}
	announcer := &Announcer{}
	bounds := core.NewBounds(opts.Config.Field.BoundaryX, opts.Config.Field.BoundaryY)

	g := game.New(opts.Config, game.Hooks{
		Renderer: NewRasterizer(screen, bounds),
		Display:  label,
		Notifier: announcer,
	})
	g.Reset(rc)
	g.Redraw()

	return Model{
		game:      g,
		screen:    screen,
		label:     label,
		announcer: announcer,
		hold:      NewKeyHold(opts.Config.Input.RepeatDelay(), opts.Config.Input.ReleaseAfter()),
		keys:      keys,
		help:      h,
		opts:      opts,
		runtime:   rc,
		input:     core.NewInputFrame(),
		state:     g.State(),
		width:     width,
		height:    height,
		now:       time.Now,
	}
}

// fieldSize returns the screen area left for the field below the header and
// above helpText.
func fieldSize(width, height int, helpText string) (int, int) {
	return max(width, 1), max(height-headerLines-lipgloss.Height(helpText), 1)
}

func renderHelp(h help.Model, keys KeyMap) string {
	return helpStyle.Render(h.View(keys))
}

// layout fits the field to the terminal and the current help text. The game
// keeps running; only the camera follows the new size.
func (m *Model) layout() {
	m.runtime.ScreenW, m.runtime.ScreenH = fieldSize(m.width, m.height, renderHelp(m.help, m.keys))
	m.screen.Resize(m.runtime.ScreenW, m.runtime.ScreenH)
	m.game.Resize(m.runtime)
	m.game.Redraw()
}

// Init starts the tick loop and the background download.
func (m Model) Init() tea.Cmd {
	var bg tea.Cmd
	if m.opts.Background {
		bg = loadBackgroundCmd(m.opts.Context, m.opts.HTTPClient, m.opts.Config.Background)
	}
	return tea.Batch(tickCmd(m.runtime.TickRate), bg)
}

// loadBackgroundCmd fetches the background picture off the update loop.
func loadBackgroundCmd(ctx context.Context, client *http.Client, cfg config.BackgroundConfig) tea.Cmd {
	if cfg.URL == "" {
		return nil
	}
	return func() tea.Msg {
		if t := cfg.Timeout(); t > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, t)
			defer cancel()
		}
		img, err := backdrop.Load(ctx, client, cfg.URL)
		return backgroundMsg{img: img, err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case backgroundMsg:
		return m.handleBackground(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, modal := m.announcer.Current()

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionAck:
		if modal {
			m.announcer.Ack()
		}
		return m, nil
	case core.ActionPause:
		if !modal {
			m.input.Set(core.ActionPause)
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	if modal {
		return m, nil
	}
	if k := m.keys.Direction(msg); k != core.KeyNone {
		m.input.Keys = append(m.input.Keys, m.hold.Press(k, m.now())...)
	}
	return m, nil
}

// handleResize keeps the game running and only adapts the camera.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// handleTick runs one frame unless an announcement is waiting.
// Synthesized releases are queued even while blocked so the first frame
// after acknowledging sees them.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.input.Keys = append(m.input.Keys, m.hold.Expire(now)...)

	if _, modal := m.announcer.Current(); modal {
		return m, tickCmd(m.runtime.TickRate)
	}

	result := m.game.Step(m.input)
	m.state = result.State
	if m.opts.Stats != nil {
		m.opts.Stats.record(m.state)
	}
	if result.GameOver {
		m.opts.Logger.Debug("game over", "round", m.state.Rounds)
	}

	m.input.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// handleBackground installs the downloaded picture. Failures only cost the
// background.
func (m Model) handleBackground(msg backgroundMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.opts.Logger.Debug("background unavailable", "error", msg.err)
		return m, nil
	}
	m.game.Scene().SetBackground(msg.img)
	m.game.Redraw()
	return m, nil
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if msg, ok := m.announcer.Current(); ok {
		return renderModal(msg, m.width, m.height)
	}

	if m.state.Paused {
		drawPaused(m.screen)
	}

	return renderHeader(m.label.Text(), m.state, m.width) + "\n" +
		RenderScreen(m.screen) + "\n" +
		renderHelp(m.help, m.keys)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
