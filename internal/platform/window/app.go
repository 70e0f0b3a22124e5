// Package window runs Ring Runner in a desktop window on Ebitengine. Unlike a
// terminal it sees real key-up events, which are forwarded to the game as-is.
package window

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/ringrun/internal/backdrop"
	"github.com/vovakirdan/ringrun/internal/config"
	"github.com/vovakirdan/ringrun/internal/core"
	"github.com/vovakirdan/ringrun/internal/game"
)

// Window constants
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	WindowTitle   = "Ring Runner"
)

// directionKeys maps keyboard keys to game keys: arrows with WASD aliases.
var directionKeys = map[ebiten.Key]core.Key{
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyA:          core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyD:          core.KeyRight,
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyW:          core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyS:          core.KeyDown,
}

// keyOrder fixes the polling order so edges queue deterministically.
var keyOrder = []ebiten.Key{
	ebiten.KeyArrowLeft, ebiten.KeyA,
	ebiten.KeyArrowRight, ebiten.KeyD,
	ebiten.KeyArrowUp, ebiten.KeyW,
	ebiten.KeyArrowDown, ebiten.KeyS,
}

var (
	pauseKeys = []ebiten.Key{ebiten.KeyP}
	ackKeys   = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyEscape}
	quitKeys  = []ebiten.Key{ebiten.KeyQ}
)

// Options configures the window frontend.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig // ScreenW/ScreenH are the logical size in pixels
	Scale      float64            // Window size multiplier
	Logger     *log.Logger
	Background bool
	HTTPClient *http.Client
}

// keyPoll reports edge state for one key.
type keyPoll func(ebiten.Key) bool

// hud implements game.ScoreDisplay and game.Notifier for the window.
type hud struct {
	score   string
	pending []string
}

func (h *hud) SetText(text string) {
	h.score = text
}

func (h *hud) Announce(msg string) {
	h.pending = append(h.pending, msg)
}

func (h *hud) current() (string, bool) {
	if len(h.pending) == 0 {
		return "", false
	}
	return h.pending[0], true
}

func (h *hud) ack() {
	if len(h.pending) > 0 {
		h.pending = h.pending[1:]
	}
}

// App implements ebiten.Game around a Ring Runner game.
type App struct {
	game    *game.Game
	canvas  *Canvas
	hud     *hud
	runtime core.RuntimeConfig
	input   core.InputFrame
	state   core.GameState
	logger  *log.Logger

	backgrounds chan *backdrop.Image
	cancel      context.CancelFunc
}

// NewApp creates the window game and resets it. It does not open a window.
func NewApp(opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	rc := opts.Runtime
	if rc.ScreenW <= 0 || rc.ScreenH <= 0 {
		rc.ScreenW, rc.ScreenH = DefaultWidth, DefaultHeight
	}
	rc.CellAspect = 1
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	bounds := core.NewBounds(opts.Config.Field.BoundaryX, opts.Config.Field.BoundaryY)
	canvas := NewCanvas(rc.ScreenW, rc.ScreenH, bounds)
	h := &hud{}

	g := game.New(opts.Config, game.Hooks{
		Renderer: canvas,
		Display:  h,
		Notifier: h,
	})
	g.Reset(rc)
	g.Redraw()

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		game:        g,
		canvas:      canvas,
		hud:         h,
		runtime:     rc,
		input:       core.NewInputFrame(),
		state:       g.State(),
		logger:      opts.Logger,
		backgrounds: make(chan *backdrop.Image, 1),
		cancel:      cancel,
	}

	if opts.Background && opts.Config.Background.URL != "" {
		client := opts.HTTPClient
		if client == nil {
			client = http.DefaultClient
		}
		go a.fetchBackground(ctx, client, opts.Config.Background)
	}
	return a
}

// fetchBackground downloads the background and hands it to Update.
func (a *App) fetchBackground(ctx context.Context, client *http.Client, cfg config.BackgroundConfig) {
	if t := cfg.Timeout(); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	img, err := backdrop.Load(ctx, client, cfg.URL)
	if err != nil {
		a.logger.Debug("background unavailable", "error", err)
		return
	}
	a.backgrounds <- img
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.poll(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased) {
		return ebiten.Termination
	}
	a.frame()
	return nil
}

// poll queues this tick's key edges. It reports whether quit was pressed.
// While an announcement is up only releases are queued, so keys let go
// during the pause do not leave the ball running afterwards.
func (a *App) poll(pressed, released keyPoll) bool {
	if anyKey(pressed, quitKeys) {
		return true
	}

	_, modal := a.hud.current()
	if modal && anyKey(pressed, ackKeys) {
		a.hud.ack()
	}
	if !modal && anyKey(pressed, pauseKeys) {
		a.input.Set(core.ActionPause)
	}

	for _, k := range keyOrder {
		if released(k) {
			a.input.Release(directionKeys[k])
		}
		if !modal && pressed(k) {
			a.input.Press(directionKeys[k])
		}
	}
	return false
}

// frame installs a pending background and runs one game frame unless an
// announcement is waiting.
func (a *App) frame() {
	select {
	case img := <-a.backgrounds:
		a.game.Scene().SetBackground(img)
		a.game.Redraw()
	default:
	}

	if _, modal := a.hud.current(); modal {
		return
	}

	result := a.game.Step(a.input)
	a.state = result.State
	if result.GameOver {
		a.logger.Debug("game over", "round", a.state.Rounds)
	}
	a.input.Clear()
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Draw(screen)

	ebitenutil.DebugPrintAt(screen, a.hud.score, 8, 8)
	if a.state.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", a.runtime.ScreenW/2-18, a.runtime.ScreenH/2)
	}
	if msg, ok := a.hud.current(); ok {
		x := a.runtime.ScreenW/2 - len(msg)*3
		ebitenutil.DebugPrintAt(screen, msg, x, a.runtime.ScreenH/2-8)
		ebitenutil.DebugPrintAt(screen, "press enter to continue", a.runtime.ScreenW/2-69, a.runtime.ScreenH/2+8)
	}
}

// Layout implements ebiten.Game. The logical screen follows the window so
// the camera aspect matches what the player sees.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != a.runtime.ScreenW || outsideHeight != a.runtime.ScreenH) {
		a.resize(outsideWidth, outsideHeight)
	}
	return a.runtime.ScreenW, a.runtime.ScreenH
}

func (a *App) resize(width, height int) {
	a.runtime.ScreenW, a.runtime.ScreenH = width, height
	a.canvas.Resize(width, height)
	a.game.Resize(a.runtime)
	a.game.Redraw()
}

// Close stops the background download if it is still running.
func (a *App) Close() {
	a.cancel()
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	app := NewApp(opts)
	defer app.Close()

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(app.runtime.ScreenW)*scale), int(float64(app.runtime.ScreenH)*scale))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func anyKey(poll keyPoll, keys []ebiten.Key) bool {
	for _, k := range keys {
		if poll(k) {
			return true
		}
	}
	return false
}
