// Package window runs a Jumpy Jack session in a desktop window with Ebitengine.
// Ebitengine calls Update at the configured tick rate; each call is exactly
// one simulation tick.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/jumpy-jack/internal/config"
	"github.com/vovakirdan/jumpy-jack/internal/core"
	"github.com/vovakirdan/jumpy-jack/internal/logging"
	"github.com/vovakirdan/jumpy-jack/internal/runner"
)

// Options configures a window run.
type Options struct {
	Window   config.WindowConfig
	Recorder *runner.Recorder
	Logger   *log.Logger
}

// Game adapts a runner session to the ebiten.Game interface.
type Game struct {
	session  *runner.Session
	recorder *runner.Recorder
	queue    core.EventQueue
	pressed  []ebiten.Key
	snapshot runner.Snapshot
	world    core.Vec2
	logger   *log.Logger
}

// NewGame wraps a session.
func NewGame(session *runner.Session, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard().Logger
	}
	sn := session.Snapshot()
	return &Game{
		session:  session,
		recorder: opts.Recorder,
		snapshot: sn,
		world:    sn.World,
		logger:   logger,
	}
}

// Update runs one tick with the input gathered since the previous one.
func (g *Game) Update() error {
	g.collectInput()
	sn, ok := g.recorder.Frame(g.session, g.queue.Drain())
	if !ok {
		g.logger.Debug("close requested", "frame", g.session.Frames())
		return ebiten.Termination
	}
	g.snapshot = sn
	return nil
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.world.X), int(g.world.Y)
}

// Run opens the window and blocks until it is closed.
func Run(session *runner.Session, opts Options) error {
	g := NewGame(session, opts)

	ebiten.SetWindowSize(int(g.world.X), int(g.world.Y))
	ebiten.SetWindowTitle(opts.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if opts.Window.FPS > 0 {
		ebiten.SetTPS(opts.Window.FPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
