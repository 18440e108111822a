package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/jumpy-jack/internal/core"
	"github.com/vovakirdan/jumpy-jack/internal/platform/window/keymap"
)

// collectInput queues the events since the last tick, window close first.
func (g *Game) collectInput() {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(core.Closed())
		return
	}
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		g.queue.Push(keymap.Event(k.String()))
	}
}
