// Package keymap maps window key names to session input events. It is kept
// free of Ebitengine so the bindings can be tested without a display.
package keymap

import "github.com/vovakirdan/jumpy-jack/internal/core"

// Key names as reported by ebiten.Key.String.
var (
	jumpKeys    = map[string]bool{"Space": true, "ArrowUp": true, "W": true}
	restartKeys = map[string]bool{"F": true, "R": true}
	quitKeys    = map[string]bool{"Q": true, "Escape": true}
)

// Event maps a key name to a session event. Unbound keys become KeyOther.
func Event(name string) core.Event {
	switch {
	case quitKeys[name]:
		return core.Closed()
	case jumpKeys[name]:
		return core.KeyPressed(core.KeyJump)
	case restartKeys[name]:
		return core.KeyPressed(core.KeyRestart)
	}
	return core.KeyPressed(core.KeyOther)
}
