package keymap

import (
	"testing"

	"github.com/vovakirdan/jumpy-jack/internal/core"
)

func TestEvent(t *testing.T) {
	tests := []struct {
		key  string
		want core.Event
	}{
		{"Space", core.KeyPressed(core.KeyJump)},
		{"ArrowUp", core.KeyPressed(core.KeyJump)},
		{"W", core.KeyPressed(core.KeyJump)},
		{"F", core.KeyPressed(core.KeyRestart)},
		{"R", core.KeyPressed(core.KeyRestart)},
		{"Q", core.Closed()},
		{"Escape", core.Closed()},
		{"X", core.KeyPressed(core.KeyOther)},
		{"ArrowDown", core.KeyPressed(core.KeyOther)},
		{"", core.KeyPressed(core.KeyOther)},
	}

	for _, tt := range tests {
		if got := Event(tt.key); got != tt.want {
			t.Errorf("Event(%q) = %+v, expected %+v", tt.key, got, tt.want)
		}
	}
}
