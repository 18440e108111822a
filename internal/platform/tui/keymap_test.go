package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumpy-jack/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapEvent(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Event
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.KeyPressed(core.KeyJump)},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.KeyPressed(core.KeyJump)},
		{"w jumps", runeKey("w"), core.KeyPressed(core.KeyJump)},
		{"f restarts", runeKey("f"), core.KeyPressed(core.KeyRestart)},
		{"r restarts", runeKey("r"), core.KeyPressed(core.KeyRestart)},
		{"q closes", runeKey("q"), core.Closed()},
		{"esc closes", tea.KeyMsg{Type: tea.KeyEsc}, core.Closed()},
		{"ctrl+c closes", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Closed()},
		{"other key", runeKey("x"), core.KeyPressed(core.KeyOther)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Event(tt.msg)
			if !ok {
				t.Fatalf("Event(%q) not mapped", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("Event(%q) = %+v, expected %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapScreenshotIsPlatformKey(t *testing.T) {
	km := DefaultKeyMap()
	if _, ok := km.Event(tea.KeyMsg{Type: tea.KeyCtrlS}); ok {
		t.Error("ctrl+s should not produce a session event")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 4 {
		t.Errorf("ShortHelp() has %d bindings, expected 4", len(km.ShortHelp()))
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 4 {
		t.Errorf("FullHelp() has %d bindings, expected 4", total)
	}
}
