package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jumpy-jack/internal/storage"
)

func testRecordings() []storage.RecordingSummary {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []storage.RecordingSummary{
		{ID: 9, Seed: 3, Frames: 1200, FinalScore: 20, EventCount: 14, CreatedAt: now},
		{ID: 4, Seed: 1, Frames: 300, FinalScore: 5, EventCount: 2, CreatedAt: now.Add(-time.Hour)},
	}
}

func TestReplayBrowserSelect(t *testing.T) {
	m := NewReplayBrowserModel(testRecordings(), 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.(ReplayBrowserModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := next.(ReplayBrowserModel)
	if got.Selected() != 4 {
		t.Errorf("Selected() = %d, expected 4", got.Selected())
	}
	if cmd == nil {
		t.Fatal("selecting should quit the browser")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit message")
	}
}

func TestReplayBrowserQuit(t *testing.T) {
	m := NewReplayBrowserModel(testRecordings(), 80, 24)

	next, _ := m.Update(runeKey("q"))
	if next.(ReplayBrowserModel).Selected() != 0 {
		t.Error("quitting should not select a recording")
	}
}

func TestReplayBrowserView(t *testing.T) {
	m := NewReplayBrowserModel(testRecordings(), 80, 24)
	view := m.View()
	if !strings.Contains(view, "RECORDINGS (2)") {
		t.Error("view should show the recording count")
	}
	if !strings.Contains(view, "1200") {
		t.Error("view should list tick counts")
	}

	empty := NewReplayBrowserModel(nil, 80, 24)
	if !strings.Contains(empty.View(), "No recordings yet") {
		t.Error("empty browser should explain how to record")
	}
}
