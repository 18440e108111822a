package runner

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/jumpy-jack/internal/config"
	"github.com/vovakirdan/jumpy-jack/internal/core"
)

func TestReplayReproducesSession(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.CullEdge = config.CullLeft

	live := New(cfg, 777)
	rec := NewRecorder()
	var last Snapshot
	for i := 0; i < 2000; i++ {
		var events []core.Event
		if i%19 == 0 {
			events = append(events, core.KeyPressed(core.KeyJump))
		}
		if i%150 == 0 {
			events = append(events, core.KeyPressed(core.KeyRestart), core.KeyPressed(core.KeyOther))
		}
		last, _ = rec.Frame(live, events)
	}

	replayed := Replay(cfg, 777, rec.Events(), live.Frames())

	if replayed.Frames() != live.Frames() {
		t.Fatalf("frames = %d, expected %d", replayed.Frames(), live.Frames())
	}
	if !reflect.DeepEqual(replayed.Snapshot(), last) {
		t.Error("replayed snapshot differs from the live one")
	}
}

func TestRecorderSkipsClose(t *testing.T) {
	s := quietSession(t)
	rec := NewRecorder()

	rec.Frame(s, []core.Event{core.KeyPressed(core.KeyJump)})
	rec.Frame(s, nil)
	_, open := rec.Frame(s, []core.Event{core.Closed()})

	if open {
		t.Error("close should be reported")
	}
	events := rec.Events()
	want := []InputRecord{{Frame: 0, Key: core.KeyJump}}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %+v, expected %+v", events, want)
	}
}

func TestNilRecorderPassesThrough(t *testing.T) {
	s := quietSession(t)
	var rec *Recorder

	rec.Frame(s, []core.Event{core.KeyPressed(core.KeyJump)})
	if s.Frames() != 1 {
		t.Errorf("frames = %d, expected 1", s.Frames())
	}
	if rec.Events() != nil {
		t.Error("nil recorder should report no events")
	}
}
