package runner

import (
	"github.com/vovakirdan/jumpy-jack/internal/config"
	"github.com/vovakirdan/jumpy-jack/internal/core"
)

// InputRecord is a key press and the frame it was dispatched on.
type InputRecord struct {
	Frame uint64
	Key   core.Key
}

// Recorder logs key presses as they are fed to a session.
// A nil Recorder passes frames through without recording.
type Recorder struct {
	events []InputRecord
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Frame records the key presses in events and runs the frame on s.
func (r *Recorder) Frame(s *Session, events []core.Event) (Snapshot, bool) {
	if r != nil {
		for _, ev := range events {
			if ev.Type == core.EventKeyPressed {
				r.events = append(r.events, InputRecord{Frame: s.Frames(), Key: ev.Key})
			}
		}
	}
	return s.Frame(events)
}

// Events returns the recorded key presses in dispatch order.
func (r *Recorder) Events() []InputRecord {
	if r == nil {
		return nil
	}
	out := make([]InputRecord, len(r.events))
	copy(out, r.events)
	return out
}

// Replay re-runs a recorded session headlessly for the given number of frames.
// Events must be sorted by frame.
func Replay(cfg config.RunnerConfig, seed int64, events []InputRecord, frames uint64) *Session {
	s := New(cfg, seed)
	i := 0
	for s.Frames() < frames {
		f := s.Frames()
		for i < len(events) && events[i].Frame == f {
			s.Dispatch(core.KeyPressed(events[i].Key))
			i++
		}
		s.Step()
	}
	return s
}
