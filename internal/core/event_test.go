package core

import "testing"

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(KeyPressed(KeyJump))
	q.Push(KeyPressed(KeyRestart))
	q.Push(Closed())

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Drain() returned %d events, expected 3", len(events))
	}
	if events[0].Key != KeyJump || events[1].Key != KeyRestart {
		t.Errorf("events out of order: %+v", events)
	}
	if events[2].Type != EventClosed {
		t.Errorf("last event should be Closed, got %+v", events[2])
	}

	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, got %d", q.Len())
	}

	// Drained slice must not alias the queue's storage
	q.Push(KeyPressed(KeyOther))
	if events[0].Key != KeyJump {
		t.Error("Drain() result was overwritten by a later Push")
	}
}

func TestEventQueueDrainEmpty(t *testing.T) {
	var q EventQueue
	if events := q.Drain(); events != nil {
		t.Errorf("Drain() on empty queue = %v, expected nil", events)
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyJump:    "Jump",
		KeyRestart: "Restart",
		KeyOther:   "Other",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, expected %q", k, got, want)
		}
	}
}
