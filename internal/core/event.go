package core

// EventType distinguishes the two kinds of input events the platform delivers.
type EventType int

const (
	EventKeyPressed EventType = iota
	EventClosed
)

// Key is a semantic key, abstracted from physical key codes.
// Platforms map their own key names onto these values.
type Key int

const (
	KeyOther   Key = iota // Anything unbound
	KeyJump               // Space, Up, W
	KeyRestart            // F, R
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyJump:
		return "Jump"
	case KeyRestart:
		return "Restart"
	default:
		return "Other"
	}
}

// Event is one discrete input event delivered during a frame.
type Event struct {
	Type EventType
	Key  Key // Only meaningful for EventKeyPressed
}

// KeyPressed builds a key press event.
func KeyPressed(k Key) Event {
	return Event{Type: EventKeyPressed, Key: k}
}

// Closed builds a close request event.
func Closed() Event {
	return Event{Type: EventClosed}
}

// EventQueue collects events between two frames.
// The platform fills it from its input callbacks and drains it once per tick.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns pending events in arrival order and empties the queue.
// The returned slice is owned by the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
