package ecs

// Event is a world event payload. Data carries the typed event value.
type Event struct {
	Type string
	Data any
}

// EventQueue is a FIFO of frame events. Systems push during their update;
// consumers drain before the frame ends, leftovers are discarded.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all pending events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
