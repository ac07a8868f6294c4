package sim

import "container/heap"

// EventQueue implements a min-priority queue with deterministic ordering.
// Ordering: time → asset id → event kind (Arrival before PhaseComplete).
// The tie-break is part of the reproducibility contract, not an
// implementation detail: given the same seed, events pop in the same order
// on every run.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make([]Event, 0)}
	heap.Init(q)
	return q
}

// Len implements heap.Interface.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Less implements heap.Interface with the deterministic ordering above.
func (q *EventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]
	if ei.Time() != ej.Time() {
		return ei.Time() < ej.Time()
	}
	if ei.AssetID() != ej.AssetID() {
		return ei.AssetID() < ej.AssetID()
	}
	return ei.Kind() < ej.Kind()
}

// Swap implements heap.Interface.
func (q *EventQueue) Swap(i, j int) {
	q.events[i], q.events[j] = q.events[j], q.events[i]
}

// Push implements heap.Interface.
func (q *EventQueue) Push(x any) {
	q.events = append(q.events, x.(Event))
}

// Pop implements heap.Interface.
func (q *EventQueue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	q.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the queue.
func (q *EventQueue) Schedule(e Event) {
	heap.Push(q, e)
}

// PopNext removes and returns the earliest event, or nil if the queue is empty.
func (q *EventQueue) PopNext() Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(Event)
}

// Peek returns the earliest event without removing it, or nil if empty.
func (q *EventQueue) Peek() Event {
	if q.Len() == 0 {
		return nil
	}
	return q.events[0]
}
