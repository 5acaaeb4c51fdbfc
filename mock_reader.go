package tui

import (
	"time"
)

// MockReader implements EventReader for tests, returning queued events in
// order without ever blocking.
type MockReader struct {
	queue  []Event
	closed bool
}

var _ EventReader = (*MockReader)(nil)

// NewMockReader creates a reader that will return the given events.
func NewMockReader(events ...Event) *MockReader {
	return &MockReader{queue: events}
}

// Queue appends events to be returned by future polls.
func (r *MockReader) Queue(events ...Event) {
	r.queue = append(r.queue, events...)
}

// PollEvent returns the next queued event immediately, ignoring the
// timeout.
func (r *MockReader) PollEvent(time.Duration) (Event, bool) {
	if r.closed || len(r.queue) == 0 {
		return nil, false
	}
	ev := r.queue[0]
	r.queue = r.queue[1:]
	return ev, true
}

// Close marks the reader closed; subsequent polls return nothing.
func (r *MockReader) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close was called.
func (r *MockReader) Closed() bool {
	return r.closed
}
