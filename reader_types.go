package tui

import "time"

// EventReader reads events from the terminal input. Window polls it once
// per frame; it never blocks past the given timeout.
type EventReader interface {
	// PollEvent reads the next event. Returns (nil, false) on timeout.
	// A zero timeout is a non-blocking check; a negative timeout blocks
	// until an event arrives.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases resources.
	Close() error
}
