package tui

import (
	"time"
)

// drainLimit caps how many queued events one poll will consume so a
// flooded input can never stall rendering.
const drainLimit = 256

// pollEvents replaces the event queue with whatever arrived since the
// last frame. The first read waits up to the timeout; the rest drain
// without blocking.
func (w *Window) pollEvents(poll time.Duration) {
	w.events = w.events[:0]

	ev, ok := w.reader.PollEvent(poll)
	for ok {
		w.handleEvent(ev)
		if len(w.events) >= drainLimit {
			break
		}
		ev, ok = w.reader.PollEvent(0)
	}
}

func (w *Window) handleEvent(ev Event) {
	switch e := ev.(type) {
	case ResizeEvent:
		w.resize(e.Width, e.Height)
	case MouseEvent:
		if w.inline != nil {
			e.Y -= w.inline.startRow
			ev = e
		}
		w.mousePos = e.Pos()
	}
	w.events = append(w.events, ev)
}

// Events returns the events received during the last Update.
func (w *Window) Events() []Event {
	return w.events
}

// InsertEvent appends a synthetic event to the queue. Useful for tests
// and for components that translate events.
func (w *Window) InsertEvent(ev Event) {
	w.events = append(w.events, ev)
}

// ClearEvents drops all queued events.
func (w *Window) ClearEvents() {
	w.events = w.events[:0]
}

// HasEvent reports whether any queued event satisfies the predicate.
func (w *Window) HasEvent(match func(Event) bool) bool {
	for _, ev := range w.events {
		if match(ev) {
			return true
		}
	}
	return false
}

// HasKey reports whether the given key (with an optional exact modifier
// combination) was pressed during the last Update.
func (w *Window) HasKey(key Key, mods ...Modifier) bool {
	return w.HasEvent(func(ev Event) bool {
		k, ok := ev.(KeyEvent)
		return ok && k.Is(key, mods...)
	})
}

// MousePos returns the last reported mouse position in buffer
// coordinates.
func (w *Window) MousePos() Vec2 {
	return w.mousePos
}

// Hover reports whether the mouse is inside the given rectangle.
func (w *Window) Hover(rect Rect) bool {
	return rect.Contains(w.mousePos)
}
