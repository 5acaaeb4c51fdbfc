package tui

import (
	"bytes"

	"github.com/termforge/tui/internal/debug"
)

// render shows the active buffer. Only the cells that differ from the
// previous frame are written, bracketed in a synchronized update so the
// terminal displays the frame atomically. Afterwards the buffers swap and
// the new active buffer starts blank.
func (w *Window) render() error {
	if w.inline != nil && !w.inline.active {
		w.activateInline()
	}

	prev := w.buffers[1-w.active]
	cur := w.buffers[w.active]

	var changes []CellChange
	if w.justResized {
		// The screen content is unknown after a resize; repaint from
		// scratch instead of trusting the previous frame.
		if w.inline == nil {
			w.term.Clear()
		}
		changes = NewBuffer(cur.width, cur.height).Diff(cur)
	} else {
		changes = prev.Diff(cur)
	}

	w.term.BeginSyncUpdate()
	w.term.Flush(w.offsetChanges(changes))
	w.syncCursor()
	w.term.EndSyncUpdate()

	if err := w.term.Sync(); err != nil {
		return err
	}

	w.active = 1 - w.active
	w.buffers[w.active].Clear()
	w.justResized = false
	return nil
}

// activateInline claims the bottom rows of the screen for the strip. The
// newlines scroll existing output up so nothing is overwritten.
func (w *Window) activateInline() {
	w.term.WriteDirect(bytes.Repeat([]byte("\r\n"), w.inline.height))
	w.inline.active = true
	w.justResized = true
	debug.Log("inline strip activated at row %d", w.inline.startRow)
}

// offsetChanges translates buffer coordinates to screen coordinates. Only
// inline sessions have an offset.
func (w *Window) offsetChanges(changes []CellChange) []CellChange {
	if w.inline == nil || w.inline.startRow == 0 {
		return changes
	}
	shifted := make([]CellChange, len(changes))
	for i, ch := range changes {
		ch.Loc.Y += w.inline.startRow
		shifted[i] = ch
	}
	return shifted
}

// syncCursor reconciles the terminal cursor with the desired state. A
// visible cursor is repositioned every frame because Flush moves it;
// visibility and shape only change when they actually differ.
func (w *Window) syncCursor() {
	if w.cursorVisible {
		pos := w.cursorPos
		if w.inline != nil {
			pos.Y += w.inline.startRow
		}
		w.term.SetCursor(pos.X, pos.Y)
	}

	if !w.cursorSynced || w.cursorVisible != w.lastVisible {
		if w.cursorVisible {
			w.term.ShowCursor()
		} else {
			w.term.HideCursor()
		}
	}
	if !w.cursorSynced || w.cursorStyle != w.lastStyle {
		if w.cursorStyle != CursorDefault || w.cursorSynced {
			w.term.SetCursorStyle(w.cursorStyle)
		}
	}

	w.lastVisible = w.cursorVisible
	w.lastPos = w.cursorPos
	w.lastStyle = w.cursorStyle
	w.cursorSynced = true
}

// resize reallocates both buffers for the new terminal size and forces a
// full repaint on the next render.
func (w *Window) resize(termWidth, termHeight int) {
	height := termHeight
	if w.inline != nil {
		height = min(w.inline.height, termHeight)
		w.inline.startRow = termHeight - height
	}

	w.buffers[0].Resize(termWidth, height)
	w.buffers[1].Resize(termWidth, height)
	// The previous frame no longer matches the screen; a content-
	// preserving resize would leave stale cells, so blank it.
	w.buffers[1-w.active].Clear()
	w.justResized = true
	debug.Log("resized to %dx%d", termWidth, height)
}
