package tui

import (
	"slices"
	"testing"
)

func newTestWindow(t *testing.T, width, height int, opts ...WindowOption) (*Window, *MockTerminal, *MockReader) {
	t.Helper()
	term := NewMockTerminal(width, height)
	reader := NewMockReader()
	w, err := NewWindow(term, reader, opts...)
	if err != nil {
		t.Fatalf("NewWindow() error: %v", err)
	}
	return w, term, reader
}

func TestNewWindow_SessionSetup(t *testing.T) {
	_, term, _ := newTestWindow(t, 20, 5)

	if !term.InRawMode() {
		t.Error("terminal not in raw mode")
	}
	if !term.InAltScreen() {
		t.Error("terminal not on alternate screen")
	}
	if !term.CursorHidden() {
		t.Error("cursor not hidden")
	}

	// Raw mode comes first so no escape output can echo; everything is
	// flushed in one Sync.
	rawIdx := slices.Index(term.Ops, "enterRaw")
	altIdx := slices.Index(term.Ops, "enterAlt")
	syncIdx := slices.Index(term.Ops, "sync")
	if rawIdx == -1 || altIdx == -1 || syncIdx == -1 {
		t.Fatalf("missing setup ops: %v", term.Ops)
	}
	if rawIdx > altIdx || altIdx > syncIdx {
		t.Errorf("setup order wrong: %v", term.Ops)
	}
}

func TestNewWindow_Options(t *testing.T) {
	_, term, _ := newTestWindow(t, 20, 5, WithoutMouse(), WithCursor())

	if slices.Contains(term.Ops, "enableMouse") {
		t.Error("mouse enabled despite WithoutMouse")
	}
	if term.CursorHidden() {
		t.Error("cursor hidden despite WithCursor")
	}
}

func TestWindow_BufferMatchesTerminalSize(t *testing.T) {
	w, _, _ := newTestWindow(t, 20, 5)

	if w.Size() != V(20, 5) {
		t.Errorf("Size() = %v, want %v", w.Size(), V(20, 5))
	}
}

func TestWindow_Update_FlushesFirstFrame(t *testing.T) {
	w, term, _ := newTestWindow(t, 20, 5)

	w.RenderAt(V(1, 1), Text("hi"))
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if term.CellAt(1, 1).Text != "h" || term.CellAt(2, 1).Text != "i" {
		t.Errorf("terminal content = %q", term.Content())
	}
	if len(term.FlushedChanges) != 2 {
		t.Errorf("flushed %d changes, want 2", len(term.FlushedChanges))
	}
}

func TestWindow_Update_SecondIdenticalFrameFlushesNothing(t *testing.T) {
	w, term, _ := newTestWindow(t, 20, 5)

	w.RenderAt(V(0, 0), Text("steady"))
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	flushed := len(term.FlushedChanges)

	w.RenderAt(V(0, 0), Text("steady"))
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if len(term.FlushedChanges) != flushed {
		t.Errorf("identical frame flushed %d extra changes",
			len(term.FlushedChanges)-flushed)
	}
}

func TestWindow_Update_OnlyDifferenceFlushed(t *testing.T) {
	w, term, _ := newTestWindow(t, 20, 5)

	w.RenderAt(V(0, 0), Text("abc"))
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	flushed := len(term.FlushedChanges)

	w.RenderAt(V(0, 0), Text("abd"))
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if got := len(term.FlushedChanges) - flushed; got != 1 {
		t.Errorf("flushed %d changes for a one-cell difference", got)
	}
	if term.CellAt(2, 0).Text != "d" {
		t.Errorf("terminal content = %q", term.Content())
	}
}

func TestWindow_Update_SwapsToBlankBuffer(t *testing.T) {
	w, _, _ := newTestWindow(t, 20, 5)

	w.RenderAt(V(0, 0), Text("frame"))
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if c, _ := w.Buffer().Get(V(0, 0)); c.Text != " " {
		t.Error("active buffer not blank after swap")
	}
}

func TestWindow_Update_NotDrawingClearsScreen(t *testing.T) {
	w, term, _ := newTestWindow(t, 20, 5)

	w.RenderAt(V(0, 0), Text("gone"))
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	// Nothing drawn this frame: the diff must erase the old content.
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if got := term.Content(); got != "\n\n\n\n" {
		t.Errorf("terminal content = %q, want blank", got)
	}
}

func TestWindow_Update_WrapsFrameInSyncUpdate(t *testing.T) {
	w, term, _ := newTestWindow(t, 20, 5)

	term.Ops = nil
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	begin := slices.Index(term.Ops, "beginSync")
	flush := slices.Index(term.Ops, "flush")
	end := slices.Index(term.Ops, "endSync")
	sync := slices.Index(term.Ops, "sync")
	if begin == -1 || flush == -1 || end == -1 || sync == -1 {
		t.Fatalf("missing frame ops: %v", term.Ops)
	}
	if !(begin < flush && flush < end && end < sync) {
		t.Errorf("frame op order wrong: %v", term.Ops)
	}
}

func TestWindow_Update_DrainsEvents(t *testing.T) {
	w, _, reader := newTestWindow(t, 20, 5)
	reader.Queue(
		KeyEvent{Key: KeyRune, Rune: 'a'},
		KeyEvent{Key: KeyEnter},
	)

	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if len(w.Events()) != 2 {
		t.Fatalf("got %d events, want 2", len(w.Events()))
	}
	if !w.HasKey(KeyEnter) {
		t.Error("HasKey(KeyEnter) = false")
	}
	if w.HasKey(KeyEscape) {
		t.Error("HasKey(KeyEscape) = true for event never sent")
	}
}

func TestWindow_Update_EventsReplacedEachFrame(t *testing.T) {
	w, _, reader := newTestWindow(t, 20, 5)
	reader.Queue(KeyEvent{Key: KeyEnter})

	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if len(w.Events()) != 0 {
		t.Errorf("stale events survived the next frame: %v", w.Events())
	}
}

func TestWindow_InsertEvent(t *testing.T) {
	w, _, _ := newTestWindow(t, 20, 5)

	w.InsertEvent(KeyEvent{Key: KeyTab})
	if !w.HasKey(KeyTab) {
		t.Error("inserted event not visible")
	}

	w.ClearEvents()
	if len(w.Events()) != 0 {
		t.Error("ClearEvents left events behind")
	}
}

func TestWindow_MouseTracking(t *testing.T) {
	w, _, reader := newTestWindow(t, 20, 5)
	reader.Queue(MouseEvent{Button: MouseNone, Action: MouseMove, X: 7, Y: 2})

	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if w.MousePos() != V(7, 2) {
		t.Errorf("MousePos() = %v, want %v", w.MousePos(), V(7, 2))
	}
	if !w.Hover(NewRect(5, 1, 5, 3)) {
		t.Error("Hover inside rect = false")
	}
	if w.Hover(NewRect(0, 0, 3, 1)) {
		t.Error("Hover outside rect = true")
	}
}

func TestWindow_CursorSync(t *testing.T) {
	w, term, _ := newTestWindow(t, 20, 5)

	w.SetCursor(V(3, 2))
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if term.CursorHidden() {
		t.Error("cursor hidden after SetCursor")
	}
	if x, y := term.CursorPos(); x != 3 || y != 2 {
		t.Errorf("cursor at (%d, %d), want (3, 2)", x, y)
	}

	w.HideCursor()
	if err := w.Update(0); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !term.CursorHidden() {
		t.Error("cursor still visible after HideCursor")
	}
}

func TestWindow_Keyboard_Unsupported(t *testing.T) {
	term := NewMockTerminal(20, 5)
	term.SetCaps(Capabilities{Colors: ColorTrue, Unicode: true, AltScreen: true})
	w, err := NewWindow(term, NewMockReader())
	if err != nil {
		t.Fatalf("NewWindow() error: %v", err)
	}

	if err := w.Keyboard(); err == nil {
		t.Error("Keyboard() succeeded without terminal support")
	}
}

func TestWindow_Keyboard_PoppedOnRestore(t *testing.T) {
	w, term, _ := newTestWindow(t, 20, 5)

	if err := w.Keyboard(); err != nil {
		t.Fatalf("Keyboard() error: %v", err)
	}
	if err := w.Restore(); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	if !slices.Contains(term.Ops, "popKeyboard") {
		t.Errorf("keyboard enhancements not popped on restore: %v", term.Ops)
	}
}

func TestWindow_Restore(t *testing.T) {
	w, term, reader := newTestWindow(t, 20, 5)

	if err := w.Restore(); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	if term.InRawMode() {
		t.Error("still in raw mode after restore")
	}
	if term.InAltScreen() {
		t.Error("still on alternate screen after restore")
	}
	if term.CursorHidden() {
		t.Error("cursor still hidden after restore")
	}
	if !reader.Closed() {
		t.Error("reader not closed")
	}

	// Raw mode exits only after the escape output is flushed.
	syncIdx := slices.Index(term.Ops, "exitAlt")
	rawIdx := slices.Index(term.Ops, "exitRaw")
	if syncIdx > rawIdx {
		t.Errorf("restore order wrong: %v", term.Ops)
	}
}

func TestWindow_Restore_Idempotent(t *testing.T) {
	w, term, _ := newTestWindow(t, 20, 5)

	if err := w.Restore(); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	ops := len(term.Ops)

	if err := w.Restore(); err != nil {
		t.Fatalf("second Restore() error: %v", err)
	}
	if len(term.Ops) != ops {
		t.Errorf("second restore issued %d extra ops", len(term.Ops)-ops)
	}
}
