// Package tui is a terminal rendering engine: it turns an in-memory grid of
// styled character cells into minimal escape-sequence output.
//
// The engine is built from four pieces that share one data structure, the
// cell [Buffer]:
//
//   - [Cell] and [Buffer] form the styled-cell grid model, with
//     Unicode-width-aware placement (wide glyphs occupy two columns, the
//     second marked by a continuation placeholder).
//   - [Buffer.Diff] computes the minimal set of screen writes between two
//     frames, skipping continuation columns.
//   - [Layout] and [ResolveConstraints] partition rectangular space into
//     child rectangles under mixed sizing rules.
//   - [Window] owns the terminal session: raw mode, full-screen or inline
//     rendering, cursor synchronization, and resize handling, driven by a
//     per-frame Update cycle.
//
// Anything that implements [Render] can be painted into a buffer:
//
//	w, err := tui.Init()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer w.Restore()
//	tui.HandlePanics(w)
//
//	for {
//		tui.RenderAt(w.Buffer(), tui.V(2, 1), tui.Text("hello, terminal"))
//		if err := w.Update(50 * time.Millisecond); err != nil {
//			return
//		}
//		if w.HasKey(tui.KeyEscape) {
//			return
//		}
//	}
package tui
