package tui

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
)

var (
	panicMu     sync.Mutex
	panicWindow *Window
	signalOnce  sync.Once
)

// HandlePanics registers the window for emergency restore. A panic caught
// by Protect, or a SIGINT/SIGTERM, restores the terminal before the
// process dies so the shell is not left in raw mode. Registering a second
// window replaces the first.
func HandlePanics(w *Window) {
	panicMu.Lock()
	panicWindow = w
	panicMu.Unlock()

	signalOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-ch
			restorePanicWindow()
			os.Exit(1)
		}()
	})
}

// Protect runs fn, restoring the terminal if it panics. The panic is
// re-raised after the restore so the stack trace lands on a usable
// screen.
func Protect(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			restorePanicWindow()
			fmt.Fprintf(os.Stderr, "panic: %v\n\n%s", r, debug.Stack())
			panic(r)
		}
	}()
	fn()
}

func restorePanicWindow() {
	panicMu.Lock()
	w := panicWindow
	panicWindow = nil
	panicMu.Unlock()
	if w != nil {
		w.Restore()
	}
}

// clearPanicWindow drops the registration after a normal Restore.
func clearPanicWindow(w *Window) {
	panicMu.Lock()
	if panicWindow == w {
		panicWindow = nil
	}
	panicMu.Unlock()
}
