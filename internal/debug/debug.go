// Package debug provides optional file-based debug logging.
//
// A terminal application cannot log to stdout or stderr while it owns the
// screen, so messages go to a file instead. When the TERMFORGE_DEBUG
// environment variable is set to a file path, messages are appended there;
// otherwise logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	opened  bool
)

// Log appends a timestamped message to the debug log, if enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !opened {
		opened = true
		path := os.Getenv("TERMFORGE_DEBUG")
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		logFile = f
	}
	if logFile == nil {
		return
	}

	fmt.Fprintf(logFile, "[%s] %s\n",
		time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	opened = false
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
