//go:build unix

package tui

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// rawModeState holds the terminal state saved before entering raw mode.
type rawModeState struct {
	prev *term.State
}

func enableRawMode(fd int) (*rawModeState, error) {
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawModeState{prev: prev}, nil
}

func disableRawMode(fd int, state *rawModeState) error {
	if state == nil || state.prev == nil {
		return nil
	}
	return term.Restore(fd, state.prev)
}

// termSize queries the window size of the given fd.
func termSize(fd int) (width, height int, err error) {
	if fd < 0 {
		return 0, 0, unix.EBADF
	}
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
