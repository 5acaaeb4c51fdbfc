//go:build unix

package tui

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// stdinReader reads events from a terminal file descriptor using select(2)
// so polling never blocks past its timeout. SIGWINCH is translated into
// ResizeEvents and checked before input so a resize is never starved by a
// busy keyboard.
type stdinReader struct {
	fd      int
	buf     []byte
	partial []byte
	pending []Event
	sigCh   chan os.Signal
}

// NewEventReader creates an EventReader for the given terminal input. The
// terminal should already be in raw mode.
func NewEventReader(in *os.File) (EventReader, error) {
	r := &stdinReader{
		fd:    int(in.Fd()),
		buf:   make([]byte, 256),
		sigCh: make(chan os.Signal, 1),
	}
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	return r, nil
}

func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	if len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		return ev, true
	}

	select {
	case <-r.sigCh:
		w, h := readerTermSize(r.fd)
		return ResizeEvent{Width: w, Height: h}, true
	default:
	}

	ready, err := selectRead(r.fd, timeout)
	if err != nil || !ready {
		return nil, false
	}

	n, err := syscall.Read(r.fd, r.buf)
	if err != nil || n == 0 {
		return nil, false
	}

	data := r.buf[:n]
	if len(r.partial) > 0 {
		data = append(r.partial, data...)
		r.partial = nil
	}

	// A multi-byte character can straddle two reads; hold the incomplete
	// tail for the next poll instead of mangling it.
	if tail := incompleteUTF8Suffix(data); len(tail) > 0 {
		r.partial = append([]byte(nil), tail...)
		data = data[:len(data)-len(tail)]
	}

	r.pending = parseInput(data)
	if len(r.pending) > 0 {
		ev := r.pending[0]
		r.pending = r.pending[1:]
		return ev, true
	}
	return nil, false
}

func (r *stdinReader) Close() error {
	signal.Stop(r.sigCh)
	close(r.sigCh)
	return nil
}

// incompleteUTF8Suffix returns the trailing bytes of data that form the
// start of an unfinished UTF-8 sequence, or nil.
func incompleteUTF8Suffix(data []byte) []byte {
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]

		if b >= 0xC0 {
			var want int
			switch {
			case b < 0xE0:
				want = 2
			case b < 0xF0:
				want = 3
			default:
				want = 4
			}
			if i < want {
				return data[len(data)-i:]
			}
			return nil
		}

		// Continuation byte, keep scanning for the lead.
		if b >= 0x80 {
			continue
		}
		return nil
	}
	return nil
}

// readerTermSize returns the terminal dimensions, falling back to 80x24.
func readerTermSize(fd int) (width, height int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// selectRead waits until fd is readable or the timeout elapses. A negative
// timeout blocks. EINTR reports as not ready so signal delivery surfaces
// on the next poll.
func selectRead(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		val := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &val
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
