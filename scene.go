package tui

import (
	"time"
)

// Scene is one screen of an application. Run draws frames and handles
// events until it returns the next scene to show, or nil to exit.
type Scene interface {
	Run(w *Window) (Scene, error)
}

// SceneFunc adapts a function to the Scene interface.
type SceneFunc func(w *Window) (Scene, error)

// Run implements Scene.
func (f SceneFunc) Run(w *Window) (Scene, error) {
	return f(w)
}

// Run drives scenes until one returns nil or fails. The window is
// restored on the way out, including on panic.
func Run(w *Window, first Scene) (err error) {
	HandlePanics(w)
	defer func() {
		if restoreErr := w.Restore(); err == nil {
			err = restoreErr
		}
	}()

	scene := first
	for scene != nil {
		next, sceneErr := scene.Run(w)
		if sceneErr != nil {
			return sceneErr
		}
		scene = next
	}
	return nil
}

// DefaultPollTimeout is the frame pacing used by convenience loops: long
// enough to idle cheaply, short enough to stay responsive.
const DefaultPollTimeout = 50 * time.Millisecond
