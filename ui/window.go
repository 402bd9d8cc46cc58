package ui

import (
	"sync"
	"teleprompter/layout"
	"teleprompter/log"
	"teleprompter/state"
)

// Window is the terminal stand-in for the overlay window. It records the
// bounds, opacity and capture protection the Store applies, and the view
// renders them.
type Window struct {
	mu        sync.Mutex
	bounds    layout.Rect
	opacity   float64
	protected bool
}

// NewWindow returns a window with default floating bounds.
func NewWindow() *Window {
	d := state.DefaultSettings()
	return &Window{
		bounds:    d.FloatingBounds,
		opacity:   d.Opacity,
		protected: d.HideFromCapture,
	}
}

func (w *Window) Bounds() layout.Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bounds
}

func (w *Window) SetBounds(r layout.Rect) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if r != w.bounds {
		log.RenderTrace("window", "bounds %s", r)
	}
	w.bounds = r
}

func (w *Window) SetOpacity(o float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.opacity = o
}

func (w *Window) SetContentProtection(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.protected = on
}

// WindowInfo is a consistent copy of the window's properties.
type WindowInfo struct {
	Bounds    layout.Rect
	Opacity   float64
	Protected bool
}

// Info returns the window's current properties.
func (w *Window) Info() WindowInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return WindowInfo{Bounds: w.bounds, Opacity: w.opacity, Protected: w.protected}
}

var _ state.Surface = (*Window)(nil)
