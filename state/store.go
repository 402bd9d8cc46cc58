package state

import (
	"sync"
	"teleprompter/debounce"
	"teleprompter/layout"
	"teleprompter/log"
	"time"
)

// DefaultSampleDelay is how long interactive resize/move must settle before
// the resulting bounds are handed to the Persister.
const DefaultSampleDelay = 100 * time.Millisecond

// Surface is the presentation window the Store drives.
type Surface interface {
	// Bounds returns the window's current bounds.
	Bounds() layout.Rect
	// SetBounds moves and resizes the window.
	SetBounds(layout.Rect)
	// SetOpacity sets the window opacity in [0.2, 1].
	SetOpacity(float64)
	// SetContentProtection hides the window from screen capture when enabled.
	SetContentProtection(bool)
}

// Persister receives every new state for (deferred) storage.
type Persister interface {
	Save(AppState)
}

// Options configures a Store.
type Options struct {
	// Screen supplies displays and the pointer position. A nil Screen uses a
	// single fallback display.
	Screen layout.Screen
	// Persister stores state. nil disables persistence.
	Persister Persister
	// SampleDelay debounces persistence of interactive resize/move. Zero
	// uses DefaultSampleDelay; a negative value persists immediately.
	SampleDelay time.Duration
}

// Store owns the canonical AppState. Every mutation is sanitized, applied
// atomically and handed to the Persister; callers get deep copies only.
type Store struct {
	mu      sync.Mutex
	state   AppState
	surface Surface

	screen    layout.Screen
	persister Persister
	sampler   *debounce.Debouncer
}

// NewStore creates a Store holding a sanitized copy of initial.
func NewStore(initial AppState, opts Options) *Store {
	screen := opts.Screen
	if screen == nil {
		screen = &layout.StaticScreen{}
	}
	persister := opts.Persister
	if persister == nil {
		persister = nopPersister{}
	}
	delay := opts.SampleDelay
	if delay == 0 {
		delay = DefaultSampleDelay
	}

	s := &Store{
		state:     SanitizeState(initial),
		screen:    screen,
		persister: persister,
	}
	s.sampler = debounce.New(delay, s.persistSampled)
	return s
}

type nopPersister struct{}

func (nopPersister) Save(AppState) {}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Attach connects the presentation surface and applies the current layout to it.
func (s *Store) Attach(surface Surface) {
	s.mu.Lock()
	s.surface = surface
	s.mu.Unlock()
	s.ApplyLayout()
}

// Detach disconnects the surface. Resize, move and layout become no-ops.
func (s *Store) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface = nil
}

// UpdateSettings merges partial over the current settings.
func (s *Store) UpdateSettings(partial any) AppState {
	return s.mutate(true, func(cur AppState) AppState {
		cur.Settings = SanitizeSettings(partial, cur.Settings)
		return cur
	})
}

// UpdateScriptText replaces the script text.
func (s *Store) UpdateScriptText(text string) AppState {
	return s.mutateScript(map[string]any{"text": text})
}

// UpdateCursor sets the scroll offset. Negative or non-finite values are sanitized.
func (s *Store) UpdateCursor(px float64) AppState {
	return s.mutateScript(map[string]any{"cursorPx": px})
}

// UpdateCursorValue sets the scroll offset from an untyped value, such as a
// decoded JSON field. Values that are not numbers keep the current offset.
func (s *Store) UpdateCursorValue(raw any) AppState {
	return s.mutateScript(map[string]any{"cursorPx": raw})
}

// SetScriptFromFile replaces the script with text loaded from path and
// rewinds the cursor. The layout mode is left alone.
func (s *Store) SetScriptFromFile(path, text string) AppState {
	return s.mutateScript(map[string]any{
		"text":         text,
		"lastFilePath": path,
		"cursorPx":     0,
	})
}

// MarkSaved records path as the script's file after a successful save.
func (s *Store) MarkSaved(path string) AppState {
	return s.mutateScript(map[string]any{"lastFilePath": path})
}

// ApplyCommand runs cmd through the playback state machine.
func (s *Store) ApplyCommand(cmd Command) AppState {
	log.InputTrace("command %s", cmd)
	return s.mutate(true, func(cur AppState) AppState {
		next := Transition(cur, cmd)
		if cmd.affectsScript() {
			next.Script.UpdatedAt = nextStamp(cur.Script.UpdatedAt)
		}
		return next
	})
}

// ApplyResize drags the given edge of the window by (dx, dy). It switches to
// floating mode and records the result as the floating bounds. It reports
// false, without touching state, when no surface is attached or nothing changed.
func (s *Store) ApplyResize(edge layout.Edge, dx, dy int) (AppState, bool) {
	return s.interact(func(start, area layout.Rect) (layout.Rect, bool) {
		next := layout.Resize(start, edge, dx, dy, area)
		return next, next != start
	})
}

// ApplyMove drags the window by (dx, dy), switching to floating mode. It
// reports false for zero or fully clamped moves and when no surface is attached.
func (s *Store) ApplyMove(dx, dy int) (AppState, bool) {
	return s.interact(func(start, area layout.Rect) (layout.Rect, bool) {
		return layout.Move(start, dx, dy, area)
	})
}

// ApplyLayout pushes bounds, opacity and capture protection for the current
// state to the surface. It reports false when no surface is attached. Call it
// when the pointer moves to another display so the top strip follows.
func (s *Store) ApplyLayout() bool {
	s.mu.Lock()
	surface := s.surface
	st := s.state.Clone()
	s.mu.Unlock()

	if surface == nil {
		return false
	}
	bounds := s.TargetBounds(st)
	log.LayoutTrace("apply %s bounds %s", st.Settings.Mode, bounds)
	surface.SetBounds(bounds)
	surface.SetOpacity(st.Settings.Opacity)
	surface.SetContentProtection(st.Settings.HideFromCapture)
	return true
}

// TargetBounds returns the window bounds st calls for on the current screen.
func (s *Store) TargetBounds(st AppState) layout.Rect {
	displays := s.screen.Displays()
	if st.Settings.Mode == ModeFloating {
		area := layout.Matching(displays, st.Settings.FloatingBounds).WorkArea
		return layout.ConstrainFloating(st.Settings.FloatingBounds, area)
	}
	area := layout.NearestToPoint(displays, s.screen.CursorPoint()).WorkArea
	return layout.TopStrip(area, st.Settings.FontSizePx, st.Settings.TopOffsetPx)
}

// Close persists a pending sampled resize/move right away.
func (s *Store) Close() {
	s.sampler.Flush()
}

func (s *Store) mutateScript(partial map[string]any) AppState {
	return s.mutate(false, func(cur AppState) AppState {
		prev := cur.Script.UpdatedAt
		cur.Script = SanitizeScript(partial, cur.Script)
		cur.Script.UpdatedAt = nextStamp(prev)
		return cur
	})
}

// mutate replaces the record with fn's result, optionally re-applies the
// layout, and schedules persistence.
func (s *Store) mutate(relayout bool, fn func(AppState) AppState) AppState {
	s.mu.Lock()
	next := fn(s.state.Clone())
	s.state = next
	snapshot := next.Clone()
	s.mu.Unlock()

	if relayout {
		s.ApplyLayout()
	}
	s.persister.Save(snapshot.Clone())
	return snapshot
}

// interact runs a resize or move against the surface's current bounds.
func (s *Store) interact(fn func(start, area layout.Rect) (layout.Rect, bool)) (AppState, bool) {
	s.mu.Lock()
	surface := s.surface
	if surface == nil {
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot, false
	}

	start := surface.Bounds()
	area := layout.Matching(s.screen.Displays(), start).WorkArea
	next, changed := fn(start, area)
	if !changed {
		snapshot := s.state.Clone()
		s.mu.Unlock()
		return snapshot, false
	}

	updated := s.state.Clone()
	settings := updated.Settings
	settings.Mode = ModeFloating
	settings.FloatingBounds = next
	updated.Settings = SanitizeSettings(settings, updated.Settings)
	s.state = updated
	snapshot := updated.Clone()
	s.mu.Unlock()

	log.LayoutTrace("interactive bounds %s -> %s", start, next)
	surface.SetBounds(next)
	s.sampler.Trigger()
	return snapshot, true
}

func (s *Store) persistSampled() {
	s.persister.Save(s.Snapshot())
}

// nextStamp returns the current time, never earlier than prev, so updatedAt
// only moves forward.
func nextStamp(prev time.Time) time.Time {
	now := Now()
	if now.Before(prev) {
		return prev
	}
	return now
}
