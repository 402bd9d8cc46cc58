package config

import (
	"sync"
	"teleprompter/debounce"
	"teleprompter/log"
	"teleprompter/state"
	"time"
)

// DefaultSaveDelay is how long state must stay unchanged before it is written.
const DefaultSaveDelay = 80 * time.Millisecond

// StateWriter coalesces bursts of state changes into single writes of the
// latest state. It implements state.Persister.
type StateWriter struct {
	file      *StateFile
	debouncer *debounce.Debouncer

	mu      sync.Mutex
	pending *state.AppState

	// writeMu serializes file writes between the timer and Flush.
	writeMu  sync.Mutex
	failures *log.Every
	lastErr  error
}

// NewStateWriter returns a writer for file. Zero delay uses DefaultSaveDelay;
// a negative delay writes on every Save.
func NewStateWriter(file *StateFile, delay time.Duration) *StateWriter {
	if delay == 0 {
		delay = DefaultSaveDelay
	}
	w := &StateWriter{
		file:     file,
		failures: log.NewEvery(5 * time.Second),
	}
	w.debouncer = debounce.New(delay, w.write)
	return w
}

// Save records st as the state to write and restarts the quiet period.
func (w *StateWriter) Save(st state.AppState) {
	w.mu.Lock()
	w.pending = &st
	w.mu.Unlock()
	w.debouncer.Trigger()
}

// Flush writes the pending state synchronously, if any.
func (w *StateWriter) Flush() {
	w.debouncer.Stop()
	w.write()
}

// Pending reports whether a state is waiting to be written.
func (w *StateWriter) Pending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.pending != nil
}

// Err returns the error of the most recent write, nil after a success.
func (w *StateWriter) Err() error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	return w.lastErr
}

func (w *StateWriter) write() {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	st := w.pending
	w.pending = nil
	w.mu.Unlock()
	if st == nil {
		return
	}

	w.lastErr = w.file.Save(*st)
	if w.lastErr != nil && w.failures.ShouldLog() {
		log.ErrorLog.Printf("failed to save state: %v", w.lastErr)
	}
}

var _ state.Persister = (*StateWriter)(nil)
