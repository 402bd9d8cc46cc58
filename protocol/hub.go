package protocol

import (
	"sync"

	"github.com/google/uuid"
)

// Listener receives published events. It runs on the publisher's goroutine
// and must not block.
type Listener func(Event)

// Hub fans events out to any number of listeners. Publishing with no
// listeners is fine.
type Hub struct {
	mu        sync.RWMutex
	listeners map[uuid.UUID]Listener
	order     []uuid.UUID
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{listeners: make(map[uuid.UUID]Listener)}
}

// Subscribe registers fn and returns a function that removes it.
func (h *Hub) Subscribe(fn Listener) (cancel func()) {
	id := uuid.New()

	h.mu.Lock()
	h.listeners[id] = fn
	h.order = append(h.order, id)
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub) remove(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.listeners, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of listeners.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

// Publish delivers evt to every listener in subscription order.
func (h *Hub) Publish(evt Event) {
	h.mu.RLock()
	listeners := make([]Listener, 0, len(h.order))
	for _, id := range h.order {
		listeners = append(listeners, h.listeners[id])
	}
	h.mu.RUnlock()

	for _, fn := range listeners {
		fn(evt)
	}
}

// Channel subscribes a buffered channel. When the buffer is full the oldest
// event is dropped, so a slow reader always ends up with the latest state.
// The channel is never closed.
func (h *Hub) Channel(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	cancel := h.Subscribe(func(evt Event) {
		for {
			select {
			case ch <- evt:
				return
			default:
			}
			select {
			case <-ch:
			default:
			}
		}
	})
	return ch, cancel
}
