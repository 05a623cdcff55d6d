// Package sse is a minimal publish/subscribe hub for streaming solve-run
// events to server-sent-event clients, keyed by run ID.
package sse

import "sync"

// subscriberBuffer is the per-subscriber channel depth; a subscriber that
// falls further behind starts losing messages rather than blocking the
// solve goroutine.
const subscriberBuffer = 16

// Hub fans published messages out to every subscriber of a run ID.
// The zero value is not usable; call NewHub.
type Hub struct {
	mu    sync.Mutex
	conns map[string][]chan string
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{conns: map[string][]chan string{}}
}

// Subscribe registers a new subscriber for id and returns its receive
// channel together with an unsubscribe func. Unsubscribing is idempotent
// enough for a deferred call.
func (h *Hub) Subscribe(id string) (<-chan string, func()) {
	ch := make(chan string, subscriberBuffer)

	h.mu.Lock()
	h.conns[id] = append(h.conns[id], ch)
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		list := h.conns[id]
		for i, c := range list {
			if c == ch {
				h.conns[id] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(h.conns[id]) == 0 {
			delete(h.conns, id)
		}
	}

	return ch, cancel
}

// Publish delivers msg to every current subscriber of id. Subscribers with
// a full buffer are skipped: the trace stream is lossy by contract, never
// back-pressuring.
func (h *Hub) Publish(id, msg string) {
	h.mu.Lock()
	list := append([]chan string(nil), h.conns[id]...)
	h.mu.Unlock()

	for _, ch := range list {
		select {
		case ch <- msg:
		default:
		}
	}
}
