package layout

import "github.com/ukaji3/sheetdash-go/pkg/sheetdash/models"

type listener struct {
	move func(models.Point)
	up   func(models.Point)
}

// Hub is an in-process Pointer. Hosts feed it document-level events with Move
// and Up; it forwards them to whoever is listening.
type Hub struct {
	listeners map[int]listener
	next      int
}

// NewHub returns a Hub with no listeners.
func NewHub() *Hub {
	return &Hub{listeners: make(map[int]listener)}
}

// Listen implements Pointer.
func (h *Hub) Listen(move func(models.Point), up func(models.Point)) func() {
	id := h.next
	h.next++
	h.listeners[id] = listener{move: move, up: up}
	return func() { delete(h.listeners, id) }
}

// Move dispatches a pointer move to every listener.
func (h *Hub) Move(p models.Point) {
	for _, l := range h.snapshot() {
		if l.move != nil {
			l.move(p)
		}
	}
}

// Up dispatches a pointer release to every listener.
func (h *Hub) Up(p models.Point) {
	for _, l := range h.snapshot() {
		if l.up != nil {
			l.up(p)
		}
	}
}

// Len returns the number of registered listeners.
func (h *Hub) Len() int {
	return len(h.listeners)
}

// snapshot copies the listeners so handlers may unregister during dispatch.
func (h *Hub) snapshot() []listener {
	out := make([]listener, 0, len(h.listeners))
	for _, l := range h.listeners {
		out = append(out, l)
	}
	return out
}
