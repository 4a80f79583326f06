package notify

import (
	"encoding/json"
	"sync"

	"github.com/linskybing/tracker-go/internal/metrics"
	"github.com/rs/zerolog/log"
)

const DefaultBuffer = 64

// Listener is one registered receiver of broadcast messages.
type Listener struct {
	send chan []byte
}

// Messages is closed when the listener is unregistered.
func (l *Listener) Messages() <-chan []byte {
	return l.send
}

// Hub fans messages out to every registered listener. Broadcast never
// blocks: a listener whose buffer is full misses the message.
type Hub struct {
	mu        sync.RWMutex
	listeners map[*Listener]struct{}
	buffer    int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		listeners: make(map[*Listener]struct{}),
		buffer:    buffer,
	}
}

func (h *Hub) Register() *Listener {
	l := &Listener{send: make(chan []byte, h.buffer)}
	h.mu.Lock()
	h.listeners[l] = struct{}{}
	n := len(h.listeners)
	h.mu.Unlock()

	metrics.Listeners.Set(float64(n))
	return l
}

// Unregister removes l and closes its channel. Calling it twice is safe.
func (h *Hub) Unregister(l *Listener) {
	h.mu.Lock()
	if _, ok := h.listeners[l]; ok {
		delete(h.listeners, l)
		close(l.send)
	}
	n := len(h.listeners)
	h.mu.Unlock()

	metrics.Listeners.Set(float64(n))
}

// Broadcast delivers msg to every listener registered at the time of the call.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for l := range h.listeners {
		select {
		case l.send <- msg:
		default:
			metrics.BroadcastDropped.Inc()
		}
	}
}

// Publish encodes evt as JSON and broadcasts it.
func (h *Hub) Publish(evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Str("type", evt.Type).Msg("encode event")
		return
	}
	h.Broadcast(data)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

// Close unregisters every listener.
func (h *Hub) Close() {
	h.mu.Lock()
	for l := range h.listeners {
		delete(h.listeners, l)
		close(l.send)
	}
	h.mu.Unlock()

	metrics.Listeners.Set(0)
}
