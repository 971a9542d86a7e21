package events

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Subscriber is one SSE client. Frames arrive on Ch; the hub closes Ch
// when the subscriber is dropped for falling behind.
type Subscriber struct {
	ID string

	// Ch delivers raw JSON frames ready to write as SSE data lines.
	Ch chan []byte

	// instanceFilter limits delivery to one instance's events; empty
	// receives everything.
	instanceFilter string
}

// Hub fans NOTIFY payloads out to SSE subscribers. Each pod has one
// Hub; cross-pod distribution happens via PostgreSQL NOTIFY, so every
// pod's hub sees every event regardless of which pod published it.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscriber
	buffer      int
	closed      bool
}

// NewHub creates a new Hub. buffer is the per-subscriber channel depth.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 64
	}
	return &Hub{
		subscribers: make(map[string]*Subscriber),
		buffer:      buffer,
	}
}

// Subscribe registers a new SSE client. The returned cancel function is
// idempotent and must be called when the client disconnects.
func (h *Hub) Subscribe(instanceFilter string) (*Subscriber, func()) {
	sub := &Subscriber{
		ID:             uuid.New().String(),
		Ch:             make(chan []byte, h.buffer),
		instanceFilter: instanceFilter,
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(sub.Ch)
		return sub, func() {}
	}
	h.subscribers[sub.ID] = sub
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() { h.remove(sub.ID) })
	}
	return sub, cancel
}

// Broadcast delivers a payload to every matching subscriber. A
// subscriber whose buffer is full is dropped: SSE clients reconnect
// and catch up from Last-Event-ID, so dropping beats blocking the
// dispatch goroutine.
//
// Sends are non-blocking, so holding the write lock for the whole loop
// is cheap and serializes sends against subscriber removal — a closed
// channel is never sent to.
func (h *Hub) Broadcast(payload []byte) {
	instanceID := extractInstanceID(payload)

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, sub := range h.subscribers {
		if sub.instanceFilter != "" && sub.instanceFilter != instanceID {
			continue
		}
		select {
		case sub.Ch <- payload:
		default:
			slog.Warn("Dropping slow SSE subscriber", "subscriber_id", id)
			delete(h.subscribers, id)
			close(sub.Ch)
		}
	}
}

// ActiveSubscribers returns the current subscriber count.
func (h *Hub) ActiveSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close drops all subscribers; used during shutdown so SSE handlers
// unblock and drain.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subscribers {
		close(sub.Ch)
		delete(h.subscribers, id)
	}
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sub, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(sub.Ch)
	}
}

// extractInstanceID pulls the routing field out of a frame; malformed
// frames broadcast to everyone rather than silently vanishing.
func extractInstanceID(payload []byte) string {
	var routing struct {
		InstanceID string `json:"instance_id"`
	}
	if err := json.Unmarshal(payload, &routing); err != nil {
		return ""
	}
	return routing.InstanceID
}
