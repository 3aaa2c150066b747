package display

import (
	"context"
	"sync"
)

// Publisher posts a message to a display channel. Implementations never
// wait for a receiver to acknowledge.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// OnDrop registers a callback invoked whenever a subscriber falls behind
// and a stale message is discarded.
func OnDrop(fn func()) HubOption {
	return func(h *Hub) { h.onDrop = fn }
}

// Hub fans messages out to in-process subscribers. It remembers the latest
// message so a screen that subscribes late starts from the current state.
type Hub struct {
	mu     sync.Mutex
	buffer int
	latest *Message
	subs   map[int]chan Message
	nextID int
	onDrop func()
}

// NewHub creates a hub whose subscribers buffer up to buffer messages.
func NewHub(buffer int, opts ...HubOption) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	h := &Hub{
		buffer: buffer,
		subs:   make(map[int]chan Message),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Publish delivers msg to every subscriber without blocking. A subscriber
// whose buffer is full loses its oldest pending message so the newest
// state still gets through.
func (h *Hub) Publish(_ context.Context, msg Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	m := msg
	h.latest = &m
	for _, ch := range h.subs {
		notify(h.onDrop, offer(ch, msg))
	}
	return nil
}

// offer sends msg on ch without blocking. When ch is full its oldest
// message is discarded to make room. It returns how many messages were lost.
func offer(ch chan Message, msg Message) int {
	select {
	case ch <- msg:
		return 0
	default:
	}
	lost := 0
	select {
	case <-ch:
		lost++
	default:
	}
	select {
	case ch <- msg:
	default:
		lost++
	}
	return lost
}

func notify(onDrop func(), n int) {
	if onDrop == nil {
		return
	}
	for i := 0; i < n; i++ {
		onDrop()
	}
}

// Subscribe registers a receiver. The channel starts with the latest
// message, if any. Calling the returned function unsubscribes and closes
// the channel.
func (h *Hub) Subscribe() (<-chan Message, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Message, h.buffer)
	if h.latest != nil {
		ch <- *h.latest
	}
	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
}

// Subscribers returns the number of registered receivers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
