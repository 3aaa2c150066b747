package display

import (
	"context"
	"sync"
)

// Screen is the customer-facing display state. Every message replaces the
// whole state; last message wins.
type Screen struct {
	mu      sync.RWMutex
	current Message
}

// NewScreen starts on the welcome view.
func NewScreen() *Screen {
	return &Screen{current: Welcome()}
}

// Apply replaces the displayed state with msg.
func (s *Screen) Apply(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = msg
}

// Current returns the displayed state.
func (s *Screen) Current() Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Run applies messages from ch until it is closed or ctx is done.
func (s *Screen) Run(ctx context.Context, ch <-chan Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.Apply(msg)
		}
	}
}
