package display

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrQueueClosed is returned by Publish after Close.
var ErrQueueClosed = errors.New("display queue closed")

const deliverTimeout = 5 * time.Second

// Queue hands messages to a slower Publisher from a single goroutine, so
// callers never wait on the channel behind it. Messages are delivered in
// the order they were published; when the buffer is full the oldest
// pending message is dropped.
type Queue struct {
	target Publisher
	onDrop func()

	mu     sync.Mutex
	ch     chan Message
	closed chan struct{}
	done   chan struct{}
	once   sync.Once
}

// NewQueue starts delivering to target. onDrop may be nil.
func NewQueue(target Publisher, buffer int, onDrop func()) *Queue {
	if buffer < 1 {
		buffer = 1
	}
	q := &Queue{
		target: target,
		onDrop: onDrop,
		ch:     make(chan Message, buffer),
		closed: make(chan struct{}),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

// Publish enqueues msg and returns immediately.
func (q *Queue) Publish(_ context.Context, msg Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	select {
	case <-q.closed:
		return ErrQueueClosed
	default:
	}
	notify(q.onDrop, offer(q.ch, msg))
	return nil
}

// Close stops accepting messages, delivers what is pending and waits for
// the delivery goroutine to exit.
func (q *Queue) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		close(q.closed)
		q.mu.Unlock()
	})
	<-q.done
}

func (q *Queue) run() {
	defer close(q.done)
	for {
		select {
		case msg := <-q.ch:
			q.deliver(msg)
		case <-q.closed:
			for {
				select {
				case msg := <-q.ch:
					q.deliver(msg)
				default:
					return
				}
			}
		}
	}
}

func (q *Queue) deliver(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()
	if err := q.target.Publish(ctx, msg); err != nil {
		slog.Warn("Display delivery failed", "type", msg.Type, "order_id", msg.OrderID, "error", err)
	}
}
