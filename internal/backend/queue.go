package backend

import "sync"

// Queue is an unbounded FIFO of raw events feeding a channel. Backends push
// from protocol callbacks, which must never block on a slow consumer.
type Queue struct {
	mu     sync.Mutex
	items  []RawEvent
	closed bool
	wake   chan struct{}
	done   chan struct{}
	out    chan RawEvent
	once   sync.Once
}

// NewQueue starts a queue. Close must be called to release its goroutine.
func NewQueue() *Queue {
	q := &Queue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		out:  make(chan RawEvent),
	}
	go q.pump()
	return q
}

// Push enqueues evt. It reports false once the queue is closed.
func (q *Queue) Push(evt RawEvent) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, evt)
	q.mu.Unlock()
	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Events returns the consuming side. It is closed after Close.
func (q *Queue) Events() <-chan RawEvent {
	return q.out
}

// Len returns the number of events not yet consumed.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close discards pending events and closes the channel.
func (q *Queue) Close() {
	q.once.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.items = nil
		q.mu.Unlock()
		close(q.done)
	})
}

func (q *Queue) pump() {
	defer close(q.out)
	for {
		q.mu.Lock()
		for len(q.items) == 0 && !q.closed {
			q.mu.Unlock()
			select {
			case <-q.wake:
			case <-q.done:
			}
			q.mu.Lock()
		}
		if q.closed {
			q.mu.Unlock()
			return
		}
		evt := q.items[0]
		q.items[0] = RawEvent{}
		q.items = q.items[1:]
		q.mu.Unlock()

		select {
		case q.out <- evt:
		case <-q.done:
			return
		}
	}
}
