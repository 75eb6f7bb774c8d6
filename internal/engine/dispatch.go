package engine

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/matheus3301/chatters/internal/chat"
)

// task is one unit of lane work. A task without a mutation is a barrier.
// track registers an optimistic send with the outbox in lane order, so an
// outcome that raced ahead of the insert still resolves it.
type task struct {
	mut   chat.Mutation
	track bool
	done  chan error
}

// lanes serializes mutations per conversation. Every conversation hashes onto
// one lane and each lane has a single worker, so one conversation is never
// mutated concurrently while distinct lanes proceed in parallel.
type lanes struct {
	chans []chan task
	wg    sync.WaitGroup
}

func newLanes(n, buffer int, apply func(task)) *lanes {
	l := &lanes{chans: make([]chan task, n)}
	for i := range l.chans {
		ch := make(chan task, buffer)
		l.chans[i] = ch
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			for t := range ch {
				apply(t)
			}
		}()
	}
	return l
}

func (l *lanes) lane(id chat.ConversationID) chan task {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id.Backend))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(id.Native))
	return l.chans[h.Sum32()%uint32(len(l.chans))]
}

// submit blocks while the lane is full, which slows the submitting backend
// down without affecting other lanes' consumers.
func (l *lanes) submit(ctx context.Context, id chat.ConversationID, t task) error {
	select {
	case l.lane(id) <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close stops accepting work and waits for queued tasks to finish.
func (l *lanes) close() {
	for _, ch := range l.chans {
		close(ch)
	}
	l.wg.Wait()
}

// barrier waits until every task queued before it has been applied.
func (l *lanes) barrier(ctx context.Context) error {
	waits := make([]chan error, 0, len(l.chans))
	for _, ch := range l.chans {
		done := make(chan error, 1)
		select {
		case ch <- task{done: done}:
			waits = append(waits, done)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	for _, done := range waits {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
