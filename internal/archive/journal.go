package archive

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/matheus3301/chatters/internal/metrics"
	"github.com/matheus3301/chatters/internal/store"
	"go.uber.org/zap"
)

const maxBatch = 500

// Journal writes committed store changes to the archive in the background.
// Record never blocks; records are written in batches, one transaction each,
// in the order they were recorded.
type Journal struct {
	db     *DB
	logger *zap.Logger

	mu      sync.Mutex
	pending []store.Record
	closed  bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewJournal starts the background writer. Close flushes and stops it.
func NewJournal(db *DB, logger *zap.Logger) *Journal {
	if logger == nil {
		logger = zap.NewNop()
	}
	j := &Journal{
		db:     db,
		logger: logger.Named("archive"),
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go j.run()
	return j
}

// Record implements store.Journal.
func (j *Journal) Record(rec store.Record) {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return
	}
	j.pending = append(j.pending, rec)
	j.mu.Unlock()
	select {
	case j.wake <- struct{}{}:
	default:
	}
}

// Close writes everything recorded so far and stops the writer.
func (j *Journal) Close() error {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		<-j.done
		return nil
	}
	j.closed = true
	j.mu.Unlock()
	close(j.stop)
	<-j.done
	return nil
}

func (j *Journal) run() {
	defer close(j.done)
	for {
		select {
		case <-j.wake:
			j.drain()
		case <-j.stop:
			j.drain()
			return
		}
	}
}

func (j *Journal) drain() {
	for {
		j.mu.Lock()
		n := min(len(j.pending), maxBatch)
		batch := j.pending[:n:n]
		j.pending = j.pending[n:]
		if len(j.pending) == 0 {
			j.pending = nil
		}
		j.mu.Unlock()
		if n == 0 {
			return
		}
		start := time.Now()
		if err := j.write(batch); err != nil {
			metrics.ArchiveRecords.WithLabelValues("error").Add(float64(n))
			j.logger.Error("archive write failed", zap.Int("records", n), zap.Error(err))
			continue
		}
		metrics.ArchiveRecords.WithLabelValues("ok").Add(float64(n))
		j.logger.Debug("archived", zap.Int("records", n), zap.Duration("took", time.Since(start)))
	}
}

func (j *Journal) write(batch []store.Record) error {
	ctx := context.Background()
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	for _, rec := range batch {
		if err := apply(ctx, tx, rec); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%s %s: %w", rec.Change.Kind, rec.Change.Conversation, err)
		}
	}
	return tx.Commit()
}

func apply(ctx context.Context, tx *sql.Tx, rec store.Record) error {
	id := rec.Conversation.ID
	if id.IsZero() {
		id = rec.Change.Conversation
	}
	if rec.Change.Kind == store.ConversationRemoved {
		return deleteConversation(ctx, tx, id)
	}
	conv := rec.Conversation
	conv.ID = id
	if err := upsertConversation(ctx, tx, conv); err != nil {
		return err
	}
	if rec.RemovedID != "" {
		if err := deleteMessage(ctx, tx, id, rec.RemovedID); err != nil {
			return err
		}
	}
	if rec.Message != nil {
		return upsertMessage(ctx, tx, id, *rec.Message)
	}
	return nil
}
