// Package syncqueue dispatches persistence intents produced by the
// reconciler to the document store without blocking the mutating caller.
// Intents are enqueued in mutation order; intents for the same entity ID are
// always processed by the same worker, so writes to one entity never complete
// out of order even though independent entities sync concurrently.
package syncqueue

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"

	portsrepo "github.com/fintrackpro/fintrack_app/internal/core/ports/repositories"
)

// Op identifies the kind of persistence write an intent carries.
type Op string

const (
	OpUpsert        Op = "upsert"
	OpUpsertPartial Op = "upsert_partial"
	OpDelete        Op = "delete"
)

// Intent is one scheduled write against the document store.
type Intent struct {
	UserID   string
	Kind     portsrepo.Kind
	EntityID string
	Op       Op
	Doc      any            // full document for OpUpsert
	Fields   map[string]any // merged fields for OpUpsertPartial
}

// Scheduler is the narrow interface the reconciler depends on.
type Scheduler interface {
	Enqueue(intent Intent)
}

// Queue is an in-process implementation of Scheduler backed by a fixed set of
// worker goroutines. A failed write is logged and dropped; the in-memory
// state that produced it stays authoritative (no retry, no rollback).
type Queue struct {
	store  portsrepo.StoreWriter
	logger *slog.Logger
	lanes  []chan Intent

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New creates a queue with laneCount workers, each buffering up to bufferSize
// pending intents. Call Start before enqueueing.
func New(store portsrepo.StoreWriter, logger *slog.Logger, laneCount, bufferSize int) *Queue {
	if laneCount < 1 {
		laneCount = 1
	}
	lanes := make([]chan Intent, laneCount)
	for i := range lanes {
		lanes[i] = make(chan Intent, bufferSize)
	}
	return &Queue{
		store:  store,
		logger: logger,
		lanes:  lanes,
	}
}

// Start launches the worker goroutines. ctx cancellation stops the workers
// after their current write.
func (q *Queue) Start(ctx context.Context) {
	for _, lane := range q.lanes {
		q.wg.Add(1)
		go q.worker(ctx, lane)
	}
}

// Enqueue schedules an intent. Intents for the same entity ID hash to the
// same lane, preserving per-ID FIFO. Enqueue never reports failure to the
// caller; a closed queue drops the intent with a log line.
func (q *Queue) Enqueue(intent Intent) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.logger.Warn("sync queue closed, dropping intent",
			slog.String("kind", string(intent.Kind)),
			slog.String("entity_id", intent.EntityID),
			slog.String("op", string(intent.Op)))
		return
	}
	q.lanes[laneFor(intent.EntityID, len(q.lanes))] <- intent
}

// Close stops accepting intents, drains the lanes, and waits for the workers.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	for _, lane := range q.lanes {
		close(lane)
	}
	q.wg.Wait()
}

func (q *Queue) worker(ctx context.Context, lane <-chan Intent) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case intent, ok := <-lane:
			if !ok {
				return
			}
			q.apply(ctx, intent)
		}
	}
}

func (q *Queue) apply(ctx context.Context, intent Intent) {
	var err error
	switch intent.Op {
	case OpUpsert:
		err = q.store.Upsert(ctx, intent.UserID, intent.Kind, intent.EntityID, intent.Doc)
	case OpUpsertPartial:
		err = q.store.UpsertPartial(ctx, intent.UserID, intent.Kind, intent.EntityID, intent.Fields)
	case OpDelete:
		err = q.store.Delete(ctx, intent.UserID, intent.Kind, intent.EntityID)
	default:
		q.logger.Error("unknown sync intent op", slog.String("op", string(intent.Op)))
		return
	}
	if err != nil {
		q.logger.Error("persistence write failed",
			slog.String("error", err.Error()),
			slog.String("user_id", intent.UserID),
			slog.String("kind", string(intent.Kind)),
			slog.String("entity_id", intent.EntityID),
			slog.String("op", string(intent.Op)))
	}
}

func laneFor(entityID string, laneCount int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entityID))
	return int(h.Sum32() % uint32(laneCount))
}
