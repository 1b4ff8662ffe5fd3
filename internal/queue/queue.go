// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

// Package queue implements the durable FIFO of pending mutations at the
// heart of the sync layer. Operations are appended while offline, persisted
// synchronously, and drained head-first against the remote store once
// connectivity returns.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/offlinekit/docsync/internal/config"
	"github.com/offlinekit/docsync/internal/connectivity"
	"github.com/offlinekit/docsync/internal/logger"
	"github.com/offlinekit/docsync/internal/persist"
	"github.com/offlinekit/docsync/internal/remote"
	"github.com/offlinekit/docsync/internal/utils"
	"github.com/offlinekit/docsync/models"
)

// queueBlobVersion tags the serialized queue so future layout changes stay
// detectable.
const queueBlobVersion = 1

// queueBlob is the single opaque value the queue stores under its
// persistence key.
type queueBlob struct {
	Version    int                       `json:"version"`
	Operations []models.PendingOperation `json:"operations"`
}

// ReportFunc receives one [models.DrainReport] for every operation the queue
// drops without applying. It is invoked from the drain goroutine and must
// not block for long.
type ReportFunc func(models.DrainReport)

// Deps are the collaborators an [OperationQueue] drains through. Store,
// Persistence, and Connectivity are required; the rest default to
// production implementations.
type Deps struct {
	Store        remote.Store
	Persistence  persist.Adapter
	Connectivity connectivity.Monitor

	// Scheduler defers backoff retries. Defaults to [NewTimerScheduler].
	Scheduler Scheduler

	// Report receives drop notifications. Nil discards them.
	Report ReportFunc

	// Logger defaults to a no-op logger.
	Logger *logger.Logger
}

// OperationQueue durably holds, orders, and drains pending mutations.
//
// All mutations for a document pass through the queue in call order and are
// applied strictly head-first, so the sequence of states the document moves
// through after a drain matches what synchronous online writes would have
// produced. A single drain pass owns the queue at a time: the draining flag
// makes a second drain request a no-op instead of a concurrent pass, so no
// two remote calls for the queue are ever in flight together.
type OperationQueue struct {
	cfg       config.Queue
	store     remote.Store
	adapter   persist.Adapter
	monitor   connectivity.Monitor
	scheduler Scheduler
	report    ReportFunc
	logger    *logger.Logger
	ids       *utils.UUIDGenerator

	mu          sync.Mutex
	ops         []models.PendingOperation
	draining    bool
	cancelRetry func()
}

// New builds an [OperationQueue]. Call [OperationQueue.Restore] before the
// first Enqueue to recover operations persisted by a previous process.
func New(cfg config.Queue, deps Deps) *OperationQueue {
	if deps.Scheduler == nil {
		deps.Scheduler = NewTimerScheduler()
	}
	if deps.Report == nil {
		deps.Report = func(models.DrainReport) {}
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	return &OperationQueue{
		cfg:       cfg,
		store:     deps.Store,
		adapter:   deps.Persistence,
		monitor:   deps.Connectivity,
		scheduler: deps.Scheduler,
		report:    deps.Report,
		logger:    deps.Logger,
		ids:       utils.NewUUIDGenerator(),
	}
}

// Enqueue validates op, stamps it with an id and enqueue time, appends it to
// the tail, and persists the whole queue before returning. When the monitor
// reports online a drain is requested.
//
// A persistence failure does not reject the operation: it stays queued in
// memory for this process's lifetime and the error is returned alongside the
// stamped operation so the caller can surface the at-risk condition.
func (q *OperationQueue) Enqueue(ctx context.Context, op models.PendingOperation) (models.PendingOperation, error) {
	if err := op.Validate(); err != nil {
		return models.PendingOperation{}, err
	}

	op.ID = q.ids.Generate()
	op.EnqueuedAt = time.Now().UTC()
	op.AttemptCount = 0

	q.mu.Lock()
	q.ops = append(q.ops, op)
	persistErr := q.persistLocked(ctx)
	q.mu.Unlock()

	q.logger.Debug().
		Str("op_id", op.ID).
		Str("kind", string(op.Kind)).
		Str("collection", op.Collection).
		Str("document_id", op.DocumentID).
		Msg("operation enqueued")

	if q.monitor.IsOnline() {
		q.Drain()
	}

	if persistErr != nil {
		return op, fmt.Errorf("enqueue persist: %w", persistErr)
	}
	return op, nil
}

// Drain requests a drain pass. It returns immediately: the pass runs on its
// own goroutine, and a request while one is already running is a no-op.
// Connectivity callbacks call this on the offline-to-online transition.
func (q *OperationQueue) Drain() {
	q.mu.Lock()
	if q.draining || len(q.ops) == 0 || !q.monitor.IsOnline() {
		q.mu.Unlock()
		return
	}
	q.draining = true
	if q.cancelRetry != nil {
		q.cancelRetry()
		q.cancelRetry = nil
	}
	q.mu.Unlock()

	go q.drainLoop()
}

// drainLoop applies queued operations strictly head-first until the queue
// empties, connectivity drops, or a transient failure schedules a backoff
// retry. Exactly one drainLoop runs at a time.
func (q *OperationQueue) drainLoop() {
	ctx := context.Background()

	for {
		q.mu.Lock()
		if len(q.ops) == 0 || !q.monitor.IsOnline() {
			q.draining = false
			q.mu.Unlock()
			return
		}
		head := q.ops[0]
		q.mu.Unlock()

		err := q.apply(ctx, head)
		switch {
		case err == nil:
			q.logger.Debug().Str("op_id", head.ID).Msg("operation applied")
			q.dropHead(ctx)

		case remote.IsPermanent(err):
			q.logger.Warn().Err(err).Str("op_id", head.ID).Msg("operation rejected permanently")
			dropped := q.dropHead(ctx)
			q.report(models.DrainReport{
				Operation: dropped,
				Reason:    models.FailurePermanent,
				Err:       err,
			})

		default:
			if q.retryHead(ctx, err) {
				return
			}
		}
	}
}

// retryHead handles a transient failure of the head operation. It increments
// the attempt count and either drops the operation when the retry budget is
// exhausted (returning false so the pass continues with the next head) or
// ends the pass and schedules a backoff retry (returning true).
func (q *OperationQueue) retryHead(ctx context.Context, cause error) (passEnded bool) {
	q.mu.Lock()
	q.ops[0].AttemptCount++
	head := q.ops[0]
	_ = q.persistLocked(ctx)

	if head.AttemptCount >= q.cfg.MaxRetries {
		q.ops = q.ops[1:]
		_ = q.persistLocked(ctx)
		q.mu.Unlock()

		q.logger.Warn().Err(cause).
			Str("op_id", head.ID).
			Int("attempts", head.AttemptCount).
			Msg("retry budget exhausted, dropping operation")
		q.report(models.DrainReport{
			Operation: head,
			Reason:    models.FailureRetriesExhausted,
			Err:       cause,
		})
		return false
	}

	delay := q.backoff(head.AttemptCount)
	q.draining = false
	q.cancelRetry = q.scheduler.Schedule(delay, q.Drain)
	q.mu.Unlock()

	q.logger.Debug().Err(cause).
		Str("op_id", head.ID).
		Int("attempts", head.AttemptCount).
		Dur("delay", delay).
		Msg("transient failure, drain retry scheduled")
	return true
}

// apply dispatches op to the matching remote store method.
func (q *OperationQueue) apply(ctx context.Context, op models.PendingOperation) error {
	switch op.Kind {
	case models.OpCreate:
		_, err := q.store.Create(ctx, op.Collection, op.Payload)
		return err
	case models.OpUpdate:
		_, err := q.store.Update(ctx, op.Collection, op.DocumentID, op.Payload)
		return err
	case models.OpDelete:
		return q.store.Delete(ctx, op.Collection, op.DocumentID)
	default:
		return models.ErrUnknownKind
	}
}

// dropHead removes the head operation and persists the shrunk queue.
func (q *OperationQueue) dropHead(ctx context.Context) models.PendingOperation {
	q.mu.Lock()
	defer q.mu.Unlock()

	head := q.ops[0]
	q.ops = q.ops[1:]
	_ = q.persistLocked(ctx)
	return head
}

// backoff computes the retry delay after the given number of failed
// attempts: BackoffBase doubled per attempt, bounded by BackoffCap.
func (q *OperationQueue) backoff(attempts int) time.Duration {
	d := q.cfg.BackoffBase
	for i := 0; i < attempts; i++ {
		d *= 2
		if d >= q.cfg.BackoffCap {
			return q.cfg.BackoffCap
		}
	}
	return d
}

// Restore loads the queue persisted by a previous process. Call it once at
// startup, before the first Enqueue. A missing blob leaves the queue empty.
// When the monitor reports online a drain is requested.
func (q *OperationQueue) Restore(ctx context.Context) error {
	value, err := q.adapter.GetItem(ctx, q.cfg.StorageKey)
	if err != nil {
		if errors.Is(err, persist.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("restore queue: %w", err)
	}

	var blob queueBlob
	if err = json.Unmarshal([]byte(value), &blob); err != nil {
		return fmt.Errorf("decode queue blob: %w", err)
	}
	if blob.Version != queueBlobVersion {
		return fmt.Errorf("unsupported queue blob version %d", blob.Version)
	}

	q.mu.Lock()
	q.ops = blob.Operations
	restored := len(q.ops)
	q.mu.Unlock()

	q.logger.Info().Int("operations", restored).Msg("queue restored")

	if q.monitor.IsOnline() {
		q.Drain()
	}
	return nil
}

// Stop cancels any scheduled backoff retry. An in-flight drain pass finishes
// its current operation and stops at the next connectivity check.
func (q *OperationQueue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.cancelRetry != nil {
		q.cancelRetry()
		q.cancelRetry = nil
	}
}

// Len reports the number of queued operations.
func (q *OperationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.ops)
}

// Draining reports whether a drain pass is currently running.
func (q *OperationQueue) Draining() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.draining
}

// Pending returns the most recent queued operation targeting the document,
// if any. Subscription dispatch uses it to suppress push events older than
// the caller's own unconfirmed write.
func (q *OperationQueue) Pending(collection, documentID string) (models.PendingOperation, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	key := models.DocumentKey{Collection: collection, DocumentID: documentID}
	for i := len(q.ops) - 1; i >= 0; i-- {
		if q.ops[i].Key() == key {
			return q.ops[i], true
		}
	}
	return models.PendingOperation{}, false
}

// Snapshot returns a copy of the queued operations in queue order.
func (q *OperationQueue) Snapshot() []models.PendingOperation {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.PendingOperation, len(q.ops))
	copy(out, q.ops)
	return out
}

// persistLocked serializes the queue under the storage key. The caller holds
// q.mu. On failure the in-memory queue is kept authoritative and the loss
// risk is logged.
func (q *OperationQueue) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(queueBlob{
		Version:    queueBlobVersion,
		Operations: q.ops,
	})
	if err != nil {
		return fmt.Errorf("encode queue blob: %w", err)
	}

	if err = q.adapter.SetItem(ctx, q.cfg.StorageKey, string(payload)); err != nil {
		q.logger.Warn().Err(err).
			Bool("retryable", persist.Classify(err) == persist.Retryable).
			Int("queued", len(q.ops)).
			Msg("queue persist failed, operations at risk until next successful persist")
		return err
	}
	return nil
}
