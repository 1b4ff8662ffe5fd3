// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"dario.cat/mergo"

	"github.com/offlinekit/docsync/internal/connectivity"
	"github.com/offlinekit/docsync/internal/logger"
	"github.com/offlinekit/docsync/internal/remote"
	"github.com/offlinekit/docsync/models"
)

// operationEnqueuer is the slice of the operation queue the coordinator
// drives: enqueueing fallback writes and requesting drains on reconnect.
type operationEnqueuer interface {
	Enqueue(ctx context.Context, op models.PendingOperation) (models.PendingOperation, error)
	Drain()
}

type syncCoordinator struct {
	store   remote.Store
	queue   operationEnqueuer
	monitor connectivity.Monitor
	logger  *logger.Logger

	mu        sync.Mutex
	lastKnown map[models.DocumentKey]models.Document

	unsubscribe func()
}

// NewSyncCoordinator builds the coordinator and subscribes it to
// connectivity transitions: on every offline-to-online transition it
// requests a queue drain. Call Close to detach.
func NewSyncCoordinator(store remote.Store, q operationEnqueuer, monitor connectivity.Monitor, log *logger.Logger) SyncCoordinator {
	c := &syncCoordinator{
		store:     store,
		queue:     q,
		monitor:   monitor,
		logger:    log,
		lastKnown: make(map[models.DocumentKey]models.Document),
	}
	c.unsubscribe = monitor.OnChange(func(online bool) {
		if online {
			c.queue.Drain()
		}
	})
	return c
}

// Write implements [SyncCoordinator].
func (c *syncCoordinator) Write(ctx context.Context, collection, documentID string, payload json.RawMessage, kind models.OperationKind) (models.SyncResult, error) {
	op := models.PendingOperation{
		Kind:       kind,
		Collection: collection,
		DocumentID: documentID,
		Payload:    payload,
	}
	if err := op.Validate(); err != nil {
		return models.SyncResult{}, err
	}

	if c.monitor.IsOnline() {
		doc, err := c.applyDirect(ctx, op)
		if err == nil {
			c.remember(collection, doc, kind)
			return models.SyncResult{Document: doc, State: models.StateApplied}, nil
		}
		if remote.IsPermanent(err) {
			// the server rejected this outright; queueing it would be wrong
			return models.SyncResult{}, err
		}
		c.logger.Debug().Err(err).
			Str("collection", collection).
			Str("document_id", documentID).
			Msg("immediate write failed transiently, queueing")
	}

	projection := c.project(collection, documentID, payload, kind)
	if _, err := c.queue.Enqueue(ctx, op); err != nil {
		// the operation is still queued in memory; surface the risk in logs only
		c.logger.Warn().Err(err).
			Str("collection", collection).
			Str("document_id", documentID).
			Msg("queued write is at risk")
	}
	c.remember(collection, projection, kind)

	return models.SyncResult{Document: projection, State: models.StateQueued}, nil
}

// Read implements [SyncCoordinator].
func (c *syncCoordinator) Read(ctx context.Context, collection, documentID string) (models.Document, error) {
	doc, err := c.store.Get(ctx, collection, documentID)
	if err != nil {
		return models.Document{}, fmt.Errorf("read %s/%s: %w", collection, documentID, err)
	}

	c.remember(collection, doc, models.OpUpdate)
	return doc, nil
}

// List implements [SyncCoordinator].
func (c *syncCoordinator) List(ctx context.Context, collection string, query map[string]string) ([]models.Document, error) {
	docs, err := c.store.List(ctx, collection, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	for _, doc := range docs {
		c.remember(collection, doc, models.OpUpdate)
	}
	return docs, nil
}

// Close implements [SyncCoordinator].
func (c *syncCoordinator) Close() {
	c.unsubscribe()
}

func (c *syncCoordinator) applyDirect(ctx context.Context, op models.PendingOperation) (models.Document, error) {
	switch op.Kind {
	case models.OpCreate:
		return c.store.Create(ctx, op.Collection, op.Payload)
	case models.OpUpdate:
		return c.store.Update(ctx, op.Collection, op.DocumentID, op.Payload)
	case models.OpDelete:
		return models.Document{ID: op.DocumentID}, c.store.Delete(ctx, op.Collection, op.DocumentID)
	default:
		return models.Document{}, models.ErrUnknownKind
	}
}

// project builds the optimistic document returned for a queued write: the
// payload merged over the best known prior shape of the document, or the
// payload alone when no prior shape is cached.
func (c *syncCoordinator) project(collection, documentID string, payload json.RawMessage, kind models.OperationKind) models.Document {
	if kind == models.OpDelete {
		return models.Document{ID: documentID}
	}

	fields := make(map[string]any)
	if err := json.Unmarshal(payload, &fields); err != nil {
		c.logger.Debug().Err(err).Msg("payload is not a field map, projecting it opaquely")
		fields = map[string]any{"payload": string(payload)}
	}

	key := models.DocumentKey{Collection: collection, DocumentID: documentID}
	c.mu.Lock()
	prior, ok := c.lastKnown[key]
	c.mu.Unlock()

	if ok {
		base := make(map[string]any, len(prior.Fields)+len(fields))
		for k, v := range prior.Fields {
			base[k] = v
		}
		if err := mergo.Merge(&base, fields, mergo.WithOverride); err == nil {
			fields = base
		}
	}

	return models.Document{ID: documentID, Fields: fields}
}

// remember tracks the latest observed shape per document so later offline
// updates project over it. Deletes evict the entry.
func (c *syncCoordinator) remember(collection string, doc models.Document, kind models.OperationKind) {
	if doc.ID == "" {
		return
	}

	key := models.DocumentKey{Collection: collection, DocumentID: doc.ID}
	c.mu.Lock()
	defer c.mu.Unlock()

	if kind == models.OpDelete {
		delete(c.lastKnown, key)
		return
	}
	c.lastKnown[key] = doc
}
