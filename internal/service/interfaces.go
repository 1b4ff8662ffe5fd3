// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

// Package service wires the sync layer's public surface: the coordinator
// application code writes and reads through, the subscription manager that
// fans realtime events out to callbacks, and the background drain job.
package service

import (
	"context"
	"encoding/json"

	"github.com/offlinekit/docsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncCoordinator is the single entry point application code uses to read
// and write documents. Writes are attempted against the remote store when
// online and fall back to the durable queue otherwise; reads always go
// remote.
type SyncCoordinator interface {
	// Write applies a mutation. documentID is empty for creates. The result
	// reports whether the document was applied remotely or queued with an
	// optimistic projection.
	//
	// Only a permanent rejection during an immediate online attempt is
	// returned as an error; every other failure mode is absorbed into the
	// queue and reported through the queue's drain reports.
	Write(ctx context.Context, collection, documentID string, payload json.RawMessage, kind models.OperationKind) (models.SyncResult, error)

	// Read fetches a single document from the remote store. Reads are never
	// queued: a failure while offline is surfaced as-is.
	Read(ctx context.Context, collection, documentID string) (models.Document, error)

	// List fetches the documents of a collection matching query.
	List(ctx context.Context, collection string, query map[string]string) ([]models.Document, error)

	// Close detaches the coordinator from connectivity notifications.
	Close()
}

// Drainer requests queue drain passes. Satisfied by the operation queue.
type Drainer interface {
	Drain()
}

// PendingIndex answers whether a document has a queued unconfirmed write.
// Satisfied by the operation queue; the subscription manager consults it to
// suppress stale push events.
type PendingIndex interface {
	Pending(collection, documentID string) (models.PendingOperation, bool)
}
