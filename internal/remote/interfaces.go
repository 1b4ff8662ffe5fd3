// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

// Package remote defines the abstract remote document store the sync layer
// writes against, together with the transient/permanent error taxonomy every
// implementation must map its failures into.
//
// The package ships an HTTP/REST implementation ([NewHTTPStore]) built on
// resty. Callers classify failures with [IsTransient] and [IsPermanent]
// instead of inspecting transport details.
package remote

import (
	"context"
	"encoding/json"

	"github.com/offlinekit/docsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// Store is the abstract remote document store. Every method either returns a
// normalized document or an error classified as transient or permanent (see
// errors.go). Implementations own serialisation, authentication headers, and
// per-request timeouts; the sync layer imposes none of its own.
type Store interface {
	// Create stores a new document built from payload in the collection and
	// returns the server-assigned document.
	Create(ctx context.Context, collection string, payload json.RawMessage) (models.Document, error)

	// Update applies payload as a partial field update to the identified
	// document and returns the resulting server document.
	Update(ctx context.Context, collection, documentID string, payload json.RawMessage) (models.Document, error)

	// Delete removes the identified document.
	Delete(ctx context.Context, collection, documentID string) error

	// Get fetches a single document.
	Get(ctx context.Context, collection, documentID string) (models.Document, error)

	// List fetches the documents of a collection matching the query
	// parameters. A nil query lists the whole collection.
	List(ctx context.Context, collection string, query map[string]string) ([]models.Document, error)
}
