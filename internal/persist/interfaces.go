// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

// Package persist provides the durable key-value storage the operation queue
// serializes itself into, plus file, SQLite, Postgres, and in-memory
// implementations.
//
// The contract is deliberately small: the queue stores one opaque blob under
// one well-known key. Implementations only have to round-trip that blob
// losslessly across process restarts.
package persist

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/persist_adapter_mock.go -package=mock

// Adapter is the durable key-value store used to serialize the pending
// operation queue across process restarts.
type Adapter interface {
	// GetItem returns the value stored under key, or [ErrNotFound] if the
	// key has never been set (or has been removed).
	GetItem(ctx context.Context, key string) (string, error)

	// SetItem durably stores value under key, replacing any previous value.
	// It must not return before the value is persisted.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes the key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
