// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package models

import (
	"encoding/json"
	"errors"
	"time"
)

// OperationKind enumerates the mutation types the queue can hold.
type OperationKind string

const (
	OpCreate OperationKind = "create"
	OpUpdate OperationKind = "update"
	OpDelete OperationKind = "delete"
)

var (
	// ErrUnknownKind indicates an operation kind outside create/update/delete.
	ErrUnknownKind = errors.New("unknown operation kind")
	// ErrMissingDocumentID indicates an update or delete without a document id.
	ErrMissingDocumentID = errors.New("update and delete operations require a document id")
	// ErrMissingCollection indicates an operation without a collection.
	ErrMissingCollection = errors.New("operation requires a collection")
	// ErrMissingPayload indicates a create or update without a payload.
	ErrMissingPayload = errors.New("create and update operations require a payload")
)

// PendingOperation is a single queued mutation awaiting application against
// the remote store. The payload is kept opaque at this layer; typed envelopes
// exist only at the coordinator boundary.
type PendingOperation struct {
	ID           string          `json:"id"`
	Kind         OperationKind   `json:"kind"`
	Collection   string          `json:"collection"`
	DocumentID   string          `json:"document_id,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	EnqueuedAt   time.Time       `json:"enqueued_at"`
	AttemptCount int             `json:"attempt_count"`
}

// Key returns the document key this operation targets.
func (op PendingOperation) Key() DocumentKey {
	return DocumentKey{Collection: op.Collection, DocumentID: op.DocumentID}
}

// Validate checks the structural invariants a mutation must satisfy before it
// may be enqueued. It does not validate payload contents; business-level
// validation belongs to the caller and the remote store.
func (op PendingOperation) Validate() error {
	if op.Collection == "" {
		return ErrMissingCollection
	}

	switch op.Kind {
	case OpCreate:
		if len(op.Payload) == 0 {
			return ErrMissingPayload
		}
	case OpUpdate:
		if op.DocumentID == "" {
			return ErrMissingDocumentID
		}
		if len(op.Payload) == 0 {
			return ErrMissingPayload
		}
	case OpDelete:
		if op.DocumentID == "" {
			return ErrMissingDocumentID
		}
	default:
		return ErrUnknownKind
	}

	return nil
}
