package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/offlinekit/docsync/models"
)

// Put marshals value and writes it through the coordinator. It is the typed
// convenience wrapper over [SyncCoordinator.Write] for callers whose
// documents map onto Go structs.
func Put[T any](ctx context.Context, c SyncCoordinator, collection, documentID string, value T, kind models.OperationKind) (models.SyncResult, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("encode document payload: %w", err)
	}

	return c.Write(ctx, collection, documentID, payload, kind)
}

// Fetch reads a document through the coordinator and decodes its fields
// into T.
func Fetch[T any](ctx context.Context, c SyncCoordinator, collection, documentID string) (T, error) {
	var out T

	doc, err := c.Read(ctx, collection, documentID)
	if err != nil {
		return out, err
	}

	raw, err := json.Marshal(doc.Fields)
	if err != nil {
		return out, fmt.Errorf("re-encode document fields: %w", err)
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode document fields: %w", err)
	}

	return out, nil
}
