package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingOperation_Validate(t *testing.T) {
	payload := json.RawMessage(`{"balance":100}`)

	tests := []struct {
		name    string
		op      PendingOperation
		wantErr error
	}{
		{
			name: "valid create",
			op:   PendingOperation{Kind: OpCreate, Collection: "cards", Payload: payload},
		},
		{
			name: "valid update",
			op:   PendingOperation{Kind: OpUpdate, Collection: "cards", DocumentID: "card-1", Payload: payload},
		},
		{
			name: "valid delete",
			op:   PendingOperation{Kind: OpDelete, Collection: "cards", DocumentID: "card-1"},
		},
		{
			name:    "missing collection",
			op:      PendingOperation{Kind: OpCreate, Payload: payload},
			wantErr: ErrMissingCollection,
		},
		{
			name:    "update without document id",
			op:      PendingOperation{Kind: OpUpdate, Collection: "cards", Payload: payload},
			wantErr: ErrMissingDocumentID,
		},
		{
			name:    "delete without document id",
			op:      PendingOperation{Kind: OpDelete, Collection: "cards"},
			wantErr: ErrMissingDocumentID,
		},
		{
			name:    "create without payload",
			op:      PendingOperation{Kind: OpCreate, Collection: "cards"},
			wantErr: ErrMissingPayload,
		},
		{
			name:    "update without payload",
			op:      PendingOperation{Kind: OpUpdate, Collection: "cards", DocumentID: "card-1"},
			wantErr: ErrMissingPayload,
		},
		{
			name:    "unknown kind",
			op:      PendingOperation{Kind: "merge", Collection: "cards"},
			wantErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPendingOperation_Key(t *testing.T) {
	op := PendingOperation{Kind: OpUpdate, Collection: "cards", DocumentID: "card-1"}
	assert.Equal(t, DocumentKey{Collection: "cards", DocumentID: "card-1"}, op.Key())
}

func TestPendingOperation_JSONRoundTrip(t *testing.T) {
	op := PendingOperation{
		ID:           "op-1",
		Kind:         OpUpdate,
		Collection:   "cards",
		DocumentID:   "card-1",
		Payload:      json.RawMessage(`{"balance":90}`),
		EnqueuedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		AttemptCount: 2,
	}

	raw, err := json.Marshal(op)
	require.NoError(t, err)

	var got PendingOperation
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, op, got)
}

func TestChannelSpec_Name(t *testing.T) {
	assert.Equal(t, "cards", ChannelSpec{Collection: "cards"}.Name())
	assert.Equal(t, "cards/card-1", ChannelSpec{Collection: "cards", DocumentID: "card-1"}.Name())
}
