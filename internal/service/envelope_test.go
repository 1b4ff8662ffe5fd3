package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/offlinekit/docsync/internal/mock"
	"github.com/offlinekit/docsync/models"
)

type note struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func TestPut_MarshalsValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	coord := mock.NewMockSyncCoordinator(ctrl)

	coord.EXPECT().
		Write(gomock.Any(), "notes", "n-1", json.RawMessage(`{"title":"a","body":"b"}`), models.OpUpdate).
		Return(models.SyncResult{State: models.StateApplied}, nil)

	res, err := Put(context.Background(), coord, "notes", "n-1", note{Title: "a", Body: "b"}, models.OpUpdate)
	require.NoError(t, err)
	assert.Equal(t, models.StateApplied, res.State)
}

func TestFetch_DecodesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	coord := mock.NewMockSyncCoordinator(ctrl)

	coord.EXPECT().
		Read(gomock.Any(), "notes", "n-1").
		Return(models.Document{
			ID:     "n-1",
			Fields: map[string]any{"title": "a", "body": "b"},
		}, nil)

	got, err := Fetch[note](context.Background(), coord, "notes", "n-1")
	require.NoError(t, err)
	assert.Equal(t, note{Title: "a", Body: "b"}, got)
}

func TestFetch_ReadErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	coord := mock.NewMockSyncCoordinator(ctrl)

	coord.EXPECT().
		Read(gomock.Any(), "notes", "n-1").
		Return(models.Document{}, errTransient)

	_, err := Fetch[note](context.Background(), coord, "notes", "n-1")
	require.ErrorIs(t, err, errTransient)
}
