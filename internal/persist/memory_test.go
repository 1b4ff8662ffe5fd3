package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.SetItem(ctx, "k", "v1"))

	got, err := m.GetItem(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v1", got)

	require.NoError(t, m.SetItem(ctx, "k", "v2"))

	got, err = m.GetItem(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v2", got)
}

func TestMemory_GetMissing(t *testing.T) {
	m := NewMemory()

	_, err := m.GetItem(context.Background(), "absent")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Remove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.SetItem(ctx, "k", "v"))
	require.NoError(t, m.RemoveItem(ctx, "k"))

	_, err := m.GetItem(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)

	// removing an absent key is not an error
	require.NoError(t, m.RemoveItem(ctx, "k"))
}
