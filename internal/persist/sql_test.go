package persist

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/offlinekit/docsync/internal/logger"
)

func newMockSQL(t *testing.T) (*SQL, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &SQL{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  logger.Nop(),
	}, mock
}

func TestSQL_GetItem(t *testing.T) {
	s, mock := newMockSQL(t)

	rows := sqlmock.NewRows([]string{"blob_value"}).AddRow(`{"version":1}`)
	mock.ExpectQuery(`SELECT blob_value FROM queue_blobs WHERE blob_key = \$1`).
		WithArgs("docsync/queue/v1").
		WillReturnRows(rows)

	got, err := s.GetItem(context.Background(), "docsync/queue/v1")
	require.NoError(t, err)
	require.Equal(t, `{"version":1}`, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_GetItem_NotFound(t *testing.T) {
	s, mock := newMockSQL(t)

	mock.ExpectQuery(`SELECT blob_value FROM queue_blobs`).
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetItem(context.Background(), "absent")
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_SetItem_Upsert(t *testing.T) {
	s, mock := newMockSQL(t)

	mock.ExpectExec(`INSERT INTO queue_blobs \(blob_key,blob_value,updated_at\) VALUES \(\$1,\$2,\$3\) ON CONFLICT\(blob_key\) DO UPDATE SET blob_value = excluded\.blob_value, updated_at = excluded\.updated_at`).
		WithArgs("k", "v", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SetItem(context.Background(), "k", "v"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_RemoveItem(t *testing.T) {
	s, mock := newMockSQL(t)

	mock.ExpectExec(`DELETE FROM queue_blobs WHERE blob_key = \$1`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.RemoveItem(context.Background(), "k"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_Close(t *testing.T) {
	s, mock := newMockSQL(t)

	mock.ExpectClose()
	require.NoError(t, s.Close())
}
