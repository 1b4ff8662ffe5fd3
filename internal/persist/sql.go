// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The docsync Authors

package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/offlinekit/docsync/internal/logger"
	"github.com/offlinekit/docsync/migrations"
)

// SQL is an [Adapter] backed by a relational database: SQLite for embedded
// deployments, PostgreSQL for daemons that share durable state with other
// services. Blobs live in the queue_blobs table created by the embedded
// goose migrations.
type SQL struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSQLite opens (creating if necessary) the SQLite database at dsn, runs
// migrations, and returns the adapter.
func NewSQLite(ctx context.Context, dsn string, log *logger.Logger) (*SQL, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("error pinging sqlite database: %w", err)
	}

	if err = migrations.Migrate(conn, migrations.DialectSQLite); err != nil {
		return nil, err
	}
	log.Debug().Str("func", "NewSQLite").Msg("connected to sqlite database")

	return &SQL{
		db:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}, nil
}

// NewPostgres connects to the PostgreSQL database at dsn, runs migrations,
// and returns the adapter.
func NewPostgres(ctx context.Context, dsn string, log *logger.Logger) (*SQL, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening postgres database: %w", err)
	}

	conn.SetMaxOpenConns(4)

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("error pinging postgres database: %w", err)
	}

	if err = migrations.Migrate(conn, migrations.DialectPostgres); err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewPostgres").Msg("connected to postgres database")

	return &SQL{
		db:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		logger:  log,
	}, nil
}

func (s *SQL) GetItem(ctx context.Context, key string) (string, error) {
	query, args, err := s.builder.
		Select("blob_value").
		From("queue_blobs").
		Where(sq.Eq{"blob_key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build get query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get persistence item: %w", err)
	}

	return value, nil
}

func (s *SQL) SetItem(ctx context.Context, key, value string) error {
	query, args, err := s.builder.
		Insert("queue_blobs").
		Columns("blob_key", "blob_value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(blob_key) DO UPDATE SET blob_value = excluded.blob_value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set persistence item: %w", err)
	}

	return nil
}

func (s *SQL) RemoveItem(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete("queue_blobs").
		Where(sq.Eq{"blob_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("remove persistence item: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *SQL) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
