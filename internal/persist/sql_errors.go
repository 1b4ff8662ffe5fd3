package persist

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Classification indicates whether a failed persistence operation may
// succeed if attempted again. The queue uses it to annotate "at risk"
// log entries when a synchronous persist fails.
type Classification int

const (
	// NonRetryable indicates the failed write should not be repeated as-is.
	// This is the default for unrecognised errors, constraint violations,
	// and syntax errors.
	NonRetryable Classification = iota

	// Retryable indicates the failed write may succeed on a later attempt
	// (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

// Classify maps a persistence error to a [Classification]. PostgreSQL driver
// errors are classified by their error code; everything else defaults to
// NonRetryable.
func Classify(err error) Classification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgError(pgErr)
	}

	return NonRetryable
}

// classifyPgError maps a *pgconn.PgError to a [Classification].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable codes:
//   - Class 08 — connection exceptions
//   - Class 40 — transaction rollback, serialization failure, deadlock
//   - Class 57 — cannot connect now
func classifyPgError(pgErr *pgconn.PgError) Classification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40 — transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
