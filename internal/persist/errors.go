package persist

import "errors"

var (
	// ErrNotFound is returned by [Adapter.GetItem] for keys that were never
	// stored or have been removed.
	ErrNotFound = errors.New("persistence key not found")
)
