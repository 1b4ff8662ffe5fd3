package models

// SyncState reports how a write was satisfied.
type SyncState string

const (
	// StateApplied means the remote store confirmed the write.
	StateApplied SyncState = "applied"
	// StateQueued means the write was enqueued and the returned document is
	// an optimistic projection.
	StateQueued SyncState = "queued"
)

// SyncResult is returned by every write: the applied or optimistically
// projected document plus the state that tells the caller which one it got.
type SyncResult struct {
	Document Document  `json:"document"`
	State    SyncState `json:"state"`
}

// FailureReason classifies why a queued operation was dropped from the queue.
type FailureReason string

const (
	// FailurePermanent means the remote store rejected the operation outright.
	FailurePermanent FailureReason = "permanent"
	// FailureRetriesExhausted means the operation kept failing transiently
	// until the retry budget ran out.
	FailureRetriesExhausted FailureReason = "retries_exhausted"
)

// DrainReport is delivered exactly once for every operation the queue drops
// without applying. Err holds the last error observed for the operation.
type DrainReport struct {
	Operation PendingOperation `json:"operation"`
	Reason    FailureReason    `json:"reason"`
	Err       error            `json:"-"`
}
