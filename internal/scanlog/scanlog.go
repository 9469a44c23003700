// Package scanlog is the append-only record of every verification attempt.
// Entries are immutable once written; reporting reads nothing else.
package scanlog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry captures one verification attempt. BatchCode may reference a batch
// that does not exist in the registry; that dangling reference is the signal
// for a forged code.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	BatchCode string    `json:"batch_id"`
	Status    string    `json:"status"`
	ScannedBy string    `json:"scanned_by"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary is the aggregate view over the full log.
type Summary struct {
	Total int `json:"total"`
	Fake  int `json:"fake"`
}

// Store is the audit log contract. Append must be durable before it returns:
// the verification engine reports a verdict only after its entry is recorded.
type Store interface {
	// Append persists the entry, assigning its ID and timestamp, and returns
	// the assigned ID.
	Append(ctx context.Context, entry *Entry) (uuid.UUID, error)
	// ListRecent returns up to limit entries, newest first, insertion order
	// breaking ties.
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
	// Aggregate counts the full log partitioned by FAKE status. It scans
	// rather than maintaining a counter: exactness over the whole history
	// matters more than update latency.
	Aggregate(ctx context.Context) (Summary, error)
}
