// Package registry holds the canonical facts about manufactured medicine
// batches. The verification engine reads it; provisioning (seeding, ingestion)
// writes it.
package registry

import (
	"context"
	"time"

	"github.com/google/uuid"

	dErrors "medicinna/pkg/domain-errors"
)

// ErrNotFound keeps storage-specific misses consistent across implementations.
// A miss is a meaningful business signal (forged batch code), not a failure.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "batch not found")

// Batch is the canonical record for one manufactured lot.
type Batch struct {
	ID           uuid.UUID `json:"id"`
	BatchCode    string    `json:"batch_id"`
	MedicineName string    `json:"medicine_name"`
	Manufacturer string    `json:"manufacturer"`
	// ExpiryDate is a calendar date; by convention it is stored at midnight UTC.
	ExpiryDate time.Time `json:"expiry_date"`
	// Purity is a quality percentage on a 0-100 scale.
	Purity   float64 `json:"purity"`
	Recalled bool    `json:"is_recalled"`
}

// Store is the registry storage contract. FindByCode returns ErrNotFound for
// unknown codes; any other error is an infrastructure failure.
type Store interface {
	FindByCode(ctx context.Context, batchCode string) (*Batch, error)
	Save(ctx context.Context, batch *Batch) error
	List(ctx context.Context) ([]*Batch, error)
}

// Date builds the midnight-UTC timestamp for a calendar date, the storage
// convention for expiry dates.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
