package verification

import (
	"context"

	"github.com/google/uuid"

	"medicinna/internal/registry"
	"medicinna/internal/scanlog"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

// Registry is the engine's read-only view of the batch registry.
type Registry interface {
	FindByCode(ctx context.Context, batchCode string) (*registry.Batch, error)
}

// AuditLog is the engine's write-only view of the scan log. Append must be
// durable before it returns.
type AuditLog interface {
	Append(ctx context.Context, entry *scanlog.Entry) (uuid.UUID, error)
}

// Announcer fans a recorded scan out to downstream consumers. Optional and
// best-effort; failures never affect the verify call.
type Announcer interface {
	Publish(ctx context.Context, entry scanlog.Entry)
}
