package auth

import (
	"context"

	dErrors "medicinna/pkg/domain-errors"
)

var (
	// ErrNotFound keeps storage-specific 404s consistent across
	// implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "account not found")

	// ErrDuplicateEmail signals that the normalized login already exists.
	// Uniqueness is enforced by the store, not application-level locking.
	ErrDuplicateEmail = dErrors.New(dErrors.CodeConflict, "user already exists")
)

// UserStore is the credential storage contract. Create must be atomic with
// the uniqueness check: no partial writes on duplicates.
type UserStore interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
}
