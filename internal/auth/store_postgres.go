package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// pqUniqueViolation is the PostgreSQL error code for unique constraint hits.
const pqUniqueViolation = "23505"

// PostgresUserStore persists accounts in PostgreSQL. The unique index on
// email is what guarantees one account per normalized login under concurrent
// registration.
type PostgresUserStore struct {
	db *sql.DB
}

// NewPostgresUserStore constructs a PostgreSQL-backed user store.
func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, hashed_password, hospital_name, role)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.HashedPassword,
		user.HospitalName,
		string(user.Role),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, hashed_password, hospital_name, role
		FROM users
		WHERE email = $1
	`
	var user User
	var role string
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.HashedPassword,
		&user.HospitalName,
		&role,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	user.Role = Role(role)
	return &user, nil
}
