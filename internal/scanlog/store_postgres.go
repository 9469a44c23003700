package scanlog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// PostgresStore persists scan entries in PostgreSQL. The seq column is a
// bigserial used only as an insertion-order tiebreak for same-timestamp rows.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed scan log store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, entry *Entry) (uuid.UUID, error) {
	entry.ID = uuid.New()
	query := `
		INSERT INTO scan_logs (id, batch_code, status, scanned_by, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING created_at
	`
	err := s.db.QueryRowContext(ctx, query,
		entry.ID,
		entry.BatchCode,
		entry.Status,
		entry.ScannedBy,
	).Scan(&entry.Timestamp)
	if err != nil {
		return uuid.Nil, fmt.Errorf("append scan entry: %w", err)
	}
	return entry.ID, nil
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, batch_code, status, scanned_by, created_at
		FROM scan_logs
		ORDER BY created_at DESC, seq DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list scan entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.BatchCode, &entry.Status, &entry.ScannedBy, &entry.Timestamp); err != nil {
			return nil, fmt.Errorf("scan log row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scan log rows: %w", err)
	}
	return entries, nil
}

func (s *PostgresStore) Aggregate(ctx context.Context) (Summary, error) {
	query := `
		SELECT count(*), count(*) FILTER (WHERE status = 'FAKE')
		FROM scan_logs
	`
	var summary Summary
	if err := s.db.QueryRowContext(ctx, query).Scan(&summary.Total, &summary.Fake); err != nil {
		return Summary{}, fmt.Errorf("aggregate scan log: %w", err)
	}
	return summary, nil
}
