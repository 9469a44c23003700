package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// PostgresStore persists batch records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed registry store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByCode(ctx context.Context, batchCode string) (*Batch, error) {
	query := `
		SELECT id, batch_code, medicine_name, manufacturer, expiry_date, purity, is_recalled
		FROM batches
		WHERE batch_code = $1
	`
	var batch Batch
	err := s.db.QueryRowContext(ctx, query, batchCode).Scan(
		&batch.ID,
		&batch.BatchCode,
		&batch.MedicineName,
		&batch.Manufacturer,
		&batch.ExpiryDate,
		&batch.Purity,
		&batch.Recalled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find batch by code: %w", err)
	}
	batch.ExpiryDate = batch.ExpiryDate.UTC()
	return &batch, nil
}

func (s *PostgresStore) Save(ctx context.Context, batch *Batch) error {
	if batch.ID == uuid.Nil {
		batch.ID = uuid.New()
	}
	query := `
		INSERT INTO batches (id, batch_code, medicine_name, manufacturer, expiry_date, purity, is_recalled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (batch_code) DO UPDATE SET
			medicine_name = EXCLUDED.medicine_name,
			manufacturer = EXCLUDED.manufacturer,
			expiry_date = EXCLUDED.expiry_date,
			purity = EXCLUDED.purity,
			is_recalled = EXCLUDED.is_recalled
	`
	_, err := s.db.ExecContext(ctx, query,
		batch.ID,
		batch.BatchCode,
		batch.MedicineName,
		batch.Manufacturer,
		batch.ExpiryDate,
		batch.Purity,
		batch.Recalled,
	)
	if err != nil {
		return fmt.Errorf("save batch: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*Batch, error) {
	query := `
		SELECT id, batch_code, medicine_name, manufacturer, expiry_date, purity, is_recalled
		FROM batches
		ORDER BY batch_code
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []*Batch
	for rows.Next() {
		var batch Batch
		if err := rows.Scan(
			&batch.ID,
			&batch.BatchCode,
			&batch.MedicineName,
			&batch.Manufacturer,
			&batch.ExpiryDate,
			&batch.Purity,
			&batch.Recalled,
		); err != nil {
			return nil, fmt.Errorf("scan batch row: %w", err)
		}
		batch.ExpiryDate = batch.ExpiryDate.UTC()
		batches = append(batches, &batch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batch rows: %w", err)
	}
	return batches, nil
}
