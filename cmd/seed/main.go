// Command seed provisions the default admin account and demo batches. It is
// idempotent: existing rows are left alone (admin) or refreshed (batches).
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"

	"medicinna/internal/auth"
	"medicinna/internal/platform/config"
	"medicinna/internal/platform/logger"
	"medicinna/internal/platform/postgres"
	"medicinna/internal/registry"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()
	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Error("could not apply schema", "error", err)
		os.Exit(1)
	}

	users := auth.NewPostgresUserStore(db)
	adminEmail := auth.NormalizeLogin("admin", cfg.LoginDomain)
	hashed, err := auth.HashPassword("admin123")
	if err != nil {
		log.Error("could not hash admin password", "error", err)
		os.Exit(1)
	}
	err = users.Create(ctx, &auth.User{
		ID:             uuid.New(),
		Email:          adminEmail,
		HashedPassword: hashed,
		HospitalName:   "General Hospital",
		Role:           auth.RoleAdmin,
	})
	switch {
	case err == nil:
		log.Info("created default admin user", "login", adminEmail)
	case errors.Is(err, auth.ErrDuplicateEmail):
		log.Info("admin user already present", "login", adminEmail)
	default:
		log.Error("could not create admin user", "error", err)
		os.Exit(1)
	}

	batches := registry.NewPostgres(db)
	demo := []*registry.Batch{
		{BatchCode: "MED-2025-001", MedicineName: "Paracetamol 500mg", Manufacturer: "PharmaCorp", ExpiryDate: registry.Date(2026, time.December, 31), Purity: 99.9},
		{BatchCode: "EXP-2023-999", MedicineName: "Aspirin 100mg", Manufacturer: "OldMeds Inc", ExpiryDate: registry.Date(2023, time.January, 1), Purity: 98.0},
		{BatchCode: "REC-2025-BAD", MedicineName: "Cough Syrup", Manufacturer: "BadBatch Ltd", ExpiryDate: registry.Date(2025, time.June, 1), Purity: 95.0, Recalled: true},
		{BatchCode: "LOW-2025-PUR", MedicineName: "Antibiotic X", Manufacturer: "CheapMeds", ExpiryDate: registry.Date(2025, time.December, 31), Purity: 85.0},
	}
	for _, batch := range demo {
		if err := batches.Save(ctx, batch); err != nil {
			log.Error("could not seed batch", "batch_code", batch.BatchCode, "error", err)
			os.Exit(1)
		}
		log.Info("seeded batch", "batch_code", batch.BatchCode)
	}

	log.Info("database seeded successfully")
}
