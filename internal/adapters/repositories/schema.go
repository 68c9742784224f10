package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the database schema. Idempotent.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlansQuery := `
	CREATE TABLE IF NOT EXISTS charging_plans (
		id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		stop_count INTEGER NOT NULL,
		total_charging_minutes DOUBLE PRECISION NOT NULL,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_charging_plans_created_at
		ON charging_plans (created_at DESC);
	`

	if _, err := tx.Exec(createPlansQuery); err != nil {
		return fmt.Errorf("init schema: create charging_plans: %w", err)
	}

	if _, err := tx.Exec(createIndexQuery); err != nil {
		return fmt.Errorf("init schema: create charging_plans index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
