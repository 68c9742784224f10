package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ev-charge-planner/internal/ports"
)

// Postgres-backed implementation of the PlanRepository port.
type PostgresPlanRepository struct{ DB *sql.DB }

func NewPostgresPlanRepository(db *sql.DB) *PostgresPlanRepository {
	return &PostgresPlanRepository{DB: db}
}

// SavePlan persists one planning result and returns its assigned ID.
func (p *PostgresPlanRepository) SavePlan(ctx context.Context, rec ports.PlanRecord) (int64, error) {
	if p.DB == nil {
		return 0, errors.New("plan repository: DB is nil")
	}

	query := `
	INSERT INTO charging_plans (
		origin,
		destination,
		stop_count,
		total_charging_minutes,
		payload
	)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id;
	`

	var id int64
	err := p.DB.QueryRowContext(
		ctx, query,
		rec.Origin, rec.Destination, rec.StopCount, rec.TotalChargingMinutes, rec.Payload,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save plan: insert charging_plans row: %w", err)
	}

	return id, nil
}

// ListPlans returns the most recent plans, newest first.
func (p *PostgresPlanRepository) ListPlans(ctx context.Context, limit int) ([]ports.PlanRecord, error) {
	if p.DB == nil {
		return nil, errors.New("plan repository: DB is nil")
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT
		id,
		origin,
		destination,
		stop_count,
		total_charging_minutes,
		payload,
		created_at
	FROM charging_plans
	ORDER BY created_at DESC, id DESC
	LIMIT $1;
	`

	rows, err := p.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list plans: query charging_plans table: %w", err)
	}
	defer rows.Close()

	plans := make([]ports.PlanRecord, 0, limit)
	for rows.Next() {
		var rec ports.PlanRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Origin,
			&rec.Destination,
			&rec.StopCount,
			&rec.TotalChargingMinutes,
			&rec.Payload,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list plans: scan charging_plans row: %w", err)
		}
		plans = append(plans, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: iterate charging_plans rows: %w", err)
	}

	return plans, nil
}
