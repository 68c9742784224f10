package ports

import (
	"context"
	"time"
)

// A persisted planning result. Payload holds the full plan and battery
// state as JSON; the scalar columns exist for listing without unmarshaling.
type PlanRecord struct {
	ID                   int64
	Origin               string
	Destination          string
	StopCount            int
	TotalChargingMinutes float64
	Payload              []byte
	CreatedAt            time.Time
}

// Port: a boundary for persisting and listing planning results.
type PlanRepository interface {
	// Persist one planning result and return its assigned ID.
	SavePlan(ctx context.Context, rec PlanRecord) (int64, error)

	// Return the most recent plans, newest first.
	ListPlans(ctx context.Context, limit int) ([]PlanRecord, error)
}
