package ports

import (
	"context"
	"ev-charge-planner/internal/domain"
)

// Contract for querying the external charger directory around a point.
type ChargerDirectory interface {
	// Return up to maxResults charging stations within radiusKm of the
	// given coordinate.
	SearchNear(ctx context.Context, lat, lon float64, radiusKm float64, maxResults int) ([]domain.Charger, error)
}
