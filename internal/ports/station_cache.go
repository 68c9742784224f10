package ports

import (
	"context"
	"ev-charge-planner/internal/domain"
)

// Port: a read-through cache for charger directory search results,
// keyed by search point and radius.
type StationCache interface {
	// Fetch cached results for a search point. The second return reports
	// whether the key was present.
	Get(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Charger, bool, error)

	// Store results for a search point.
	Put(ctx context.Context, lat, lon, radiusKm float64, chargers []domain.Charger) error
}
