package chargers

import (
	"context"
	"fmt"

	"ev-charge-planner/internal/domain"
	"ev-charge-planner/internal/geo"
)

// MockDirectory is an in-memory ChargerDirectory for tests and local runs.
// It returns seeded chargers within the query radius and can be scripted
// to fail for particular search points.
type MockDirectory struct {
	Chargers []domain.Charger

	// FailFor, when set, makes SearchNear fail for matching query points.
	FailFor func(lat, lon float64) bool

	// Calls counts every SearchNear invocation, including failures.
	Calls int
}

func (m *MockDirectory) SearchNear(ctx context.Context, lat, lon float64, radiusKm float64, maxResults int) ([]domain.Charger, error) {
	m.Calls++

	if m.FailFor != nil && m.FailFor(lat, lon) {
		return nil, fmt.Errorf("mock directory: unavailable near (%.4f, %.4f)", lat, lon)
	}

	query := geo.Point{Lat: lat, Lon: lon}
	out := make([]domain.Charger, 0, maxResults)
	for _, c := range m.Chargers {
		at := geo.Point{Lat: c.Location.Lat, Lon: c.Location.Lon}
		d := geo.Haversine(query, at)
		if d > radiusKm*1000 {
			continue
		}

		c.DistanceKm = d / 1000
		out = append(out, c)
		if len(out) == maxResults {
			break
		}
	}

	return out, nil
}
