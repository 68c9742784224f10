package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ev-charge-planner/internal/adapters/chargers"
	"ev-charge-planner/internal/domain"
)

func TestDiscoverChargersWithoutRoute(t *testing.T) {
	dir := &chargers.MockDirectory{Chargers: []domain.Charger{
		chargerAt("close", 5, 150, 0),
		chargerAt("far-away", 500, 150, 0),
	}}

	found := DiscoverChargers(context.Background(), nil,
		domain.Location{Lat: testRouteLat, Lon: testRouteLon}, dir, nil, zap.NewNop())

	require.Len(t, found, 1)
	assert.Equal(t, "close", found[0].ID)
	assert.Equal(t, 1, dir.Calls, "no route means a single query at the current location")
}

func TestDiscoverChargersCoversCorridor(t *testing.T) {
	// 1000 km route with 101 polyline points: search points spaced ~100 km
	// apart, plus the start location and the final polyline point.
	route := straightRoute(1000, 101)
	dir := &chargers.MockDirectory{Chargers: []domain.Charger{
		chargerAt("near-start", 10, 50, 0),
		chargerAt("mid-route", 510, 150, 0),
		chargerAt("near-end", 990, 150, 0),
	}}

	found := DiscoverChargers(context.Background(), &route, route.Start, dir, nil, zap.NewNop())

	assert.Equal(t, 11, dir.Calls)

	ids := make([]string, 0, len(found))
	for _, c := range found {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "near-start")
	assert.Contains(t, ids, "mid-route")
	assert.Contains(t, ids, "near-end")
}

func TestDiscoverChargersDeduplicatesAcrossSearchPoints(t *testing.T) {
	// On a short route both search points (start and final polyline point)
	// see the same charger; only the first occurrence survives, even though
	// the second query reports a different distance.
	route := straightRoute(30, 31)
	dir := &chargers.MockDirectory{Chargers: []domain.Charger{
		chargerAt("between-points", 10, 150, 0),
	}}

	found := DiscoverChargers(context.Background(), &route, route.Start, dir, nil, zap.NewNop())

	assert.Equal(t, 2, dir.Calls)
	require.Len(t, found, 1)
	assert.Equal(t, "between-points", found[0].ID)
	assert.InDelta(t, 10, found[0].DistanceKm, 0.5)
}

func TestDiscoverChargersSkipsFailedSearchPoints(t *testing.T) {
	// Every search point except the one near 500 km fails; discovery still
	// returns that point's results instead of aborting.
	route := straightRoute(1000, 101)
	midLat := testRouteLat + 500/kmPerDegLat
	dir := &chargers.MockDirectory{
		Chargers: []domain.Charger{
			chargerAt("survivor", 505, 150, 0),
			chargerAt("lost-to-outage", 100, 150, 0),
		},
		FailFor: func(lat, lon float64) bool {
			return lat < midLat-0.1 || lat > midLat+0.1
		},
	}

	found := DiscoverChargers(context.Background(), &route, route.Start, dir, nil, zap.NewNop())

	require.Len(t, found, 1)
	assert.Equal(t, "survivor", found[0].ID)
}

func TestDiscoverChargersAllPointsFailingYieldsEmpty(t *testing.T) {
	route := straightRoute(1000, 101)
	dir := &chargers.MockDirectory{
		Chargers: []domain.Charger{chargerAt("unreachable", 500, 150, 0)},
		FailFor:  func(lat, lon float64) bool { return true },
	}

	found := DiscoverChargers(context.Background(), &route, route.Start, dir, nil, zap.NewNop())

	assert.Empty(t, found)
}

func TestDiscoverChargersZeroDistanceRouteQueriesEndpointsOnly(t *testing.T) {
	route := straightRoute(1000, 101)
	route.DistanceMeters = 0

	dir := &chargers.MockDirectory{}

	DiscoverChargers(context.Background(), &route, route.Start, dir, nil, zap.NewNop())

	// Unknown total distance: one interval, so only the start location and
	// the final polyline point are queried.
	assert.Equal(t, 2, dir.Calls)
}

func TestDedupeByIDIsIdempotent(t *testing.T) {
	in := []domain.Charger{
		{ID: "a", DistanceKm: 3},
		{ID: "b"},
		{ID: "a", DistanceKm: 1}, // closer duplicate is still dropped
		{ID: "c"},
		{ID: "b"},
	}

	once := dedupeByID(in)
	twice := dedupeByID(once)

	require.Len(t, once, 3)
	assert.Equal(t, once, twice)
	assert.Equal(t, 3.0, once[0].DistanceKm, "first occurrence wins")
}
