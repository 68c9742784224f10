package services

import (
	"context"
	"math"

	"go.uber.org/zap"

	"ev-charge-planner/internal/domain"
	"ev-charge-planner/internal/geo"
	"ev-charge-planner/internal/ports"
)

const (
	// Radius of each directory query.
	searchRadiusKm = 25.0
	// Result cap per search point along a route.
	perPointResultCap = 10
	// Result cap for the single no-route query.
	noRouteResultCap = 20
	// Target spacing between consecutive search points along the route.
	searchSpacingKm = 100.0
)

// DiscoverChargers queries the charger directory along the route corridor
// and returns the deduplicated candidates.
//
// Without a route, a single query runs at the current location. With a
// route, search points are spaced ~100 km apart along the decoded polyline,
// always starting at the trip's true start location and always ending at
// the final polyline point so destination-adjacent coverage survives
// interval rounding.
//
// A failed query at one search point is logged and skipped; discovery never
// fails as a whole. All points failing yields an empty result.
func DiscoverChargers(
	ctx context.Context,
	route *domain.Route,
	current domain.Location,
	directory ports.ChargerDirectory,
	cache ports.StationCache,
	logger *zap.Logger,
) []domain.Charger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if route == nil {
		found := searchPoint(ctx, current.Lat, current.Lon, noRouteResultCap, directory, cache, logger)
		return dedupeByID(found)
	}

	points := geo.DecodePolyline(route.Polyline)
	searchPoints := corridorSearchPoints(route, points)

	var all []domain.Charger
	for _, p := range searchPoints {
		all = append(all, searchPoint(ctx, p.Lat, p.Lon, perPointResultCap, directory, cache, logger)...)
	}

	return dedupeByID(all)
}

// corridorSearchPoints builds the query-point sequence for a route.
func corridorSearchPoints(route *domain.Route, points []geo.Point) []geo.Point {
	search := []geo.Point{{Lat: route.Start.Lat, Lon: route.Start.Lon}}
	if len(points) == 0 {
		return search
	}

	totalKm := route.DistanceKm()
	if totalKm > 0 {
		pointsPerInterval := int(math.Round(searchSpacingKm / totalKm * float64(len(points))))
		if pointsPerInterval < 1 {
			// Guarantees loop termination on very short routes where the
			// spacing exceeds total distance.
			pointsPerInterval = 1
		}

		for i := pointsPerInterval; i < len(points)-1; i += pointsPerInterval {
			search = append(search, points[i])
		}
	}
	// Distance 0 or unknown: the whole polyline is a single interval.

	return append(search, points[len(points)-1])
}

// searchPoint runs one directory query, read-through the station cache.
// Cache failures degrade to a direct directory call; directory failures
// yield nil per the partial-failure policy.
func searchPoint(
	ctx context.Context,
	lat, lon float64,
	maxResults int,
	directory ports.ChargerDirectory,
	cache ports.StationCache,
	logger *zap.Logger,
) []domain.Charger {
	if cache != nil {
		cached, hit, err := cache.Get(ctx, lat, lon, searchRadiusKm)
		if err != nil {
			logger.Warn("station cache read failed",
				zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		} else if hit {
			return cached
		}
	}

	found, err := directory.SearchNear(ctx, lat, lon, searchRadiusKm, maxResults)
	if err != nil {
		logger.Warn("charger directory query failed, skipping search point",
			zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		return nil
	}

	if cache != nil {
		if err := cache.Put(ctx, lat, lon, searchRadiusKm, found); err != nil {
			logger.Warn("station cache write failed",
				zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		}
	}

	return found
}

// dedupeByID drops later duplicates of a charger ID, keeping the first
// occurrence regardless of which search point reported a closer distance.
// Idempotent.
func dedupeByID(chargers []domain.Charger) []domain.Charger {
	seen := make(map[string]struct{}, len(chargers))
	out := make([]domain.Charger, 0, len(chargers))
	for _, c := range chargers {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}
