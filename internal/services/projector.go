package services

import (
	"slices"
	"strings"

	"ev-charge-planner/internal/domain"
	"ev-charge-planner/internal/geo"
)

// Chargers whose nearest route point lies beyond this distance are
// off-corridor and excluded outright. A hard threshold, not a penalty.
const corridorThresholdKm = 30.0

// A charger positioned along the route by its scalar distance from the
// route start.
type PositionedCharger struct {
	Charger             domain.Charger
	DistanceFromStartKm float64
}

// ProjectOntoRoute maps a charger onto a route's geometry, returning its
// distance from the route start in kilometers and whether it lies within
// the corridor.
//
// The mapping is linear interpolation by point index, not cumulative arc
// length: distance = (nearestIndex / pointCount) x totalRouteKm. The
// planner's window arithmetic assumes this proportional mapping, so it must
// not be silently replaced with arc-length integration.
//
// Callers decode the route polyline once per planning run and pass the
// points in; an empty point slice rejects every charger.
func ProjectOntoRoute(c domain.Charger, routePoints []geo.Point, totalRouteKm float64) (float64, bool) {
	if len(routePoints) == 0 {
		return 0, false
	}

	idx, distMeters := geo.NearestPointIndex(geo.Point{Lat: c.Location.Lat, Lon: c.Location.Lon}, routePoints)
	if idx < 0 || distMeters > corridorThresholdKm*1000 {
		return 0, false
	}

	return float64(idx) / float64(len(routePoints)) * totalRouteKm, true
}

// ProjectChargers projects every candidate, drops off-corridor rejects, and
// returns the survivors sorted by distance from start ascending. Charger ID
// is the secondary sort key so the ordering is deterministic.
func ProjectChargers(chargers []domain.Charger, routePoints []geo.Point, totalRouteKm float64) []PositionedCharger {
	positioned := make([]PositionedCharger, 0, len(chargers))
	for _, c := range chargers {
		dist, ok := ProjectOntoRoute(c, routePoints, totalRouteKm)
		if !ok {
			continue
		}
		positioned = append(positioned, PositionedCharger{Charger: c, DistanceFromStartKm: dist})
	}

	slices.SortFunc(positioned, func(a, b PositionedCharger) int {
		if a.DistanceFromStartKm < b.DistanceFromStartKm {
			return -1
		}
		if a.DistanceFromStartKm > b.DistanceFromStartKm {
			return 1
		}
		return strings.Compare(a.Charger.ID, b.Charger.ID)
	})

	return positioned
}
