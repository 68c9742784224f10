package services

import (
	"ev-charge-planner/internal/domain"
	"ev-charge-planner/internal/geo"
)

// Kilometers per degree of latitude at Earth radius 6,371 km.
const kmPerDegLat = 111.19493

const testRouteLat = 40.0
const testRouteLon = -105.0

// straightRoute builds a due-north test route of the given length with
// pointCount evenly spaced polyline points starting at (testRouteLat,
// testRouteLon).
func straightRoute(totalKm float64, pointCount int) domain.Route {
	points := make([]geo.Point, pointCount)
	for i := range points {
		d := totalKm * float64(i) / float64(pointCount-1)
		points[i] = geo.Point{Lat: testRouteLat + d/kmPerDegLat, Lon: testRouteLon}
	}

	return domain.Route{
		DistanceMeters:  totalKm * 1000,
		DurationSeconds: totalKm / 100 * 3600, // steady 100 km/h
		Polyline:        geo.EncodePolyline(points),
		Start:           domain.Location{Lat: testRouteLat, Lon: testRouteLon, Name: "origin"},
		End:             domain.Location{Lat: testRouteLat + totalKm/kmPerDegLat, Lon: testRouteLon, Name: "destination"},
	}
}

// chargerAt places a charger adjacent to the straight test route at
// distanceKm from its start, offset laterally by lateralKm.
func chargerAt(id string, distanceKm, powerKw, lateralKm float64) domain.Charger {
	lat := testRouteLat + distanceKm/kmPerDegLat
	lonOffset := 0.0
	if lateralKm != 0 {
		// Approximate degrees of longitude for the offset at this latitude.
		lonOffset = lateralKm / (kmPerDegLat * 0.766) // cos(40 deg) ~ 0.766
	}

	return domain.Charger{
		ID:             id,
		Name:           "Station " + id,
		Location:       domain.Location{Lat: lat, Lon: testRouteLon + lonOffset},
		MaxPowerKw:     powerKw,
		ConnectorTypes: []string{"CCS"},
		PortCount:      4,
	}
}
