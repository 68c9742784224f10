package geo

import "math"

const earthRadiusMeters = 6_371_000.0

// A single WGS-84 coordinate pair in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Haversine returns the great-circle distance in meters between two points.
func Haversine(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// NearestPointIndex scans every point of line and returns the index of the
// one closest to p along with its distance in meters.
//
// The scan is brute force with no early termination; ties resolve to the
// lowest index. Callers keep line sizes small (a decoded route polyline),
// so O(n) per query is acceptable.
//
// An empty line returns (-1, +Inf).
func NearestPointIndex(p Point, line []Point) (int, float64) {
	bestIdx := -1
	bestDist := math.Inf(1)

	for i, candidate := range line {
		d := Haversine(p, candidate)
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	return bestIdx, bestDist
}
