package geo

import "github.com/twpayne/go-polyline"

// DecodePolyline decodes a Google encoded polyline string into points.
//
// Malformed or empty input yields nil rather than an error: downstream
// planning treats "no decodable geometry" as a degraded input, not a
// failure (projection rejects all chargers, feasibility math still runs).
func DecodePolyline(encoded string) []Point {
	if encoded == "" {
		return nil
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil
	}

	points := make([]Point, 0, len(coords))
	for _, c := range coords {
		if len(c) != 2 {
			continue
		}
		points = append(points, Point{Lat: c[0], Lon: c[1]})
	}

	return points
}

// EncodePolyline encodes points back into the Google polyline format.
// Round-tripping through Decode preserves coordinates to 1e-5 degrees.
func EncodePolyline(points []Point) string {
	if len(points) == 0 {
		return ""
	}

	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}

	return string(polyline.EncodeCoords(coords))
}
