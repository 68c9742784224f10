package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKnownDistance(t *testing.T) {
	paris := Point{Lat: 48.8566, Lon: 2.3522}
	london := Point{Lat: 51.5074, Lon: -0.1278}

	d := Haversine(paris, london)

	// Paris -> London is roughly 343.5 km great circle.
	assert.InDelta(t, 343_500, d, 1_500)
}

func TestHaversineZeroDistance(t *testing.T) {
	p := Point{Lat: 40.0, Lon: -105.0}
	assert.InDelta(t, 0, Haversine(p, p), 1e-9)
}

func TestNearestPointIndex(t *testing.T) {
	line := []Point{
		{Lat: 40.0, Lon: -105.0},
		{Lat: 40.5, Lon: -105.0},
		{Lat: 41.0, Lon: -105.0},
	}

	idx, dist := NearestPointIndex(Point{Lat: 40.49, Lon: -105.0}, line)

	require.Equal(t, 1, idx)
	assert.Less(t, dist, 2_000.0)
}

func TestNearestPointIndexTieTakesLowestIndex(t *testing.T) {
	p := Point{Lat: 40.0, Lon: -105.0}
	line := []Point{p, p, p}

	idx, dist := NearestPointIndex(Point{Lat: 40.0, Lon: -105.0}, line)

	assert.Equal(t, 0, idx)
	assert.InDelta(t, 0, dist, 1e-9)
}

func TestNearestPointIndexEmptyLine(t *testing.T) {
	idx, dist := NearestPointIndex(Point{Lat: 1, Lon: 1}, nil)

	assert.Equal(t, -1, idx)
	assert.True(t, math.IsInf(dist, 1))
}

func TestDecodePolylineGoogleExample(t *testing.T) {
	// Reference vector from the encoded polyline algorithm documentation.
	points := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")

	require.Len(t, points, 3)
	assert.InDelta(t, 38.5, points[0].Lat, 1e-5)
	assert.InDelta(t, -120.2, points[0].Lon, 1e-5)
	assert.InDelta(t, 40.7, points[1].Lat, 1e-5)
	assert.InDelta(t, -120.95, points[1].Lon, 1e-5)
	assert.InDelta(t, 43.252, points[2].Lat, 1e-5)
	assert.InDelta(t, -126.453, points[2].Lon, 1e-5)
}

func TestDecodePolylineEmptyAndMalformed(t *testing.T) {
	assert.Nil(t, DecodePolyline(""))
	assert.Nil(t, DecodePolyline("\x01"))
}

func TestPolylineRoundTrip(t *testing.T) {
	original := []Point{
		{Lat: 47.6062, Lon: -122.3321},
		{Lat: 45.5152, Lon: -122.6784},
		{Lat: 37.7749, Lon: -122.4194},
	}

	decoded := DecodePolyline(EncodePolyline(original))

	require.Len(t, decoded, len(original))
	for i := range original {
		assert.InDelta(t, original[i].Lat, decoded[i].Lat, 1e-5)
		assert.InDelta(t, original[i].Lon, decoded[i].Lon, 1e-5)
	}
}
