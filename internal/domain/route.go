package domain

// Represents a driving route between two locations as returned by the
// routing service: aggregate distance/duration plus the encoded polyline
// tracing the path.
//
// Invariant: DistanceMeters >= 0; when DistanceMeters > 0 the polyline
// decodes to at least one point.
type Route struct {
	DistanceMeters  float64
	DurationSeconds float64
	Polyline        string
	Start           Location
	End             Location
}

// DistanceKm returns the total route distance in kilometers.
func (r Route) DistanceKm() float64 {
	return r.DistanceMeters / 1000.0
}

// DurationMinutes returns the total driving duration in minutes.
func (r Route) DurationMinutes() float64 {
	return r.DurationSeconds / 60.0
}
