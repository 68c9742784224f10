package domain

// Immutable geographic location (WGS-84 degrees) with an optional display name.
type Location struct {
	Lat  float64
	Lon  float64
	Name string
}
