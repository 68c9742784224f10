package domain

// UnknownConnector is the sentinel used when the charger directory reports
// no connector types for a station.
const UnknownConnector = "Unknown"

// Charger is a candidate charging station from the directory service.
//
// ID is the only identity that survives across calls within a planning run;
// it is the deduplication and "already selected" key.
type Charger struct {
	ID             string
	Name           string
	Location       Location
	MaxPowerKw     float64
	ConnectorTypes []string
	PortCount      int

	// Distance from the directory query point, when reported. Kilometers.
	DistanceKm float64
}

// PowerLevel buckets charger power for presentation and tie-breaking.
// It plays no role in the planning score itself.
type PowerLevel int

const (
	PowerLevel2 PowerLevel = iota
	PowerLevelFast
	PowerLevelUltraFast
)

// PowerLevelOf buckets a power rating: <50 kW, 50-149 kW, >=150 kW.
func PowerLevelOf(powerKw float64) PowerLevel {
	switch {
	case powerKw >= 150:
		return PowerLevelUltraFast
	case powerKw >= 50:
		return PowerLevelFast
	default:
		return PowerLevel2
	}
}
