package domain

// TargetChargePercent is the fixed charge-to-80% policy applied at every
// planned stop, balancing trip time against battery longevity.
const TargetChargePercent = 80.0

// ChargingStop is a single planned stop: where to charge, the expected
// battery level on arrival, and how long the charge takes.
type ChargingStop struct {
	Charger    Charger
	StopNumber int

	// Clamped to a 1% floor for display sanity, not physical accuracy.
	ArrivalBatteryPercent float64
	TargetBatteryPercent  float64
	ChargeMinutes         float64
	DistanceFromStartKm   float64
}

// ChargingPlan is the ordered output of the stop planner.
// An empty Stops slice means no charging is needed (or that planning
// terminated best-effort with no usable candidates).
type ChargingPlan struct {
	Stops                []ChargingStop
	TotalChargingMinutes float64
	TotalTripMinutes     float64
	DriveMinutes         float64
}
