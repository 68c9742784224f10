package domain

// BatteryState is the output of evaluating a vehicle, optionally against a
// route. It is immutable computed data and contains no side effects.
//
// Route-specific fields are only meaningful when HasRoute is true;
// CanReachDestination is false without a route but carries no information
// in that case.
type BatteryState struct {
	BatteryCapacityKwh float64
	BatteryPercent     float64
	EfficiencyKwhPerKm float64
	CurrentEnergyKwh   float64
	RemainingRangeKm   float64

	HasRoute               bool
	RequiredEnergyKwh      float64
	CanReachDestination    bool
	EnergyDeficitKwh       float64
	EstimatedChargesNeeded int

	// Share of a full battery the route would consume, as a percentage.
	// Computed whenever a route is present, reachable or not.
	RoutePercentOfBattery float64
}
