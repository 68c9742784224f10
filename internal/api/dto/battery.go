package dto

// VehicleRequest carries battery characteristics for evaluation/planning.
type VehicleRequest struct {
	BatteryCapacityKwh float64 `json:"battery_capacity_kwh"`
	EfficiencyKwhPerKm float64 `json:"efficiency_kwh_per_km"`
	BatteryPercent     float64 `json:"battery_percent"`
}

type BatteryRequest struct {
	Vehicle VehicleRequest `json:"vehicle"`

	// Optional: evaluate against a route of this length.
	RouteDistanceMeters *float64 `json:"route_distance_meters"`
}

type BatteryStateResponse struct {
	BatteryCapacityKwh float64 `json:"battery_capacity_kwh"`
	BatteryPercent     float64 `json:"battery_percent"`
	EfficiencyKwhPerKm float64 `json:"efficiency_kwh_per_km"`
	CurrentEnergyKwh   float64 `json:"current_energy_kwh"`
	RemainingRangeKm   float64 `json:"remaining_range_km"`

	HasRoute               bool    `json:"has_route"`
	RequiredEnergyKwh      float64 `json:"required_energy_kwh"`
	CanReachDestination    bool    `json:"can_reach_destination"`
	EnergyDeficitKwh       float64 `json:"energy_deficit_kwh"`
	EstimatedChargesNeeded int     `json:"estimated_charges_needed"`
	RoutePercentOfBattery  float64 `json:"route_percent_of_battery"`
}
