package domain

// Vehicle captures the battery characteristics that drive range math.
//
// Invariants: BatteryCapacityKwh > 0, EfficiencyKwhPerKm > 0,
// BatteryPercent in [0, 100].
type Vehicle struct {
	BatteryCapacityKwh float64
	EfficiencyKwhPerKm float64
	BatteryPercent     float64
}

// CurrentEnergyKwh returns the energy currently stored in the battery.
func (v Vehicle) CurrentEnergyKwh() float64 {
	return v.BatteryCapacityKwh * v.BatteryPercent / 100.0
}

// RangeKm returns the naive driving range at the current state of charge.
// Returns 0 when efficiency is not positive.
func (v Vehicle) RangeKm() float64 {
	if v.EfficiencyKwhPerKm <= 0 {
		return 0
	}
	return v.CurrentEnergyKwh() / v.EfficiencyKwhPerKm
}
