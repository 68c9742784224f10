package services

import (
	"math"

	"ev-charge-planner/internal/domain"
)

// Each charging stop is modeled as restoring 80% of full capacity when
// estimating how many charges a deficit implies. This is a coarse estimate
// independent of which chargers actually exist; the planner's stop count
// may legitimately disagree with it.
const chargeRestoreFraction = 0.80

// EvaluateBattery computes the battery state for a vehicle, optionally
// against a route.
//
// Pure function: no I/O, deterministic for identical inputs. Without a
// route, all route-specific fields are zero and CanReachDestination is
// false (callers must check HasRoute before interpreting it).
func EvaluateBattery(v domain.Vehicle, r *domain.Route) domain.BatteryState {
	state := domain.BatteryState{
		BatteryCapacityKwh: v.BatteryCapacityKwh,
		BatteryPercent:     v.BatteryPercent,
		EfficiencyKwhPerKm: v.EfficiencyKwhPerKm,
		CurrentEnergyKwh:   v.CurrentEnergyKwh(),
		RemainingRangeKm:   v.RangeKm(),
	}

	if r == nil {
		return state
	}

	state.HasRoute = true
	state.RequiredEnergyKwh = r.DistanceKm() * v.EfficiencyKwhPerKm

	if v.BatteryCapacityKwh > 0 {
		state.RoutePercentOfBattery = state.RequiredEnergyKwh / v.BatteryCapacityKwh * 100.0
	}

	if state.CurrentEnergyKwh >= state.RequiredEnergyKwh {
		state.CanReachDestination = true
		return state
	}

	state.EnergyDeficitKwh = state.RequiredEnergyKwh - state.CurrentEnergyKwh

	perCharge := v.BatteryCapacityKwh * chargeRestoreFraction
	if perCharge > 0 {
		state.EstimatedChargesNeeded = int(math.Ceil(state.EnergyDeficitKwh / perCharge))
	}

	return state
}
