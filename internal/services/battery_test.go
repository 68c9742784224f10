package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ev-charge-planner/internal/domain"
)

func testVehicle() domain.Vehicle {
	return domain.Vehicle{
		BatteryCapacityKwh: 135,
		EfficiencyKwhPerKm: 0.18,
		BatteryPercent:     80,
	}
}

func TestEvaluateBatteryWithoutRoute(t *testing.T) {
	state := EvaluateBattery(testVehicle(), nil)

	assert.False(t, state.HasRoute)
	assert.False(t, state.CanReachDestination)
	assert.InDelta(t, 108.0, state.CurrentEnergyKwh, 1e-9)
	assert.InDelta(t, 600.0, state.RemainingRangeKm, 1e-9)
	assert.Zero(t, state.RequiredEnergyKwh)
	assert.Zero(t, state.EnergyDeficitKwh)
	assert.Zero(t, state.EstimatedChargesNeeded)
}

func TestEvaluateBatteryReachableRoute(t *testing.T) {
	route := domain.Route{DistanceMeters: 400_000}

	state := EvaluateBattery(testVehicle(), &route)

	assert.True(t, state.HasRoute)
	assert.True(t, state.CanReachDestination)
	assert.InDelta(t, 72.0, state.RequiredEnergyKwh, 1e-9)
	assert.Zero(t, state.EnergyDeficitKwh)
	assert.Zero(t, state.EstimatedChargesNeeded)
	// 72 kWh out of 135 kWh.
	assert.InDelta(t, 53.333, state.RoutePercentOfBattery, 0.01)
}

func TestEvaluateBatteryUnreachableRoute(t *testing.T) {
	route := domain.Route{DistanceMeters: 1_000_000}

	state := EvaluateBattery(testVehicle(), &route)

	assert.True(t, state.HasRoute)
	assert.False(t, state.CanReachDestination)
	assert.InDelta(t, 180.0, state.RequiredEnergyKwh, 1e-9)
	assert.InDelta(t, 72.0, state.EnergyDeficitKwh, 1e-9)
	// One modeled charge restores 0.80 x 135 = 108 kWh >= 72 kWh deficit.
	assert.Equal(t, 1, state.EstimatedChargesNeeded)
	assert.InDelta(t, 133.333, state.RoutePercentOfBattery, 0.01)
}

func TestEvaluateBatteryChargesNeededRoundsUp(t *testing.T) {
	v := domain.Vehicle{BatteryCapacityKwh: 50, EfficiencyKwhPerKm: 0.2, BatteryPercent: 100}
	route := domain.Route{DistanceMeters: 700_000} // needs 140 kWh, has 50

	state := EvaluateBattery(v, &route)

	// Deficit 90 kWh over 40 kWh per modeled charge -> 3 charges.
	assert.Equal(t, 3, state.EstimatedChargesNeeded)
}

func TestEvaluateBatteryGuardsZeroCapacity(t *testing.T) {
	v := domain.Vehicle{EfficiencyKwhPerKm: 0.2, BatteryPercent: 50}
	route := domain.Route{DistanceMeters: 100_000}

	state := EvaluateBattery(v, &route)

	assert.Zero(t, state.RoutePercentOfBattery)
	assert.Zero(t, state.EstimatedChargesNeeded)
	assert.False(t, state.CanReachDestination)
}
