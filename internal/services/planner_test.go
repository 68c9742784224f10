package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ev-charge-planner/internal/domain"
)

func TestPlanReachableRouteNeedsNoStops(t *testing.T) {
	route := straightRoute(400, 41)

	plan := PlanChargingStops(route, testVehicle(), []domain.Charger{
		chargerAt("unused", 200, 150, 0),
	})

	assert.Empty(t, plan.Stops)
	assert.Zero(t, plan.TotalChargingMinutes)
	assert.InDelta(t, route.DurationMinutes(), plan.TotalTripMinutes, 1e-9)
}

func TestPlanSelectsReachableChargerViaFallback(t *testing.T) {
	// 1000 km route, 600 km of range: the 550 km charger sits just past the
	// 90%-of-range window end, so the fallback path picks it on raw power.
	route := straightRoute(1000, 101)
	chargers := []domain.Charger{
		chargerAt("fast-550", 550, 150, 0),
		chargerAt("slow-950", 950, 50, 0),
	}

	plan := PlanChargingStops(route, testVehicle(), chargers)

	require.Len(t, plan.Stops, 1)
	stop := plan.Stops[0]
	assert.Equal(t, "fast-550", stop.Charger.ID)
	assert.Equal(t, 1, stop.StopNumber)
	assert.InDelta(t, 550, stop.DistanceFromStartKm, 10)
	assert.InDelta(t, 7.39, stop.ArrivalBatteryPercent, 0.1)
	assert.Equal(t, domain.TargetChargePercent, stop.TargetBatteryPercent)
	assert.InDelta(t, 40, stop.ChargeMinutes, 1)
	assert.InDelta(t, route.DurationMinutes()+plan.TotalChargingMinutes, plan.TotalTripMinutes, 1e-9)
}

func TestPlanWindowedSelectionStaysInWindow(t *testing.T) {
	route := straightRoute(1000, 101)
	chargers := []domain.Charger{
		chargerAt("windowed-500", 500, 150, 0),
	}

	plan := PlanChargingStops(route, testVehicle(), chargers)

	require.Len(t, plan.Stops, 1)
	stop := plan.Stops[0]
	// First iteration window for 600 km of range is [420, 540].
	assert.GreaterOrEqual(t, stop.DistanceFromStartKm, 420.0)
	assert.LessOrEqual(t, stop.DistanceFromStartKm, 540.0)
}

func TestPlanNoChargersTerminatesWithEmptyPlan(t *testing.T) {
	route := straightRoute(1000, 101)

	plan := PlanChargingStops(route, testVehicle(), nil)

	assert.Empty(t, plan.Stops)
	assert.Zero(t, plan.TotalChargingMinutes)
	assert.InDelta(t, route.DurationMinutes(), plan.TotalTripMinutes, 1e-9)
}

func TestPlanEmptyPolylineDegradesGracefully(t *testing.T) {
	route := domain.Route{
		DistanceMeters:  1_000_000,
		DurationSeconds: 36_000,
		Polyline:        "",
	}
	chargers := []domain.Charger{
		chargerAt("somewhere", 500, 150, 0),
	}

	plan := PlanChargingStops(route, testVehicle(), chargers)

	// Projection rejects everything without geometry; planning still
	// terminates cleanly with no stops added.
	assert.Empty(t, plan.Stops)
	assert.InDelta(t, route.DurationMinutes(), plan.TotalTripMinutes, 1e-9)
}

func TestPlanMultiStopProgressIsMonotonic(t *testing.T) {
	route := straightRoute(1500, 151)
	chargers := []domain.Charger{
		chargerAt("s1", 500, 150, 0),
		chargerAt("s2", 950, 150, 0),
		chargerAt("decoy-behind", 100, 350, 0),
	}

	plan := PlanChargingStops(route, testVehicle(), chargers)

	require.Len(t, plan.Stops, 2)

	seen := map[string]bool{}
	prev := 0.0
	for _, s := range plan.Stops {
		assert.Greater(t, s.DistanceFromStartKm, prev, "positions must advance")
		assert.False(t, seen[s.Charger.ID], "charger %s selected twice", s.Charger.ID)
		assert.Equal(t, domain.TargetChargePercent, s.TargetBatteryPercent)
		seen[s.Charger.ID] = true
		prev = s.DistanceFromStartKm
	}
}

func TestPlanFallbackPrefersRawPower(t *testing.T) {
	// Both chargers are past the window end but within range; raw power wins
	// even though the stronger one is farther.
	route := straightRoute(1000, 101)
	chargers := []domain.Charger{
		chargerAt("weak-560", 560, 50, 0),
		chargerAt("strong-580", 580, 150, 0),
	}

	plan := PlanChargingStops(route, testVehicle(), chargers)

	require.NotEmpty(t, plan.Stops)
	assert.Equal(t, "strong-580", plan.Stops[0].Charger.ID)
}

func TestPlanWindowedTieBreaksOnID(t *testing.T) {
	route := straightRoute(1000, 101)
	chargers := []domain.Charger{
		chargerAt("b-500", 500, 150, 0),
		chargerAt("a-500", 500, 150, 0),
	}

	plan := PlanChargingStops(route, testVehicle(), chargers)

	require.NotEmpty(t, plan.Stops)
	assert.Equal(t, "a-500", plan.Stops[0].Charger.ID)
}

func TestPlanZeroPowerChargerUsesDefaultDuration(t *testing.T) {
	route := straightRoute(1000, 101)
	chargers := []domain.Charger{
		chargerAt("unrated-500", 500, 0, 0),
	}

	plan := PlanChargingStops(route, testVehicle(), chargers)

	require.NotEmpty(t, plan.Stops)
	assert.Equal(t, 60.0, plan.Stops[0].ChargeMinutes)
}

func TestPlanIterationCapBoundsStopCount(t *testing.T) {
	// A route long enough to need 15 stops stops at the safety cap instead.
	route := straightRoute(6000, 601)
	var chargers []domain.Charger
	for d := 400.0; d < 6000; d += 400 {
		chargers = append(chargers, chargerAt(fmt.Sprintf("s-%04.0f", d), d, 150, 0))
	}

	plan := PlanChargingStops(route, testVehicle(), chargers)

	assert.Len(t, plan.Stops, 10)
	prev := 0.0
	for _, s := range plan.Stops {
		assert.Greater(t, s.DistanceFromStartKm, prev)
		prev = s.DistanceFromStartKm
	}
}

func TestPlanArrivalPercentClampedToFloor(t *testing.T) {
	// Charger exactly at the edge of range: arrival energy ~0, percent
	// clamps to the 1% display floor.
	route := straightRoute(1000, 101)
	chargers := []domain.Charger{
		chargerAt("edge-600", 600, 150, 0),
	}

	plan := PlanChargingStops(route, testVehicle(), chargers)

	require.NotEmpty(t, plan.Stops)
	// True arrival charge is ~0.8%; the display floor clamps it to 1%.
	assert.Equal(t, 1.0, plan.Stops[0].ArrivalBatteryPercent)
}
