package services

import (
	"math"
	"strings"

	"ev-charge-planner/internal/domain"
	"ev-charge-planner/internal/geo"
)

const (
	// Hard safety cap on planning iterations, guarding against pathological
	// inputs. Not a tunable business rule.
	maxPlanIterations = 10

	// Charge-trigger policy: start considering a stop once 70% of range is
	// consumed; stop by 90%, leaving a 10% margin before exhaustion.
	windowStartFraction = 0.70
	windowEndFraction   = 0.90

	powerScoreWeight     = 0.6
	proximityScoreWeight = 0.4

	// Estimate used when a charger reports zero or unknown power.
	defaultChargeMinutes = 60.0
)

// PlanChargingStops selects an ordered sequence of charging stops that get
// the vehicle to the route's destination.
//
// The algorithm is a greedy heuristic: one forward pass along the route, no
// backtracking, no global optimization over trip time or stop count. When
// no usable candidate exists the plan is returned as-is, possibly leaving
// the destination unreached; that is a best-effort outcome, not an error.
func PlanChargingStops(route domain.Route, vehicle domain.Vehicle, chargers []domain.Charger) domain.ChargingPlan {
	plan := domain.ChargingPlan{
		Stops:        []domain.ChargingStop{},
		DriveMinutes: route.DurationMinutes(),
	}
	plan.TotalTripMinutes = plan.DriveMinutes

	requiredEnergy := route.DistanceKm() * vehicle.EfficiencyKwhPerKm
	if vehicle.CurrentEnergyKwh() >= requiredEnergy {
		return plan
	}

	// A vehicle that cannot move or hold charge cannot be planned for.
	if vehicle.EfficiencyKwhPerKm <= 0 || vehicle.BatteryCapacityKwh <= 0 {
		return plan
	}

	routePoints := geo.DecodePolyline(route.Polyline)
	candidates := ProjectChargers(chargers, routePoints, route.DistanceKm())

	position := 0.0
	percent := vehicle.BatteryPercent
	selected := make(map[string]struct{})

	for iter := 0; iter < maxPlanIterations; iter++ {
		energy := vehicle.BatteryCapacityKwh * percent / 100.0
		rangeKm := energy / vehicle.EfficiencyKwhPerKm

		if rangeKm >= route.DistanceKm()-position {
			break
		}

		lookStart := position + rangeKm*windowStartFraction
		lookEnd := position + rangeKm*windowEndFraction

		choice, ok := selectInWindow(candidates, selected, lookStart, lookEnd)
		if !ok {
			choice, ok = selectFallback(candidates, selected, position, rangeKm)
		}
		if !ok {
			break
		}

		stop := buildChargingStop(choice, len(plan.Stops)+1, position, percent, vehicle)
		plan.Stops = append(plan.Stops, stop)
		selected[choice.Charger.ID] = struct{}{}
		position = choice.DistanceFromStartKm
		percent = domain.TargetChargePercent
	}

	for _, s := range plan.Stops {
		plan.TotalChargingMinutes += s.ChargeMinutes
	}
	plan.TotalTripMinutes = plan.DriveMinutes + plan.TotalChargingMinutes

	return plan
}

// selectInWindow scores not-yet-selected chargers inside [lookStart, lookEnd]
// and returns the best one. The ideal stop position is the window end.
//
// finalScore = 0.6 x powerScore + 0.4 x proximityScore, where powerScore
// normalizes against the strongest charger in the window and proximityScore
// decays linearly with distance from the ideal position.
//
// Ties resolve deterministically: higher raw power, then smaller distance
// from ideal, then lexicographically smaller charger ID.
func selectInWindow(
	candidates []PositionedCharger,
	selected map[string]struct{},
	lookStart, lookEnd float64,
) (PositionedCharger, bool) {
	ideal := lookEnd
	width := lookEnd - lookStart

	var window []PositionedCharger
	maxPower := 0.0
	for _, c := range candidates {
		if _, done := selected[c.Charger.ID]; done {
			continue
		}
		if c.DistanceFromStartKm < lookStart || c.DistanceFromStartKm > lookEnd {
			continue
		}
		window = append(window, c)
		if c.Charger.MaxPowerKw > maxPower {
			maxPower = c.Charger.MaxPowerKw
		}
	}

	if len(window) == 0 {
		return PositionedCharger{}, false
	}

	score := func(c PositionedCharger) float64 {
		powerScore := 0.0
		if maxPower > 0 {
			powerScore = c.Charger.MaxPowerKw / maxPower * 100.0
		}

		proximityScore := 100.0
		if width > 0 {
			proximityScore = (width - math.Abs(c.DistanceFromStartKm-ideal)) / width * 100.0
		}

		return powerScoreWeight*powerScore + proximityScoreWeight*proximityScore
	}

	best := window[0]
	bestScore := score(best)
	for _, c := range window[1:] {
		s := score(c)
		if betterWindowed(c, s, best, bestScore, ideal) {
			best = c
			bestScore = s
		}
	}

	return best, true
}

func betterWindowed(c PositionedCharger, cScore float64, best PositionedCharger, bestScore float64, ideal float64) bool {
	if cScore != bestScore {
		return cScore > bestScore
	}
	if c.Charger.MaxPowerKw != best.Charger.MaxPowerKw {
		return c.Charger.MaxPowerKw > best.Charger.MaxPowerKw
	}
	cOff := math.Abs(c.DistanceFromStartKm - ideal)
	bestOff := math.Abs(best.DistanceFromStartKm - ideal)
	if cOff != bestOff {
		return cOff < bestOff
	}
	return strings.Compare(c.Charger.ID, best.Charger.ID) < 0
}

// selectFallback picks the highest-power unselected charger strictly ahead
// of the current position and within current range. No proximity weighting.
// Ties resolve to the smaller distance from start, then the smaller ID.
func selectFallback(
	candidates []PositionedCharger,
	selected map[string]struct{},
	position, rangeKm float64,
) (PositionedCharger, bool) {
	var best PositionedCharger
	found := false

	for _, c := range candidates {
		if _, done := selected[c.Charger.ID]; done {
			continue
		}
		if c.DistanceFromStartKm <= position || c.DistanceFromStartKm > position+rangeKm {
			continue
		}

		if !found {
			best = c
			found = true
			continue
		}

		switch {
		case c.Charger.MaxPowerKw > best.Charger.MaxPowerKw:
			best = c
		case c.Charger.MaxPowerKw == best.Charger.MaxPowerKw &&
			c.DistanceFromStartKm < best.DistanceFromStartKm:
			best = c
		case c.Charger.MaxPowerKw == best.Charger.MaxPowerKw &&
			c.DistanceFromStartKm == best.DistanceFromStartKm &&
			strings.Compare(c.Charger.ID, best.Charger.ID) < 0:
			best = c
		}
	}

	return best, found
}

// buildChargingStop computes arrival battery level and charge duration for
// a selected charger.
func buildChargingStop(
	choice PositionedCharger,
	stopNumber int,
	position, percent float64,
	vehicle domain.Vehicle,
) domain.ChargingStop {
	consumed := (choice.DistanceFromStartKm - position) * vehicle.EfficiencyKwhPerKm
	arrivalEnergy := vehicle.BatteryCapacityKwh*percent/100.0 - consumed

	// Clamped to a 1% floor for display sanity, not physical accuracy.
	arrivalPercent := 1.0
	if vehicle.BatteryCapacityKwh > 0 {
		arrivalPercent = math.Max(1.0, arrivalEnergy/vehicle.BatteryCapacityKwh*100.0)
	}

	energyToAdd := math.Max(0, vehicle.BatteryCapacityKwh*domain.TargetChargePercent/100.0-math.Max(0, arrivalEnergy))

	minutes := defaultChargeMinutes
	if choice.Charger.MaxPowerKw > 0 {
		minutes = math.Ceil(energyToAdd / (choice.Charger.MaxPowerKw / 60.0))
	}

	return domain.ChargingStop{
		Charger:               choice.Charger,
		StopNumber:            stopNumber,
		ArrivalBatteryPercent: arrivalPercent,
		TargetBatteryPercent:  domain.TargetChargePercent,
		ChargeMinutes:         minutes,
		DistanceFromStartKm:   choice.DistanceFromStartKm,
	}
}
