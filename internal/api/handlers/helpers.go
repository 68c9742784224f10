package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"ev-charge-planner/internal/api/dto"
	"ev-charge-planner/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response failed",
			zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// vehicleFromRequest validates a vehicle DTO and converts it to the domain
// type. The returned message is empty when the vehicle is valid.
func vehicleFromRequest(req dto.VehicleRequest) (domain.Vehicle, string) {
	if req.BatteryCapacityKwh <= 0 {
		return domain.Vehicle{}, "vehicle.battery_capacity_kwh must be positive"
	}
	if req.EfficiencyKwhPerKm <= 0 {
		return domain.Vehicle{}, "vehicle.efficiency_kwh_per_km must be positive"
	}
	if req.BatteryPercent < 0 || req.BatteryPercent > 100 {
		return domain.Vehicle{}, "vehicle.battery_percent must be between 0 and 100"
	}

	return domain.Vehicle{
		BatteryCapacityKwh: req.BatteryCapacityKwh,
		EfficiencyKwhPerKm: req.EfficiencyKwhPerKm,
		BatteryPercent:     req.BatteryPercent,
	}, ""
}

func batteryResponse(state domain.BatteryState) dto.BatteryStateResponse {
	return dto.BatteryStateResponse{
		BatteryCapacityKwh:     state.BatteryCapacityKwh,
		BatteryPercent:         state.BatteryPercent,
		EfficiencyKwhPerKm:     state.EfficiencyKwhPerKm,
		CurrentEnergyKwh:       state.CurrentEnergyKwh,
		RemainingRangeKm:       state.RemainingRangeKm,
		HasRoute:               state.HasRoute,
		RequiredEnergyKwh:      state.RequiredEnergyKwh,
		CanReachDestination:    state.CanReachDestination,
		EnergyDeficitKwh:       state.EnergyDeficitKwh,
		EstimatedChargesNeeded: state.EstimatedChargesNeeded,
		RoutePercentOfBattery:  state.RoutePercentOfBattery,
	}
}
