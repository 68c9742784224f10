package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"ev-charge-planner/internal/api/dto"
	"ev-charge-planner/internal/domain"
	"ev-charge-planner/internal/services"
)

// BatteryHandler evaluates a vehicle's battery state, optionally against a
// route length. Cheap and pure; used by clients for immediate feedback
// before a full plan is requested.
type BatteryHandler struct{}

func (h *BatteryHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req dto.BatteryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	vehicle, msg := vehicleFromRequest(req.Vehicle)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	var route *domain.Route
	if req.RouteDistanceMeters != nil {
		if *req.RouteDistanceMeters < 0 {
			writeError(w, r, http.StatusBadRequest, "route_distance_meters must not be negative")
			return
		}
		route = &domain.Route{DistanceMeters: *req.RouteDistanceMeters}
	}

	state := services.EvaluateBattery(vehicle, route)
	writeJSON(w, r, http.StatusOK, batteryResponse(state))
}
