package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ev-charge-planner/internal/api/dto"
	"ev-charge-planner/internal/domain"
	"ev-charge-planner/internal/ports"
	"ev-charge-planner/internal/services"
)

// PlanHandler orchestrates a full planning request: route lookup, battery
// evaluation, corridor discovery, and greedy stop selection. It coordinates
// the external adapters behind their ports; the planning itself is pure.
type PlanHandler struct {
	Routes    ports.RouteProvider
	Directory ports.ChargerDirectory
	Cache     ports.StationCache
	Repo      ports.PlanRepository
	ListLimit int
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest

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

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	vehicle, msg := vehicleFromRequest(req.Vehicle)
	if msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	ctx := r.Context()

	route, err := h.Routes.GetRoute(ctx, origin, destination)
	if err != nil {
		var re *ports.RouteError
		if errors.As(err, &re) {
			// The reason is already presentable; the client may retry.
			writeError(w, r, http.StatusUnprocessableEntity, re.Reason)
			return
		}
		zap.L().Error("route lookup failed", zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "routing service unavailable")
		return
	}

	battery := services.EvaluateBattery(vehicle, route)

	// Discovery is the expensive step; skip it when the destination is
	// already reachable. Degraded discovery (empty result) still yields a
	// valid best-effort plan.
	var chargers []domain.Charger
	if !battery.CanReachDestination {
		chargers = services.DiscoverChargers(ctx, route, route.Start, h.Directory, h.Cache, zap.L())
	}

	plan := services.PlanChargingStops(*route, vehicle, chargers)

	resp := planResponse(origin, destination, *route, battery, plan)

	if h.Repo != nil {
		payload, err := json.Marshal(resp)
		if err == nil {
			_, err = h.Repo.SavePlan(ctx, ports.PlanRecord{
				Origin:               origin,
				Destination:          destination,
				StopCount:            len(plan.Stops),
				TotalChargingMinutes: plan.TotalChargingMinutes,
				Payload:              payload,
			})
		}
		if err != nil {
			// History is best effort; the computed plan is still returned.
			zap.L().Warn("persist plan failed", zap.Error(err))
		}
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := h.ListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	records, err := h.Repo.ListPlans(r.Context(), limit)
	if err != nil {
		zap.L().Error("list plans failed", zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSavedPlansResponse{Plans: make([]dto.SavedPlanResponse, 0, len(records))}
	for _, rec := range records {
		res.Plans = append(res.Plans, dto.SavedPlanResponse{
			ID:                   rec.ID,
			Origin:               rec.Origin,
			Destination:          rec.Destination,
			StopCount:            rec.StopCount,
			TotalChargingMinutes: rec.TotalChargingMinutes,
			CreatedAt:            rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func planResponse(
	origin, destination string,
	route domain.Route,
	battery domain.BatteryState,
	plan domain.ChargingPlan,
) dto.PlanResponse {
	stops := make([]dto.ChargingStopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		stops = append(stops, dto.ChargingStopResponse{
			StopNumber: s.StopNumber,
			Charger: dto.ChargerResponse{
				ID:             s.Charger.ID,
				Name:           s.Charger.Name,
				Lat:            s.Charger.Location.Lat,
				Lon:            s.Charger.Location.Lon,
				MaxPowerKw:     s.Charger.MaxPowerKw,
				PowerLevel:     domain.PowerLevelLabel(domain.PowerLevelOf(s.Charger.MaxPowerKw)),
				ConnectorTypes: s.Charger.ConnectorTypes,
				PortCount:      s.Charger.PortCount,
			},
			ArrivalBatteryPercent: s.ArrivalBatteryPercent,
			TargetBatteryPercent:  s.TargetBatteryPercent,
			ChargeMinutes:         s.ChargeMinutes,
			ChargeDuration:        domain.FormatChargeMinutes(s.ChargeMinutes),
			DistanceFromStartKm:   s.DistanceFromStartKm,
		})
	}

	return dto.PlanResponse{
		Route: dto.RouteResponse{
			Origin:          origin,
			Destination:     destination,
			DistanceMeters:  route.DistanceMeters,
			DurationSeconds: route.DurationSeconds,
			Polyline:        route.Polyline,
		},
		Battery:              batteryResponse(battery),
		Stops:                stops,
		TotalChargingMinutes: plan.TotalChargingMinutes,
		TotalTripMinutes:     plan.TotalTripMinutes,
		DriveMinutes:         plan.DriveMinutes,
	}
}
