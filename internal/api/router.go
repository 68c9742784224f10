package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"ev-charge-planner/internal/api/handlers"
	"ev-charge-planner/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(
	routes ports.RouteProvider,
	directory ports.ChargerDirectory,
	stationCache ports.StationCache,
	planRepo ports.PlanRepository,
	planListLimit int,
) http.Handler {
	r := mux.NewRouter()

	batteryHandler := &handlers.BatteryHandler{}
	planHandler := &handlers.PlanHandler{
		Routes:    routes,
		Directory: directory,
		Cache:     stationCache,
		Repo:      planRepo,
		ListLimit: planListLimit,
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/battery", batteryHandler.Evaluate).Methods(http.MethodPost)
	r.HandleFunc("/plans", planHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/plans", planHandler.List).Methods(http.MethodGet)

	return loggingMiddleware(r)
}
