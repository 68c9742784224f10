package dto

import "time"

type PlanRequest struct {
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Vehicle     VehicleRequest `json:"vehicle"`
}

type ChargerResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Lat            float64  `json:"lat"`
	Lon            float64  `json:"lon"`
	MaxPowerKw     float64  `json:"max_power_kw"`
	PowerLevel     string   `json:"power_level"`
	ConnectorTypes []string `json:"connector_types"`
	PortCount      int      `json:"port_count"`
}

type ChargingStopResponse struct {
	StopNumber            int             `json:"stop_number"`
	Charger               ChargerResponse `json:"charger"`
	ArrivalBatteryPercent float64         `json:"arrival_battery_percent"`
	TargetBatteryPercent  float64         `json:"target_battery_percent"`
	ChargeMinutes         float64         `json:"charge_minutes"`
	ChargeDuration        string          `json:"charge_duration"`
	DistanceFromStartKm   float64         `json:"distance_from_start_km"`
}

type RouteResponse struct {
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Polyline        string  `json:"polyline"`
}

type PlanResponse struct {
	Route   RouteResponse        `json:"route"`
	Battery BatteryStateResponse `json:"battery"`

	Stops                []ChargingStopResponse `json:"stops"`
	TotalChargingMinutes float64                `json:"total_charging_minutes"`
	TotalTripMinutes     float64                `json:"total_trip_minutes"`
	DriveMinutes         float64                `json:"drive_minutes"`
}

type SavedPlanResponse struct {
	ID                   int64     `json:"id"`
	Origin               string    `json:"origin"`
	Destination          string    `json:"destination"`
	StopCount            int       `json:"stop_count"`
	TotalChargingMinutes float64   `json:"total_charging_minutes"`
	CreatedAt            time.Time `json:"created_at"`
}

type ListSavedPlansResponse struct {
	Plans []SavedPlanResponse `json:"plans"`
}
