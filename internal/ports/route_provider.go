package ports

import (
	"context"
	"ev-charge-planner/internal/domain"
)

// Contract for retrieving a driving route from the external routing service.
type RouteProvider interface {
	// Return the driving route between an origin and a destination address.
	// Failures surface as a typed error carrying a presentable reason.
	GetRoute(ctx context.Context, origin string, destination string) (*domain.Route, error)
}
