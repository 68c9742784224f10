package ports

import "fmt"

// Routing service status codes, part of the RouteProvider contract.
const (
	RouteStatusOK             = "OK"
	RouteStatusZeroResults    = "ZERO_RESULTS"
	RouteStatusNotFound       = "NOT_FOUND"
	RouteStatusInvalidRequest = "INVALID_REQUEST"
	RouteStatusRequestDenied  = "REQUEST_DENIED"
	RouteStatusOverQueryLimit = "OVER_QUERY_LIMIT"
)

// RouteError is a typed routing failure carrying a presentable reason.
// Callers show Reason to the user and may retry; it is never a crash.
type RouteError struct {
	Status string
	Reason string
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("routing failed (%s): %s", e.Status, e.Reason)
}

// NewRouteError builds a RouteError with the human-readable reason keyed
// off the upstream status code.
func NewRouteError(status string) *RouteError {
	return &RouteError{Status: status, Reason: routeReason(status)}
}

func routeReason(status string) string {
	switch status {
	case RouteStatusZeroResults:
		return "no route found between these locations"
	case RouteStatusNotFound:
		return "destination not found"
	case RouteStatusInvalidRequest:
		return "invalid routing request"
	case RouteStatusRequestDenied:
		return "routing authorization denied"
	case RouteStatusOverQueryLimit:
		return "routing quota exceeded"
	default:
		return "unable to compute a route"
	}
}
