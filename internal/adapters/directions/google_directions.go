package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ev-charge-planner/internal/domain"
	"ev-charge-planner/internal/platform/httpx"
	"ev-charge-planner/internal/platform/obs"
	"ev-charge-planner/internal/ports"
)

// GoogleRouteProvider implements RouteProvider against the Google
// Directions API. Responses are reduced to the planning core's needs:
// total distance, total duration, and the overview polyline.
//
// The provider is safe for concurrent use.
type GoogleRouteProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	mode    string
}

func NewGoogleRouteProvider(apiKey string) (*GoogleRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("directions api key is empty")
	}

	return &GoogleRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com",
		mode:    "driving",
	}, nil
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"`
			} `json:"duration"`
			StartAddress  string `json:"start_address"`
			EndAddress    string `json:"end_address"`
			StartLocation struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"start_location"`
			EndLocation struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"end_location"`
		} `json:"legs"`
	} `json:"routes"`
}

// GetRoute fetches the driving route between two addresses or coordinates.
// Non-OK upstream statuses map to a *RouteError; transport-level failures
// are retried with backoff before surfacing.
func (g *GoogleRouteProvider) GetRoute(ctx context.Context, origin, destination string) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "directions.GetRoute")(&err)

	if origin == "" || destination == "" {
		return nil, errors.New("get route: origin and destination must be non-empty")
	}

	endpoint := g.baseURL + "/maps/api/directions/json"

	makeReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		q := url.Values{}
		q.Set("origin", origin)
		q.Set("destination", destination)
		q.Set("mode", g.mode)
		q.Set("key", g.apiKey)
		req.URL.RawQuery = q.Encode()

		req.Header.Set("Accept", "application/json")
		return req, nil
	}

	resp, err := httpx.DoWithRetry(ctx, g.session, makeReq)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if decoded.Status != ports.RouteStatusOK {
		return nil, ports.NewRouteError(decoded.Status)
	}

	if len(decoded.Routes) == 0 || len(decoded.Routes[0].Legs) == 0 {
		return nil, ports.NewRouteError(ports.RouteStatusZeroResults)
	}

	best := decoded.Routes[0]

	var meters, seconds float64
	for _, leg := range best.Legs {
		meters += leg.Distance.Value
		seconds += leg.Duration.Value
	}

	first := best.Legs[0]
	last := best.Legs[len(best.Legs)-1]

	return &domain.Route{
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Polyline:        best.OverviewPolyline.Points,
		Start: domain.Location{
			Lat:  first.StartLocation.Lat,
			Lon:  first.StartLocation.Lng,
			Name: first.StartAddress,
		},
		End: domain.Location{
			Lat:  last.EndLocation.Lat,
			Lon:  last.EndLocation.Lng,
			Name: last.EndAddress,
		},
	}, nil
}
