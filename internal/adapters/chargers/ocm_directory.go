package chargers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ev-charge-planner/internal/domain"
	"ev-charge-planner/internal/platform/httpx"
	"ev-charge-planner/internal/platform/obs"
)

// OCMDirectory implements ChargerDirectory against the Open Charge Map
// POI API. Safe for concurrent use.
type OCMDirectory struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewOCMDirectory(apiKey string) *OCMDirectory {
	// The OCM API accepts anonymous requests at a reduced rate limit, so an
	// empty key is allowed here.
	return &OCMDirectory{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://api.openchargemap.io",
	}
}

type ocmPOI struct {
	ID          int64 `json:"ID"`
	AddressInfo struct {
		Title     string   `json:"Title"`
		Latitude  float64  `json:"Latitude"`
		Longitude float64  `json:"Longitude"`
		Distance  *float64 `json:"Distance"`
	} `json:"AddressInfo"`
	NumberOfPoints *int `json:"NumberOfPoints"`
	Connections    []struct {
		PowerKW        *float64 `json:"PowerKW"`
		Quantity       *int     `json:"Quantity"`
		ConnectionType *struct {
			Title string `json:"Title"`
		} `json:"ConnectionType"`
	} `json:"Connections"`
}

// SearchNear returns up to maxResults stations within radiusKm of a point.
func (o *OCMDirectory) SearchNear(ctx context.Context, lat, lon float64, radiusKm float64, maxResults int) (_ []domain.Charger, err error) {
	defer obs.Time(ctx, "chargers.SearchNear")(&err)

	if maxResults <= 0 {
		return nil, errors.New("search chargers: maxResults must be positive")
	}

	endpoint := o.baseURL + "/v3/poi"

	makeReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		q := url.Values{}
		q.Set("output", "json")
		q.Set("latitude", strconv.FormatFloat(lat, 'f', 6, 64))
		q.Set("longitude", strconv.FormatFloat(lon, 'f', 6, 64))
		q.Set("distance", strconv.FormatFloat(radiusKm, 'f', 1, 64))
		q.Set("distanceunit", "km")
		q.Set("maxresults", strconv.Itoa(maxResults))
		q.Set("compact", "true")
		q.Set("verbose", "false")
		req.URL.RawQuery = q.Encode()

		req.Header.Set("Accept", "application/json")
		if o.apiKey != "" {
			req.Header.Set("X-API-Key", o.apiKey)
		}
		return req, nil
	}

	resp, err := httpx.DoWithRetry(ctx, o.session, makeReq)
	if err != nil {
		return nil, fmt.Errorf("charger directory request failed: %w", err)
	}
	defer resp.Body.Close()

	var pois []ocmPOI
	if err := json.NewDecoder(resp.Body).Decode(&pois); err != nil {
		return nil, fmt.Errorf("decode charger directory response: %w", err)
	}

	out := make([]domain.Charger, 0, len(pois))
	for _, poi := range pois {
		out = append(out, mapPOI(poi))
	}

	return out, nil
}

// mapPOI reduces a directory POI to the domain Charger, applying the
// documented fallbacks for sparse directory data.
func mapPOI(poi ocmPOI) domain.Charger {
	var connectorTypes []string
	seen := make(map[string]struct{})
	maxPower := 0.0

	for _, conn := range poi.Connections {
		if conn.PowerKW != nil && *conn.PowerKW > maxPower {
			maxPower = *conn.PowerKW
		}

		if conn.ConnectionType == nil || conn.ConnectionType.Title == "" {
			continue
		}
		if _, ok := seen[conn.ConnectionType.Title]; ok {
			continue
		}
		seen[conn.ConnectionType.Title] = struct{}{}
		connectorTypes = append(connectorTypes, conn.ConnectionType.Title)
	}

	if len(connectorTypes) == 0 {
		connectorTypes = []string{domain.UnknownConnector}
	}

	portCount := 0
	if poi.NumberOfPoints != nil {
		portCount = *poi.NumberOfPoints
	}
	if portCount < 1 {
		portCount = len(connectorTypes)
	}

	distanceKm := 0.0
	if poi.AddressInfo.Distance != nil {
		distanceKm = *poi.AddressInfo.Distance
	}

	return domain.Charger{
		ID:             strconv.FormatInt(poi.ID, 10),
		Name:           poi.AddressInfo.Title,
		Location:       domain.Location{Lat: poi.AddressInfo.Latitude, Lon: poi.AddressInfo.Longitude, Name: poi.AddressInfo.Title},
		MaxPowerKw:     maxPower,
		ConnectorTypes: connectorTypes,
		PortCount:      portCount,
		DistanceKm:     distanceKm,
	}
}
