package geocoder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"devcamper/internal/config"
)

// MapQuest talks to the MapQuest geocoding v1 API.
// It is safe for concurrent use.
type MapQuest struct {
	client  *http.Client
	baseURL string
	apiKey  string
	retries int
	backoff time.Duration
}

var _ Geocoder = (*MapQuest)(nil)

// errTransient marks failures worth retrying (5xx and transport errors).
var errTransient = errors.New("transient geocoder failure")

// NewMapQuest creates a MapQuest client with an instrumented HTTP transport.
func NewMapQuest(cfg config.GeocoderConfig) (*MapQuest, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("geocoder api key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("geocoder base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MapQuest{
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		retries: max(cfg.Retries, 0),
		backoff: 200 * time.Millisecond,
	}, nil
}

type mqResponse struct {
	Info struct {
		StatusCode int      `json:"statuscode"`
		Messages   []string `json:"messages"`
	} `json:"info"`
	Results []struct {
		Locations []mqLocation `json:"locations"`
	} `json:"results"`
}

type mqLocation struct {
	Street     string `json:"street"`
	AdminArea5 string `json:"adminArea5"` // city
	AdminArea3 string `json:"adminArea3"` // state
	AdminArea1 string `json:"adminArea1"` // country
	PostalCode string `json:"postalCode"`
	LatLng     struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"latLng"`
}

// Geocode resolves location, retrying transient failures with exponential backoff.
func (m *MapQuest) Geocode(ctx context.Context, location string) ([]Result, error) {
	var lastErr error
	for attempt := 0; attempt <= m.retries; attempt++ {
		if attempt > 0 {
			wait := m.backoff << (attempt - 1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		res, err := m.do(ctx, location)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !errors.Is(err, errTransient) || ctx.Err() != nil {
			break
		}
	}
	return nil, lastErr
}

func (m *MapQuest) do(ctx context.Context, location string) ([]Result, error) {
	q := url.Values{}
	q.Set("key", m.apiKey)
	q.Set("location", location)
	q.Set("maxResults", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/geocoding/v1/address?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build geocoder request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d", errTransient, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", errTransient, err)
	}

	var out mqResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("geocoder: decode response: %w", err)
	}
	if out.Info.StatusCode != 0 {
		return nil, fmt.Errorf("geocoder: provider status %d: %s", out.Info.StatusCode, strings.Join(out.Info.Messages, "; "))
	}

	results := make([]Result, 0)
	for _, r := range out.Results {
		for _, l := range r.Locations {
			results = append(results, l.toResult())
		}
	}
	return results, nil
}

func (l mqLocation) toResult() Result {
	r := Result{
		Latitude:  l.LatLng.Lat,
		Longitude: l.LatLng.Lng,
		Street:    l.Street,
		City:      l.AdminArea5,
		State:     l.AdminArea3,
		Zipcode:   l.PostalCode,
		Country:   l.AdminArea1,
	}

	var parts []string
	if r.Street != "" {
		parts = append(parts, r.Street)
	}
	if r.City != "" {
		parts = append(parts, r.City)
	}
	if stateZip := strings.TrimSpace(r.State + " " + r.Zipcode); stateZip != "" {
		parts = append(parts, stateZip)
	}
	if r.Country != "" {
		parts = append(parts, r.Country)
	}
	r.FormattedAddress = strings.Join(parts, ", ")
	return r
}
