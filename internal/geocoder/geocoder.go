// Package geocoder resolves postal codes and street addresses to coordinates
// through an external provider.
package geocoder

import (
	"context"
	"errors"
	"fmt"

	"devcamper/internal/config"
)

// Result is one candidate location returned by a provider.
type Result struct {
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	Street           string
	City             string
	State            string
	Zipcode          string
	Country          string
}

// Geocoder resolves free-form locations. An empty slice means the provider
// found nothing; callers decide what that means.
type Geocoder interface {
	Geocode(ctx context.Context, location string) ([]Result, error)
}

// New builds the configured provider client.
func New(cfg config.GeocoderConfig) (Geocoder, error) {
	switch cfg.Provider {
	case "mapquest", "":
		return NewMapQuest(cfg)
	default:
		return nil, fmt.Errorf("unsupported geocoder provider: %s", cfg.Provider)
	}
}

// ErrDisabled is returned by Disabled for every lookup.
var ErrDisabled = errors.New("geocoder is not configured")

// Disabled is used when no provider key is configured. Records carrying a
// pre-resolved location never reach it.
type Disabled struct{}

// Geocode always fails with ErrDisabled.
func (Disabled) Geocode(context.Context, string) ([]Result, error) {
	return nil, ErrDisabled
}
