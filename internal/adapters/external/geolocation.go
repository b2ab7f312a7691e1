package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// StaticGeolocator reports a fixed, configured device position
type StaticGeolocator struct {
	position ports.Position
}

// NewStaticGeolocator creates a geolocator that always returns lat/lon
func NewStaticGeolocator(lat, lon float64) *StaticGeolocator {
	return &StaticGeolocator{position: ports.Position{Latitude: lat, Longitude: lon}}
}

// CurrentPosition returns the configured position
func (g *StaticGeolocator) CurrentPosition(ctx context.Context) (ports.Position, error) {
	if err := ctx.Err(); err != nil {
		return ports.Position{}, errors.NewGeolocationError("position request cancelled", err)
	}
	return g.position, nil
}

// IPGeolocator asks an IP geolocation endpoint for the approximate host position
type IPGeolocator struct {
	url    string
	client HTTPClient
	logger ports.Logger
}

type ipLocationResponse struct {
	Status string   `json:"status"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

// NewIPGeolocator creates a geolocator that issues one GET to url per request
func NewIPGeolocator(url string, client HTTPClient, logger ports.Logger) *IPGeolocator {
	if client == nil {
		client = &http.Client{}
	}
	return &IPGeolocator{url: url, client: client, logger: logger}
}

// CurrentPosition performs a one-shot lookup; every failure is a GeolocationError
func (g *IPGeolocator) CurrentPosition(ctx context.Context) (ports.Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return ports.Position{}, errors.NewGeolocationError("failed to build geolocation request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return ports.Position{}, errors.NewGeolocationError("geolocation lookup failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			g.logger.Warn("Failed to close geolocation response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return ports.Position{}, errors.NewGeolocationError(
			fmt.Sprintf("geolocation service returned status %d", resp.StatusCode), nil)
	}

	var body ipLocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.Position{}, errors.NewGeolocationError("failed to decode geolocation response", err)
	}
	if body.Status != "" && body.Status != "success" {
		return ports.Position{}, errors.NewGeolocationError("geolocation service reported "+body.Status, nil)
	}
	if body.Lat == nil || body.Lon == nil {
		return ports.Position{}, errors.NewGeolocationError("geolocation response has no coordinates", nil)
	}

	return ports.Position{Latitude: *body.Lat, Longitude: *body.Lon}, nil
}

// NewGeolocator builds the configured geolocator. Mode none yields nil,
// which the location resolver treats as an absent capability.
func NewGeolocator(cfg *config.GeolocationConfig, logger ports.Logger) (ports.Geolocator, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("geolocation config cannot be nil", nil)
	}

	switch cfg.Mode {
	case config.GeolocationModeNone:
		return nil, nil
	case config.GeolocationModeStatic:
		return NewStaticGeolocator(cfg.Latitude, cfg.Longitude), nil
	case config.GeolocationModeIP:
		return NewIPGeolocator(cfg.IPURL, nil, logger), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported geolocation mode: %s", cfg.Mode.String()), nil)
	}
}
