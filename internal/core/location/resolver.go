package location

import (
	"context"

	"weatherwidget.app/internal/ports"
)

// DefaultFallbackCity renders when no position is available
const DefaultFallbackCity = "Manila"

// Resolver produces the startup query from the geolocation capability
type Resolver struct {
	geolocator   ports.Geolocator
	fallbackCity string
	logger       ports.Logger
}

// ResolverDependencies holds the collaborators of a Resolver
type ResolverDependencies struct {
	// Geolocator may be nil when the host has no positioning capability
	Geolocator   ports.Geolocator
	FallbackCity string
	Logger       ports.Logger
}

// NewResolver creates a new location resolver
func NewResolver(deps ResolverDependencies) *Resolver {
	fallback := deps.FallbackCity
	if fallback == "" {
		fallback = DefaultFallbackCity
	}

	return &Resolver{
		geolocator:   deps.Geolocator,
		fallbackCity: fallback,
		logger:       deps.Logger,
	}
}

// ResolveDefault asks for the device position once and degrades to the
// fallback city on any failure. It never returns an error.
func (r *Resolver) ResolveDefault(ctx context.Context) Query {
	if r.geolocator == nil {
		r.logger.Info("Geolocation unavailable, using fallback city",
			ports.F("city", r.fallbackCity))
		return NewCityQuery(r.fallbackCity)
	}

	pos, err := r.geolocator.CurrentPosition(ctx)
	if err != nil {
		r.logger.Info("Geolocation failed, using fallback city",
			ports.F("city", r.fallbackCity),
			ports.F("error", err.Error()))
		return NewCityQuery(r.fallbackCity)
	}

	query := NewCoordsQuery(pos.Latitude, pos.Longitude)
	if err := query.IsValid(); err != nil {
		r.logger.Warn("Geolocation returned an invalid position, using fallback city",
			ports.F("city", r.fallbackCity),
			ports.F("error", err.Error()))
		return NewCityQuery(r.fallbackCity)
	}

	r.logger.Debug("Resolved device position",
		ports.F("lat", pos.Latitude),
		ports.F("lon", pos.Longitude))
	return query
}

// FallbackCity returns the configured fallback city
func (r *Resolver) FallbackCity() string {
	return r.fallbackCity
}
