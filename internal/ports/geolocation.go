package ports

import "context"

// Position is a one-shot device position fix
type Position struct {
	Latitude  float64
	Longitude float64
}

// Geolocator defines the device geolocation capability.
// A nil Geolocator means the capability is absent.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}
