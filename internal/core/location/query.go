package location

import (
	"fmt"
	"strings"
)

// Kind tells which form of lookup a Query carries
type Kind int

const (
	KindCity Kind = iota + 1
	KindCoords
)

// String returns the string representation of the query kind
func (k Kind) String() string {
	switch k {
	case KindCity:
		return "city"
	case KindCoords:
		return "coords"
	default:
		return "unknown"
	}
}

// Query is a single location lookup, created per user action and discarded after use
type Query struct {
	Kind Kind
	Name string
	Lat  float64
	Lon  float64
}

// NewCityQuery builds a free-text city query
func NewCityQuery(name string) Query {
	return Query{Kind: KindCity, Name: name}
}

// NewCoordsQuery builds a coordinate query
func NewCoordsQuery(lat, lon float64) Query {
	return Query{Kind: KindCoords, Lat: lat, Lon: lon}
}

// IsValid validates the query shape
func (q Query) IsValid() error {
	switch q.Kind {
	case KindCity:
		if strings.TrimSpace(q.Name) == "" {
			return fmt.Errorf("city name cannot be empty")
		}
	case KindCoords:
		if q.Lat < -90 || q.Lat > 90 {
			return fmt.Errorf("latitude must be between -90 and 90")
		}
		if q.Lon < -180 || q.Lon > 180 {
			return fmt.Errorf("longitude must be between -180 and 180")
		}
	default:
		return fmt.Errorf("unknown query kind")
	}
	return nil
}

// String returns a string representation of the query
func (q Query) String() string {
	if q.Kind == KindCoords {
		return fmt.Sprintf("%.4f,%.4f", q.Lat, q.Lon)
	}
	return q.Name
}
