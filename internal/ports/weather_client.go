package ports

import (
	"context"
	"time"
)

// CurrentWeatherData is the normalized current-conditions payload of one provider response
type CurrentWeatherData struct {
	City        string
	Country     string
	Lat         float64
	Lon         float64
	Temperature float64
	FeelsLike   float64
	Humidity    float64
	WindSpeed   float64
	Pressure    float64
	Visibility  float64
	Cloudiness  float64
	Description string
	Icon        string
}

// ForecastSampleData is one 3-hourly slot of the provider forecast series
type ForecastSampleData struct {
	Time        time.Time
	TempMin     float64
	TempMax     float64
	Description string
	Icon        string
}

// WeatherClient defines the contract for the weather provider calls.
// Each method issues exactly one outbound request.
type WeatherClient interface {
	FetchCurrentByCity(ctx context.Context, city string) (*CurrentWeatherData, error)
	FetchCurrentByCoords(ctx context.Context, lat, lon float64) (*CurrentWeatherData, error)
	FetchForecast(ctx context.Context, lat, lon float64) ([]ForecastSampleData, error)
}

// WeatherMetrics defines the contract for recording provider call outcomes
type WeatherMetrics interface {
	RecordFetch(operation string, outcome string, duration time.Duration)
}
