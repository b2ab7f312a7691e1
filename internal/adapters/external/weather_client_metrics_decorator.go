package external

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// Operation labels shared by the client decorators
const (
	operationCurrentByCity   = "current_by_city"
	operationCurrentByCoords = "current_by_coords"
	operationForecast        = "forecast"
)

const outcomeSuccess = "success"

// WeatherClientMetricsDecorator records the outcome and latency of every client call
type WeatherClientMetricsDecorator struct {
	client  ports.WeatherClient
	metrics ports.WeatherMetrics
}

// NewWeatherClientMetricsDecorator creates a new metrics decorator for the weather client
func NewWeatherClientMetricsDecorator(client ports.WeatherClient, metrics ports.WeatherMetrics) ports.WeatherClient {
	return &WeatherClientMetricsDecorator{
		client:  client,
		metrics: metrics,
	}
}

func (d *WeatherClientMetricsDecorator) FetchCurrentByCity(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	start := time.Now()
	data, err := d.client.FetchCurrentByCity(ctx, city)
	d.metrics.RecordFetch(operationCurrentByCity, outcomeOf(err), time.Since(start))
	return data, err
}

func (d *WeatherClientMetricsDecorator) FetchCurrentByCoords(ctx context.Context, lat, lon float64) (*ports.CurrentWeatherData, error) {
	start := time.Now()
	data, err := d.client.FetchCurrentByCoords(ctx, lat, lon)
	d.metrics.RecordFetch(operationCurrentByCoords, outcomeOf(err), time.Since(start))
	return data, err
}

func (d *WeatherClientMetricsDecorator) FetchForecast(ctx context.Context, lat, lon float64) ([]ports.ForecastSampleData, error) {
	start := time.Now()
	samples, err := d.client.FetchForecast(ctx, lat, lon)
	d.metrics.RecordFetch(operationForecast, outcomeOf(err), time.Since(start))
	return samples, err
}

// outcomeOf maps an error to a low-cardinality metric label
func outcomeOf(err error) string {
	if err == nil {
		return outcomeSuccess
	}
	if code := errors.CodeOf(err); code != errors.CodeNone {
		return strings.ToLower(string(code))
	}
	return "error"
}

func coordsLabel(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}
