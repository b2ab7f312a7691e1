package external

import (
	"context"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// WeatherClientLoggingDecorator decorates the weather client with structured request logging
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for the weather client
func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) ports.WeatherClient {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// FetchCurrentByCity wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchCurrentByCity(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	target := ports.F("city", city)
	d.logRequest(operationCurrentByCity, target)

	startTime := time.Now()
	data, err := d.client.FetchCurrentByCity(ctx, city)
	return d.logCurrent(operationCurrentByCity, target, startTime, data, err)
}

// FetchCurrentByCoords wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchCurrentByCoords(ctx context.Context, lat, lon float64) (*ports.CurrentWeatherData, error) {
	target := ports.F("coords", coordsLabel(lat, lon))
	d.logRequest(operationCurrentByCoords, target)

	startTime := time.Now()
	data, err := d.client.FetchCurrentByCoords(ctx, lat, lon)
	return d.logCurrent(operationCurrentByCoords, target, startTime, data, err)
}

// FetchForecast wraps the client call with structured logging
func (d *WeatherClientLoggingDecorator) FetchForecast(ctx context.Context, lat, lon float64) ([]ports.ForecastSampleData, error) {
	target := ports.F("coords", coordsLabel(lat, lon))
	d.logRequest(operationForecast, target)

	startTime := time.Now()
	samples, err := d.client.FetchForecast(ctx, lat, lon)
	duration := time.Since(startTime)

	if err != nil {
		d.logError(operationForecast, target, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("operation", operationForecast),
		target,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("samples", len(samples)))

	return samples, nil
}

func (d *WeatherClientLoggingDecorator) logRequest(operation string, target ports.Field) {
	d.logger.Info("Weather API request started",
		ports.F("operation", operation),
		target,
		ports.F("event", "request"))
}

func (d *WeatherClientLoggingDecorator) logCurrent(operation string, target ports.Field, startTime time.Time, data *ports.CurrentWeatherData, err error) (*ports.CurrentWeatherData, error) {
	duration := time.Since(startTime)
	if err != nil {
		d.logError(operation, target, duration, err)
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("operation", operation),
		target,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("city", data.City),
		ports.F("temperature", data.Temperature),
		ports.F("description", data.Description))

	return data, nil
}

func (d *WeatherClientLoggingDecorator) logError(operation string, target ports.Field, duration time.Duration, err error) {
	d.logger.Error("Weather API request failed",
		ports.F("operation", operation),
		target,
		ports.F("event", "error"),
		ports.F("code", string(errors.CodeOf(err))),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("error", err.Error()))
}
