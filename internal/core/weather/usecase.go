package weather

import (
	"context"
	"fmt"
	"time"

	"weatherwidget.app/internal/core/forecast"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// UseCase runs the fetch stages of a lookup cycle: fetchCurrent, then
// fetchForecast followed by aggregate.
type UseCase struct {
	client   ports.WeatherClient
	logger   ports.Logger
	timezone *time.Location
}

type UseCaseDependencies struct {
	WeatherClient ports.WeatherClient
	Logger        ports.Logger
	// Timezone fixes the calendar used for forecast day buckets
	Timezone *time.Location
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherClient == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	tz := deps.Timezone
	if tz == nil {
		tz = time.Local
	}

	return &UseCase{
		client:   deps.WeatherClient,
		logger:   deps.Logger,
		timezone: tz,
	}, nil
}

// FetchCurrent retrieves current conditions for a city or coordinate query.
// The result is all-or-nothing: an incomplete payload is reported as a decode failure.
func (uc *UseCase) FetchCurrent(ctx context.Context, query location.Query) (*CurrentConditions, error) {
	if err := query.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid location query: " + err.Error())
	}

	uc.logger.Debug("Fetching current conditions",
		ports.F("kind", query.Kind.String()),
		ports.F("query", query.String()))

	var (
		data *ports.CurrentWeatherData
		err  error
	)
	switch query.Kind {
	case location.KindCity:
		data, err = uc.client.FetchCurrentByCity(ctx, query.Name)
	case location.KindCoords:
		data, err = uc.client.FetchCurrentByCoords(ctx, query.Lat, query.Lon)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch current conditions for %s: %w", query.String(), uc.normalizeError(err))
	}

	conditions := convertFromPortsWeather(data)
	if err := conditions.IsValid(); err != nil {
		return nil, errors.NewDecodeError("incomplete current conditions from provider: "+err.Error(), nil)
	}

	uc.logger.Debug("Current conditions retrieved",
		ports.F("city", conditions.City),
		ports.F("temperature", conditions.Temperature))
	return conditions, nil
}

// FetchDailyForecast retrieves the forecast series for the provider-resolved
// coordinates and reduces it to one sample per day.
func (uc *UseCase) FetchDailyForecast(ctx context.Context, lat, lon float64) (forecast.Daily, error) {
	samples, err := uc.client.FetchForecast(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("fetch forecast for %.4f,%.4f: %w", lat, lon, uc.normalizeError(err))
	}

	daily := forecast.Aggregate(uc.toSamples(samples))

	uc.logger.Debug("Forecast aggregated",
		ports.F("samples", len(samples)),
		ports.F("days", len(daily)))
	return daily, nil
}

// Timezone returns the calendar zone used for day buckets
func (uc *UseCase) Timezone() *time.Location {
	return uc.timezone
}

func (uc *UseCase) toSamples(data []ports.ForecastSampleData) []forecast.Sample {
	samples := make([]forecast.Sample, 0, len(data))
	for _, d := range data {
		samples = append(samples, forecast.Sample{
			Time:        d.Time,
			DayKey:      forecast.DayKey(d.Time, uc.timezone),
			TempMin:     d.TempMin,
			TempMax:     d.TempMax,
			Description: d.Description,
			Icon:        d.Icon,
		})
	}
	return samples
}

// normalizeError keeps typed client errors and wraps anything else as unreachable
func (uc *UseCase) normalizeError(err error) error {
	if _, ok := errors.As(err); ok {
		return err
	}
	return errors.NewExternalAPIError("weather client failed", err)
}

func convertFromPortsWeather(data *ports.CurrentWeatherData) *CurrentConditions {
	if data == nil {
		return &CurrentConditions{}
	}
	return &CurrentConditions{
		City:        data.City,
		Country:     data.Country,
		Lat:         data.Lat,
		Lon:         data.Lon,
		Temperature: data.Temperature,
		FeelsLike:   data.FeelsLike,
		Humidity:    data.Humidity,
		WindSpeed:   data.WindSpeed,
		Pressure:    data.Pressure,
		Visibility:  data.Visibility,
		Cloudiness:  data.Cloudiness,
		Description: data.Description,
		Icon:        data.Icon,
	}
}
