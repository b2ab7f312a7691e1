package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"weatherwidget.app/internal/adapters/external"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/ports"
)

// DependencyContainer builds and owns the adapters behind ApplicationPorts
type DependencyContainer struct {
	config     *config.Config
	ports      *ports.ApplicationPorts
	metrics    *infrastructure.PrometheusMetrics
	fileLogger *infrastructure.FileLoggerAdapter
}

// DependencyOverrides replaces adapters that tests cannot reach over the network
type DependencyOverrides struct {
	WeatherClient   ports.WeatherClient
	Geolocator      ports.Geolocator
	PreferenceStore ports.PreferenceStore
	Logger          ports.Logger
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	return NewDependencyContainerWithOverrides(cfg, DependencyOverrides{})
}

func NewDependencyContainerWithOverrides(cfg *config.Config, overrides DependencyOverrides) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if err := container.initializePorts(overrides); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(overrides DependencyOverrides) error {
	slog.Info("Initializing ports...")

	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)
	if overrides.Logger != nil {
		logger = overrides.Logger
	}

	c.metrics = infrastructure.NewPrometheusMetrics()

	weatherClient, err := c.buildWeatherClient(logger, overrides.WeatherClient)
	if err != nil {
		return fmt.Errorf("create weather client: %w", err)
	}

	geolocator := overrides.Geolocator
	if geolocator == nil {
		geolocator, err = external.NewGeolocator(&c.config.Geolocation, logger)
		if err != nil {
			return fmt.Errorf("create geolocator: %w", err)
		}
	}
	slog.Info("Geolocation initialized", "mode", c.config.Geolocation.Mode.String())

	store := overrides.PreferenceStore
	if store == nil {
		store, err = external.NewPreferenceStoreFactory().CreatePreferenceStore(&c.config.Preferences)
		if err != nil {
			slog.Error("Failed to create preference store", "error", err)
			return fmt.Errorf("create preference store: %w", err)
		}
	}
	slog.Info("Preference store initialized", "type", c.config.Preferences.Type.String())

	c.ports = &ports.ApplicationPorts{
		WeatherClient:   weatherClient,
		WeatherMetrics:  c.metrics,
		Geolocator:      geolocator,
		PreferenceStore: store,
		WidgetMetrics:   c.metrics,
		Logger:          logger,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// buildWeatherClient wraps the provider client with request logging and metrics
func (c *DependencyContainer) buildWeatherClient(logger ports.Logger, override ports.WeatherClient) (ports.WeatherClient, error) {
	client := override
	if client == nil {
		owm, err := external.NewOpenWeatherMapClient(external.OpenWeatherMapClientParams{
			APIKey:  c.config.Weather.APIKey,
			BaseURL: c.config.Weather.BaseURL,
			Logger:  logger,
		})
		if err != nil {
			return nil, err
		}
		client = owm
	}

	if c.config.Weather.EnableLogging {
		requestLogger := logger
		if c.config.Weather.LogFilePath != "" {
			fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
			if err != nil {
				slog.Warn("Failed to create file logger, falling back to slog", "error", err)
			} else {
				c.fileLogger = fileLogger
				requestLogger = infrastructure.NewMultiLogger(logger, fileLogger)
				slog.Info("File logging enabled", "path", c.config.Weather.LogFilePath)
			}
		}

		client = external.NewWeatherClientLoggingDecorator(client, requestLogger)
		slog.Info("Weather client logging enabled")
	}

	return external.NewWeatherClientMetricsDecorator(client, c.metrics), nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MetricsHandler serves the container's Prometheus registry
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return c.metrics.Handler()
}

// Cleanup releases the preference store and the request log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if c.ports != nil && c.ports.PreferenceStore != nil {
		if err := c.ports.PreferenceStore.Close(); err != nil {
			firstErr = fmt.Errorf("close preference store: %w", err)
		}
	}

	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close file logger: %w", err)
		}
	}

	return firstErr
}
