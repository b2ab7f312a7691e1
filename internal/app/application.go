package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/adapters/api"
	"weatherwidget.app/internal/adapters/infrastructure"
	"weatherwidget.app/internal/config"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/core/preference"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/core/widget"
	"weatherwidget.app/internal/ports"
)

const startupThemeTimeout = 5 * time.Second

type Application struct {
	config *config.Config

	// Use Cases
	weatherUseCase    *weather.UseCase
	preferenceUseCase *preference.UseCase
	resolver          *location.Resolver
	controller        *widget.Controller

	// Adapters
	views         *api.ViewStore
	healthChecker *infrastructure.SystemHealthChecker
	httpServer    *http.Server
	router        *gin.Engine

	// Infrastructure
	deps *DependencyContainer
	// controller loop lifecycle
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
	stopOnce   sync.Once
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	return NewApplicationWithDependencies(cfg, deps)
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config:   cfg,
		deps:     deps,
		loopDone: make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) appPorts() *ports.ApplicationPorts {
	return a.deps.ApplicationPorts()
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	tz, err := a.config.Weather.Location()
	if err != nil {
		return fmt.Errorf("load widget timezone: %w", err)
	}

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherClient: a.appPorts().WeatherClient,
		Logger:        a.appPorts().Logger,
		Timezone:      tz,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	a.resolver = location.NewResolver(location.ResolverDependencies{
		Geolocator:   a.appPorts().Geolocator,
		FallbackCity: a.config.Weather.FallbackCity,
		Logger:       a.appPorts().Logger,
	})

	preferenceUseCase, err := preference.NewUseCase(preference.UseCaseDependencies{
		Store:        a.appPorts().PreferenceStore,
		Logger:       a.appPorts().Logger,
		DefaultTheme: a.config.Weather.DefaultTheme,
	})
	if err != nil {
		return fmt.Errorf("create preference use case: %w", err)
	}
	a.preferenceUseCase = preferenceUseCase

	a.views = api.NewViewStore()

	controller, err := widget.NewController(widget.ControllerDependencies{
		Pipeline:     a.weatherUseCase,
		Resolver:     a.resolver,
		Themes:       a.preferenceUseCase,
		Renderer:     a.views,
		Metrics:      a.appPorts().WidgetMetrics,
		Logger:       a.appPorts().Logger,
		IconBaseURL:  a.config.Weather.IconBaseURL,
		InitialTheme: a.initialTheme(),
	})
	if err != nil {
		return fmt.Errorf("create widget controller: %w", err)
	}
	a.controller = controller

	slog.Info("Use cases initialized successfully")
	return nil
}

// initialTheme reads the stored theme; a failing store falls back to the default
func (a *Application) initialTheme() string {
	ctx, cancel := context.WithTimeout(context.Background(), startupThemeTimeout)
	defer cancel()

	theme, err := a.preferenceUseCase.GetTheme(ctx)
	if err != nil {
		slog.Warn("Failed to load stored theme, using default", "error", err)
		return a.preferenceUseCase.DefaultTheme()
	}
	return theme
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	a.healthChecker = infrastructure.NewSystemHealthChecker(map[string]ports.HealthChecker{
		"preferences": infrastructure.NewPreferenceStoreHealthChecker(
			a.appPorts().PreferenceStore, a.config.Preferences.Type.String()),
		"weather": infrastructure.NewWeatherClientHealthChecker(
			a.appPorts().WeatherClient, a.config.Weather.BaseURL),
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		Controller:     a.controller,
		Views:          a.views,
		MetricsHandler: a.deps.MetricsHandler(),
		HealthChecker:  a.healthChecker,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         httpAdapter.Addr(),
		Handler:      httpAdapter.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// StartWidget launches the controller loop and queues the startup lookup
func (a *Application) StartWidget(ctx context.Context) {
	loopCtx, cancel := context.WithCancel(ctx)
	a.cancelLoop = cancel

	go func() {
		defer close(a.loopDone)
		if err := a.controller.Run(loopCtx); err != nil && err != context.Canceled {
			slog.Warn("Widget loop stopped", "error", err)
		}
	}()

	a.controller.Start()
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	results := a.healthChecker.CheckAll(ctx)
	if !infrastructure.IsHealthy(results) {
		slog.Warn("Starting with unhealthy components", "components", results)
	}

	a.StartWidget(ctx)

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.stopWidget(ctx)

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

func (a *Application) stopWidget(ctx context.Context) {
	a.stopOnce.Do(func() {
		if a.cancelLoop == nil {
			return
		}
		a.cancelLoop()

		select {
		case <-a.loopDone:
		case <-ctx.Done():
			slog.Warn("Timed out waiting for widget loop to stop")
		}
	})
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Views returns the latest rendered widget state
func (a *Application) Views() *api.ViewStore {
	return a.views
}
