package infrastructure

import (
	"context"

	"weatherwidget.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// PreferenceStoreHealthChecker pings the theme preference store
type PreferenceStoreHealthChecker struct {
	store     ports.PreferenceStore
	storeType string
}

func NewPreferenceStoreHealthChecker(store ports.PreferenceStore, storeType string) *PreferenceStoreHealthChecker {
	return &PreferenceStoreHealthChecker{store: store, storeType: storeType}
}

// Check verifies preference store connectivity
func (p *PreferenceStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "preferences",
		Details:   map[string]interface{}{"type": p.storeType},
	}

	if p.store == nil {
		status.Status = statusUnhealthy
		status.Error = "preference store is not configured"
		return status
	}

	if err := p.store.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	return status
}

// WeatherClientHealthChecker reports the weather client wiring.
// It does not call the provider; the API key is billed per request.
type WeatherClientHealthChecker struct {
	client  ports.WeatherClient
	baseURL string
}

func NewWeatherClientHealthChecker(client ports.WeatherClient, baseURL string) *WeatherClientHealthChecker {
	return &WeatherClientHealthChecker{client: client, baseURL: baseURL}
}

// Check verifies the weather client is available
func (w *WeatherClientHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"base_url":   w.baseURL,
			"configured": true,
		},
	}

	if w.client == nil {
		status.Status = statusUnhealthy
		status.Error = "weather client is not available"
		status.Details["configured"] = false
	}

	return status
}

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker keyed by component name
func NewSystemHealthChecker(checkers map[string]ports.HealthChecker) *SystemHealthChecker {
	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for name, checker := range s.checkers {
		if checker == nil {
			continue
		}
		results[name] = checker.Check(ctx)
	}
	return results
}

// IsHealthy reports whether every status in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != statusHealthy {
			return false
		}
	}
	return true
}
