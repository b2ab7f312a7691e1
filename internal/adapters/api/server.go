// Package api hosts the widget page and its JSON state endpoints.
// Handlers translate HTTP input into controller events and render the latest view.
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// WidgetController is the input side of the widget event loop
type WidgetController interface {
	Submit(input string) bool
	ChangeTheme(theme string) bool
}

// HTTPServerAdapter implements the widget host using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	controller     WidgetController
	views          *ViewStore
	metricsHandler http.Handler
	healthChecker  ports.SystemHealthChecker
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	Controller     WidgetController
	Views          *ViewStore
	MetricsHandler http.Handler
	HealthChecker  ports.SystemHealthChecker
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.Default()
	router.SetHTMLTemplate(pageTemplate)

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		controller:     opts.Controller,
		views:          opts.Views,
		metricsHandler: opts.MetricsHandler,
		healthChecker:  opts.HealthChecker,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Controller == nil {
		return errors.NewValidationError("widget controller is required")
	}
	if opts.Views == nil {
		return errors.NewValidationError("view store is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/", s.getPage)
	s.router.POST("/search", s.postSearchForm)
	s.router.POST("/theme", s.postThemeForm)

	api := s.router.Group("/api")
	{
		api.GET("/state", s.getState)
		api.POST("/search", s.postSearch)
		api.POST("/theme", s.postTheme)
	}

	s.router.GET("/health", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Handler exposes the router for http.Server
func (s *HTTPServerAdapter) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address
func (s *HTTPServerAdapter) Addr() string {
	return fmt.Sprintf(":%d", s.config.Port)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
