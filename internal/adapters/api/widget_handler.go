package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// SearchRequest carries the raw contents of the search box.
// Every city, empty or oversized, is forwarded so the controller can report it.
type SearchRequest struct {
	City string `form:"city" json:"city"`
}

// ThemeRequest selects the page theme
type ThemeRequest struct {
	Theme string `form:"theme" json:"theme" binding:"required,theme"`
}

// AcceptedResponse acknowledges an event queued for the widget
type AcceptedResponse struct {
	Accepted bool   `json:"accepted"`
	Status   string `json:"status"`
}

// HealthResponse aggregates component checks
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

var errWidgetStopped = errors.NewExternalAPIError("widget is not running", nil)

// getPage handles GET / requests
func (s *HTTPServerAdapter) getPage(c *gin.Context) {
	c.HTML(http.StatusOK, pageName, pageData{View: s.views.Current(), Themes: Themes})
}

// postSearchForm handles POST /search from the page form
func (s *HTTPServerAdapter) postSearchForm(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Invalid search form", "error", err)
		s.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	if !s.controller.Submit(req.City) {
		s.handleError(c, errWidgetStopped)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// postThemeForm handles POST /theme from the page form
func (s *HTTPServerAdapter) postThemeForm(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Debug("Invalid theme form", "error", err)
		s.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	if !s.controller.ChangeTheme(req.Theme) {
		s.handleError(c, errWidgetStopped)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// getState handles GET /api/state requests
func (s *HTTPServerAdapter) getState(c *gin.Context) {
	c.JSON(http.StatusOK, s.views.Current())
}

// postSearch handles POST /api/search requests
func (s *HTTPServerAdapter) postSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Invalid search request", "error", err)
		s.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	slog.Debug("Queueing search", "city", req.City)
	if !s.controller.Submit(req.City) {
		s.handleError(c, errWidgetStopped)
		return
	}

	c.JSON(http.StatusAccepted, AcceptedResponse{Accepted: true, Status: s.views.Current().Status})
}

// postTheme handles POST /api/theme requests
func (s *HTTPServerAdapter) postTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Invalid theme request", "error", err)
		s.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	if !s.controller.ChangeTheme(req.Theme) {
		s.handleError(c, errWidgetStopped)
		return
	}

	c.JSON(http.StatusAccepted, AcceptedResponse{Accepted: true, Status: s.views.Current().Status})
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: results}
	statusCode := http.StatusOK
	for _, result := range results {
		if result.Status != "healthy" {
			response.Status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(statusCode, response)
}
