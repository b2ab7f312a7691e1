package widget

import (
	"weatherwidget.app/internal/core/forecast"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/core/weather"
)

// Event is a message dispatched into the controller. The triggering source
// (button click, Enter key, app startup) does not matter to the controller.
type Event interface {
	eventName() string
}

// Startup loads weather for the device position, or the fallback city
type Startup struct{}

// SubmitQuery carries the raw text of the city input
type SubmitQuery struct {
	Input string
}

// ThemeChanged selects a new theme tag
type ThemeChanged struct {
	Theme string
}

// LocationResolved is posted once the startup query is known
type LocationResolved struct {
	CycleID string
	Query   location.Query
}

// CurrentLoaded is posted when the current-conditions fetch succeeds
type CurrentLoaded struct {
	CycleID    string
	Query      location.Query
	Conditions *weather.CurrentConditions
}

// CurrentFailed is posted when the current-conditions fetch fails
type CurrentFailed struct {
	CycleID string
	Query   location.Query
	Err     error
}

// ForecastLoaded is posted when the follow-up forecast fetch succeeds
type ForecastLoaded struct {
	CycleID string
	Daily   forecast.Daily
}

// ForecastFailed is posted when the follow-up forecast fetch fails
type ForecastFailed struct {
	CycleID string
	Err     error
}

// themeSaved reports the outcome of persisting a theme
type themeSaved struct {
	Theme string
	Err   error
}

func (Startup) eventName() string          { return "startup" }
func (SubmitQuery) eventName() string      { return "submit_query" }
func (ThemeChanged) eventName() string     { return "theme_changed" }
func (LocationResolved) eventName() string { return "location_resolved" }
func (CurrentLoaded) eventName() string    { return "current_loaded" }
func (CurrentFailed) eventName() string    { return "current_failed" }
func (ForecastLoaded) eventName() string   { return "forecast_loaded" }
func (ForecastFailed) eventName() string   { return "forecast_failed" }
func (themeSaved) eventName() string       { return "theme_saved" }
