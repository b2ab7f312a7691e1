// Package widget holds the request/UI state machine of the weather widget.
//
// A single event loop (Controller.Run) owns the RequestState and the View.
// Network work runs as effects on separate goroutines and reports back by
// dispatching result events, so state is only ever touched by the loop.
package widget

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"weatherwidget.app/internal/core/forecast"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

// User-facing fetch failure messages
const (
	MessageCityNotFound        = "City not found. Please try again."
	MessageLocationUnavailable = "Could not fetch weather for your location."
	MessageInvalidResponse     = "Received an invalid response from the weather service. Please try again."
)

// DefaultTheme applies when no preference has been stored
const DefaultTheme = "day"

const eventBufferSize = 32

// Pipeline runs the fetch stages of a lookup cycle
type Pipeline interface {
	FetchCurrent(ctx context.Context, query location.Query) (*weather.CurrentConditions, error)
	FetchDailyForecast(ctx context.Context, lat, lon float64) (forecast.Daily, error)
}

// LocationResolver yields the startup query
type LocationResolver interface {
	ResolveDefault(ctx context.Context) location.Query
}

// ThemeStore persists the selected theme
type ThemeStore interface {
	SetTheme(ctx context.Context, theme string) error
}

// Renderer receives a copy of the view after every change
type Renderer interface {
	Render(view View)
}

// effect is deferred work started by a transition; its result is dispatched back
type effect func(ctx context.Context) Event

type Controller struct {
	pipeline   Pipeline
	resolver   LocationResolver
	themes     ThemeStore
	renderer   Renderer
	presenter  *Presenter
	metrics    ports.WidgetMetrics
	logger     ports.Logger
	newCycleID func() string

	events   chan Event
	done     chan struct{}
	inflight sync.WaitGroup

	// owned by the Run goroutine
	state   RequestState
	view    View
	cycleID string
}

type ControllerDependencies struct {
	Pipeline     Pipeline
	Resolver     LocationResolver
	Themes       ThemeStore
	Renderer     Renderer
	Metrics      ports.WidgetMetrics
	Logger       ports.Logger
	IconBaseURL  string
	InitialTheme string
}

func NewController(deps ControllerDependencies) (*Controller, error) {
	if deps.Pipeline == nil {
		return nil, errors.NewValidationError("pipeline is required")
	}
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("location resolver is required")
	}
	if deps.Themes == nil {
		return nil, errors.NewValidationError("theme store is required")
	}
	if deps.Renderer == nil {
		return nil, errors.NewValidationError("renderer is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	metrics := deps.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	theme := deps.InitialTheme
	if !validation.IsThemeTag(theme) {
		theme = DefaultTheme
	}

	c := &Controller{
		pipeline:   deps.Pipeline,
		resolver:   deps.Resolver,
		themes:     deps.Themes,
		renderer:   deps.Renderer,
		presenter:  NewPresenter(deps.IconBaseURL),
		metrics:    metrics,
		logger:     deps.Logger,
		newCycleID: uuid.NewString,
		events:     make(chan Event, eventBufferSize),
		done:       make(chan struct{}),
		state:      idle(),
	}
	c.view = View{Status: c.state.Status.String(), Theme: theme}

	return c, nil
}

// Run processes events until ctx is cancelled. It must be called once.
func (c *Controller) Run(ctx context.Context) error {
	defer func() {
		close(c.done)
		c.inflight.Wait()
	}()

	c.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-c.events:
			for _, eff := range c.handle(ev) {
				c.launch(ctx, eff)
			}
		}
	}
}

// Dispatch queues an event for the loop. It returns false once Run has stopped.
func (c *Controller) Dispatch(ev Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}

// Start queues the startup lookup
func (c *Controller) Start() bool {
	return c.Dispatch(Startup{})
}

// Submit queues a search for the raw input text
func (c *Controller) Submit(input string) bool {
	return c.Dispatch(SubmitQuery{Input: input})
}

// ChangeTheme queues a theme change
func (c *Controller) ChangeTheme(theme string) bool {
	return c.Dispatch(ThemeChanged{Theme: theme})
}

func (c *Controller) launch(ctx context.Context, eff effect) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		if ev := eff(ctx); ev != nil {
			c.Dispatch(ev)
		}
	}()
}

func (c *Controller) handle(ev Event) []effect {
	switch e := ev.(type) {
	case Startup:
		return c.onStartup()
	case SubmitQuery:
		return c.onSubmit(e)
	case LocationResolved:
		return c.onLocationResolved(e)
	case CurrentLoaded:
		return c.onCurrentLoaded(e)
	case CurrentFailed:
		c.onCurrentFailed(e)
	case ForecastLoaded:
		c.onForecastLoaded(e)
	case ForecastFailed:
		c.onForecastFailed(e)
	case ThemeChanged:
		return c.onThemeChanged(e)
	case themeSaved:
		c.onThemeSaved(e)
	default:
		c.logger.Warn("Unknown widget event", ports.F("event", ev.eventName()))
	}
	return nil
}

func (c *Controller) onStartup() []effect {
	if c.state.Status == StatusLoading {
		c.logger.Debug("Startup ignored while a request is in flight")
		return nil
	}

	cycle := c.beginCycle()
	c.resetPanels()
	c.transition(loading())
	c.render()

	return []effect{c.resolveEffect(cycle)}
}

func (c *Controller) onSubmit(e SubmitQuery) []effect {
	if c.state.Status == StatusLoading {
		c.logger.Debug("Search ignored while a request is in flight",
			ports.F("cycle_id", c.cycleID))
		return nil
	}

	c.resetPanels()
	c.view.InputValue = e.Input

	city, err := location.ValidateCity(e.Input)
	if err != nil {
		c.logger.Debug("Search rejected",
			ports.F("code", string(errors.CodeOf(err))))
		c.showError(validationMessage(err))
		return nil
	}

	cycle := c.beginCycle()
	query := location.NewCityQuery(city)
	c.transition(loading())
	c.render()

	return []effect{c.fetchCurrentEffect(cycle, query)}
}

func (c *Controller) onLocationResolved(e LocationResolved) []effect {
	c.logger.Debug("Startup location resolved",
		ports.F("cycle_id", e.CycleID),
		ports.F("kind", e.Query.Kind.String()))
	return []effect{c.fetchCurrentEffect(e.CycleID, e.Query)}
}

func (c *Controller) onCurrentLoaded(e CurrentLoaded) []effect {
	c.transition(succeeded(e.Conditions))
	c.view.ResultVisible = true
	c.view.Result = c.presenter.ResultCard(e.Conditions)
	if e.Query.Kind == location.KindCoords {
		c.view.InputValue = e.Conditions.City
	}
	c.render()

	// the provider may resolve a typed name to another canonical place, so the
	// forecast follows the returned coordinates, not the query
	return []effect{c.fetchForecastEffect(e.CycleID, e.Conditions.Lat, e.Conditions.Lon)}
}

func (c *Controller) onCurrentFailed(e CurrentFailed) {
	c.logger.Error("Current conditions fetch failed",
		ports.F("cycle_id", e.CycleID),
		ports.F("query", e.Query.String()),
		ports.F("code", string(errors.CodeOf(e.Err))),
		ports.F("error", e.Err.Error()))
	c.showError(failureMessage(e.Err, e.Query))
}

func (c *Controller) onForecastLoaded(e ForecastLoaded) {
	if e.CycleID != c.cycleID {
		c.logger.Debug("Applying forecast from an earlier cycle",
			ports.F("cycle_id", e.CycleID),
			ports.F("current_cycle_id", c.cycleID))
	}

	c.view.ForecastVisible = true
	c.view.Forecast = c.presenter.ForecastCards(e.Daily)
	c.render()
}

func (c *Controller) onForecastFailed(e ForecastFailed) {
	c.logger.Warn("Forecast fetch failed",
		ports.F("cycle_id", e.CycleID),
		ports.F("error", e.Err.Error()))
}

func (c *Controller) onThemeChanged(e ThemeChanged) []effect {
	if !validation.IsThemeTag(e.Theme) {
		c.logger.Warn("Ignoring invalid theme", ports.F("theme", e.Theme))
		return nil
	}

	c.view.Theme = e.Theme
	c.render()

	theme := e.Theme
	return []effect{func(ctx context.Context) Event {
		return themeSaved{Theme: theme, Err: c.themes.SetTheme(ctx, theme)}
	}}
}

func (c *Controller) onThemeSaved(e themeSaved) {
	if e.Err != nil {
		c.logger.Warn("Failed to persist theme",
			ports.F("theme", e.Theme),
			ports.F("error", e.Err.Error()))
	}
}

func (c *Controller) resolveEffect(cycle string) effect {
	return func(ctx context.Context) Event {
		return LocationResolved{CycleID: cycle, Query: c.resolver.ResolveDefault(ctx)}
	}
}

func (c *Controller) fetchCurrentEffect(cycle string, query location.Query) effect {
	return func(ctx context.Context) Event {
		conditions, err := c.pipeline.FetchCurrent(ctx, query)
		if err != nil {
			return CurrentFailed{CycleID: cycle, Query: query, Err: err}
		}
		return CurrentLoaded{CycleID: cycle, Query: query, Conditions: conditions}
	}
}

func (c *Controller) fetchForecastEffect(cycle string, lat, lon float64) effect {
	return func(ctx context.Context) Event {
		daily, err := c.pipeline.FetchDailyForecast(ctx, lat, lon)
		if err != nil {
			return ForecastFailed{CycleID: cycle, Err: err}
		}
		return ForecastLoaded{CycleID: cycle, Daily: daily}
	}
}

func (c *Controller) beginCycle() string {
	c.cycleID = c.newCycleID()
	return c.cycleID
}

func (c *Controller) transition(next RequestState) {
	from := c.state.Status
	c.state = next

	c.metrics.RecordTransition(from.String(), next.Status.String())
	c.logger.Debug("Widget state changed",
		ports.F("cycle_id", c.cycleID),
		ports.F("from", from.String()),
		ports.F("to", next.Status.String()))
}

func (c *Controller) showError(message string) {
	c.transition(failed(message))
	c.view.ResultVisible = false
	c.view.ForecastVisible = false
	c.render()
}

func (c *Controller) resetPanels() {
	c.view.ErrorVisible = false
	c.view.ErrorMessage = ""
	c.view.ResultVisible = false
	c.view.Result = nil
	c.view.ForecastVisible = false
	c.view.Forecast = nil
}

func (c *Controller) render() {
	c.view.Status = c.state.Status.String()
	c.view.CycleID = c.cycleID
	c.view.Busy = c.state.Status == StatusLoading
	c.view.SubmitDisabled = c.view.Busy
	c.view.ErrorVisible = c.state.Status == StatusError
	c.view.ErrorMessage = c.state.Message

	snapshot := c.view
	if c.view.Forecast != nil {
		snapshot.Forecast = append([]ForecastCard(nil), c.view.Forecast...)
	}
	c.renderer.Render(snapshot)
}

func validationMessage(err error) string {
	if appErr, ok := errors.As(err); ok {
		return appErr.Message
	}
	return err.Error()
}

func failureMessage(err error, query location.Query) string {
	if errors.CodeOf(err) == errors.CodeDecodeFailure {
		return MessageInvalidResponse
	}
	if query.Kind == location.KindCoords {
		return MessageLocationUnavailable
	}
	return MessageCityNotFound
}

type noopMetrics struct{}

func (noopMetrics) RecordTransition(string, string) {}
