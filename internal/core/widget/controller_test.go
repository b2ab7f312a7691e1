package widget

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/core/weather"
	"weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

type recordingRenderer struct {
	mu    sync.Mutex
	views []View
}

func (r *recordingRenderer) Render(view View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, view)
}

func (r *recordingRenderer) last() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.views) == 0 {
		return View{}
	}
	return r.views[len(r.views)-1]
}

func (r *recordingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

type recordingThemes struct {
	mu     sync.Mutex
	saved  []string
	failOn string
}

func (s *recordingThemes) SetTheme(_ context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if theme == s.failOn {
		return fmt.Errorf("store unavailable")
	}
	s.saved = append(s.saved, theme)
	return nil
}

type recordingMetrics struct {
	transitions []string
}

func (m *recordingMetrics) RecordTransition(from, to string) {
	m.transitions = append(m.transitions, from+"->"+to)
}

type controllerFixture struct {
	controller *Controller
	client     *mocks.WeatherClient
	geolocator *mocks.Geolocator
	renderer   *recordingRenderer
	themes     *recordingThemes
	metrics    *recordingMetrics
}

func newControllerFixture(t *testing.T, withGeolocator bool) *controllerFixture {
	t.Helper()

	logger := mocks.NewPermissiveLogger(t)
	client := mocks.NewWeatherClient(t)

	uc, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherClient: client,
		Logger:        logger,
		Timezone:      time.UTC,
	})
	require.NoError(t, err)

	f := &controllerFixture{
		client:   client,
		renderer: &recordingRenderer{},
		themes:   &recordingThemes{},
		metrics:  &recordingMetrics{},
	}

	resolverDeps := location.ResolverDependencies{Logger: logger}
	if withGeolocator {
		f.geolocator = mocks.NewGeolocator(t)
		resolverDeps.Geolocator = f.geolocator
	}

	f.controller, err = NewController(ControllerDependencies{
		Pipeline: uc,
		Resolver: location.NewResolver(resolverDeps),
		Themes:   f.themes,
		Renderer: f.renderer,
		Metrics:  f.metrics,
		Logger:   logger,
	})
	require.NoError(t, err)

	cycle := 0
	f.controller.newCycleID = func() string {
		cycle++
		return fmt.Sprintf("cycle-%d", cycle)
	}

	return f
}

// drive handles ev and runs every resulting effect synchronously until the chain settles
func drive(c *Controller, ev Event) {
	queue := []Event{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, eff := range c.handle(next) {
			if res := eff(context.Background()); res != nil {
				queue = append(queue, res)
			}
		}
	}
}

func parisWeather() *ports.CurrentWeatherData {
	return &ports.CurrentWeatherData{
		City:        "Paris",
		Country:     "FR",
		Lat:         48.8534,
		Lon:         2.3488,
		Temperature: 18.4,
		FeelsLike:   17.6,
		Humidity:    72,
		WindSpeed:   4.1,
		Pressure:    1015,
		Visibility:  10000,
		Cloudiness:  40,
		Description: "scattered clouds",
		Icon:        "03d",
	}
}

// thirteenSamples spans Mar 10 to Mar 14 at 9-hour steps
func thirteenSamples() []ports.ForecastSampleData {
	start := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	samples := make([]ports.ForecastSampleData, 0, 13)
	for i := 0; i < 13; i++ {
		samples = append(samples, ports.ForecastSampleData{
			Time:        start.Add(time.Duration(i*9) * time.Hour),
			TempMin:     float64(i) - 5,
			TempMax:     float64(i),
			Description: "light rain",
			Icon:        "10d",
		})
	}
	return samples
}

func TestController_SubmitEmptyInput(t *testing.T) {
	f := newControllerFixture(t, false)

	drive(f.controller, SubmitQuery{Input: "  "})

	assert.Equal(t, StatusError, f.controller.state.Status)
	assert.Equal(t, location.MessageEmptyInput, f.controller.state.Message)
	assert.Equal(t, []string{"idle->error"}, f.metrics.transitions)

	view := f.renderer.last()
	assert.True(t, view.ErrorVisible)
	assert.Equal(t, location.MessageEmptyInput, view.ErrorMessage)
	assert.False(t, view.Busy)
	assert.False(t, view.ResultVisible)
	f.client.AssertNotCalled(t, "FetchCurrentByCity", mock.Anything, mock.Anything)
}

func TestController_SubmitInvalidCharacters(t *testing.T) {
	f := newControllerFixture(t, false)

	drive(f.controller, SubmitQuery{Input: "NYC123"})

	assert.Equal(t, StatusError, f.controller.state.Status)
	assert.Equal(t, location.MessageInvalidCharacters, f.controller.state.Message)
	assert.Equal(t, "NYC123", f.renderer.last().InputValue)
	f.client.AssertNotCalled(t, "FetchCurrentByCity", mock.Anything, mock.Anything)
}

func TestController_SubmitLongInvalidInput(t *testing.T) {
	f := newControllerFixture(t, false)
	input := strings.Repeat("a", 150) + strings.Repeat("1", 51)

	drive(f.controller, SubmitQuery{Input: input})

	assert.Equal(t, StatusError, f.controller.state.Status)
	assert.Equal(t, location.MessageInvalidCharacters, f.controller.state.Message)
	assert.True(t, f.renderer.last().ErrorVisible)
	f.client.AssertNotCalled(t, "FetchCurrentByCity", mock.Anything, mock.Anything)
}

func TestController_SubmitValidCity(t *testing.T) {
	f := newControllerFixture(t, false)

	f.client.EXPECT().FetchCurrentByCity(mock.Anything, "Paris").Return(parisWeather(), nil).Once()
	f.client.EXPECT().FetchForecast(mock.Anything, 48.8534, 2.3488).Return(thirteenSamples(), nil).Once()

	drive(f.controller, SubmitQuery{Input: "  Paris "})

	require.Equal(t, StatusSuccess, f.controller.state.Status)
	assert.Equal(t, "Paris", f.controller.state.Conditions.City)
	assert.Equal(t, []string{"idle->loading", "loading->success"}, f.metrics.transitions)

	view := f.renderer.last()
	assert.False(t, view.Busy)
	assert.False(t, view.SubmitDisabled)
	assert.False(t, view.ErrorVisible)
	assert.True(t, view.ResultVisible)
	require.NotNil(t, view.Result)
	assert.Equal(t, "Paris, FR", view.Result.Location)
	assert.Equal(t, "18°C", view.Result.Temperature)
	assert.Equal(t, "cycle-1", view.CycleID)

	require.True(t, view.ForecastVisible)
	require.Len(t, view.Forecast, 5)
	wantDates := []string{"Mar 10", "Mar 11", "Mar 12", "Mar 13", "Mar 14"}
	wantHighs := []string{"0°", "3°", "6°", "8°", "11°"}
	for i, card := range view.Forecast {
		assert.Equal(t, wantDates[i], card.Date)
		assert.Equal(t, wantHighs[i], card.High)
	}
}

func TestController_SubmitUnknownCity(t *testing.T) {
	f := newControllerFixture(t, false)

	f.client.EXPECT().FetchCurrentByCity(mock.Anything, "Zzzzznotacity").
		Return(nil, errors.NewNotFoundError("city not found")).Once()

	drive(f.controller, SubmitQuery{Input: "Zzzzznotacity"})

	assert.Equal(t, StatusError, f.controller.state.Status)
	assert.Equal(t, MessageCityNotFound, f.controller.state.Message)

	view := f.renderer.last()
	assert.True(t, view.ErrorVisible)
	assert.False(t, view.ResultVisible)
	assert.False(t, view.ForecastVisible)
	f.client.AssertNotCalled(t, "FetchForecast", mock.Anything, mock.Anything, mock.Anything)
}

func TestController_StartupGeolocationDenied(t *testing.T) {
	f := newControllerFixture(t, true)

	manila := &ports.CurrentWeatherData{
		City: "Manila", Country: "PH", Lat: 14.6042, Lon: 120.9822,
		Temperature: 31, FeelsLike: 36, Humidity: 70,
		Description: "broken clouds", Icon: "04d",
	}

	f.geolocator.EXPECT().CurrentPosition(mock.Anything).
		Return(ports.Position{}, errors.NewGeolocationError("permission denied", nil)).Once()
	f.client.EXPECT().FetchCurrentByCity(mock.Anything, "Manila").Return(manila, nil).Once()
	f.client.EXPECT().FetchForecast(mock.Anything, 14.6042, 120.9822).Return(nil, nil).Once()

	drive(f.controller, Startup{})

	assert.Equal(t, StatusSuccess, f.controller.state.Status)
	view := f.renderer.last()
	assert.False(t, view.ErrorVisible)
	assert.Equal(t, "Manila, PH", view.Result.Location)
	assert.True(t, view.ForecastVisible)
	assert.Empty(t, view.Forecast)
}

func TestController_StartupWithPosition(t *testing.T) {
	f := newControllerFixture(t, true)

	f.geolocator.EXPECT().CurrentPosition(mock.Anything).
		Return(ports.Position{Latitude: 48.85, Longitude: 2.35}, nil).Once()
	f.client.EXPECT().FetchCurrentByCoords(mock.Anything, 48.85, 2.35).Return(parisWeather(), nil).Once()
	f.client.EXPECT().FetchForecast(mock.Anything, 48.8534, 2.3488).Return(thirteenSamples(), nil).Once()

	drive(f.controller, Startup{})

	view := f.renderer.last()
	assert.Equal(t, "success", view.Status)
	assert.Equal(t, "Paris", view.InputValue)
	assert.Len(t, view.Forecast, 5)
}

func TestController_StartupCoordsFailure(t *testing.T) {
	f := newControllerFixture(t, true)

	f.geolocator.EXPECT().CurrentPosition(mock.Anything).
		Return(ports.Position{Latitude: 10, Longitude: 10}, nil).Once()
	f.client.EXPECT().FetchCurrentByCoords(mock.Anything, 10.0, 10.0).
		Return(nil, errors.NewExternalAPIError("weather request failed", fmt.Errorf("dial tcp: refused"))).Once()

	drive(f.controller, Startup{})

	assert.Equal(t, StatusError, f.controller.state.Status)
	assert.Equal(t, MessageLocationUnavailable, f.controller.state.Message)
}

func TestController_DecodeFailureMessage(t *testing.T) {
	f := newControllerFixture(t, false)

	f.client.EXPECT().FetchCurrentByCity(mock.Anything, "Oslo").
		Return(nil, errors.NewDecodeError("malformed response", nil)).Once()

	drive(f.controller, SubmitQuery{Input: "Oslo"})

	assert.Equal(t, MessageInvalidResponse, f.controller.state.Message)
}

func TestController_IgnoresSubmitWhileLoading(t *testing.T) {
	f := newControllerFixture(t, false)

	effects := f.controller.handle(SubmitQuery{Input: "Paris"})
	require.Len(t, effects, 1)
	require.Equal(t, StatusLoading, f.controller.state.Status)

	view := f.renderer.last()
	assert.True(t, view.Busy)
	assert.True(t, view.SubmitDisabled)

	rendered := f.renderer.count()
	assert.Empty(t, f.controller.handle(SubmitQuery{Input: "London"}))
	assert.Empty(t, f.controller.handle(Startup{}))
	assert.Equal(t, StatusLoading, f.controller.state.Status)
	assert.Equal(t, rendered, f.renderer.count())
	assert.Equal(t, "cycle-1", f.controller.cycleID)
}

func TestController_ForecastFailureKeepsSuccess(t *testing.T) {
	f := newControllerFixture(t, false)

	f.client.EXPECT().FetchCurrentByCity(mock.Anything, "Paris").Return(parisWeather(), nil).Once()
	f.client.EXPECT().FetchForecast(mock.Anything, 48.8534, 2.3488).
		Return(nil, errors.NewExternalAPIError("weather request failed", nil)).Once()

	drive(f.controller, SubmitQuery{Input: "Paris"})

	assert.Equal(t, StatusSuccess, f.controller.state.Status)
	view := f.renderer.last()
	assert.True(t, view.ResultVisible)
	assert.False(t, view.ErrorVisible)
	assert.False(t, view.ForecastVisible)
}

func TestController_NewSubmitClearsPreviousResult(t *testing.T) {
	f := newControllerFixture(t, false)

	f.client.EXPECT().FetchCurrentByCity(mock.Anything, "Paris").Return(parisWeather(), nil).Once()
	f.client.EXPECT().FetchForecast(mock.Anything, 48.8534, 2.3488).Return(thirteenSamples(), nil).Once()
	drive(f.controller, SubmitQuery{Input: "Paris"})

	f.controller.handle(SubmitQuery{Input: "Lima"})

	view := f.renderer.last()
	assert.True(t, view.Busy)
	assert.False(t, view.ResultVisible)
	assert.Nil(t, view.Result)
	assert.False(t, view.ForecastVisible)
	assert.Empty(t, view.Forecast)
	assert.Equal(t, "cycle-2", view.CycleID)
}

func TestController_LateForecastStillApplies(t *testing.T) {
	f := newControllerFixture(t, false)

	f.client.EXPECT().FetchCurrentByCity(mock.Anything, "Paris").Return(parisWeather(), nil).Once()

	loading := f.controller.handle(SubmitQuery{Input: "Paris"})
	loaded := loading[0](context.Background())
	forecastEffects := f.controller.handle(loaded)
	require.Len(t, forecastEffects, 1)

	// a second cycle fails validation before the first forecast lands
	f.controller.handle(SubmitQuery{Input: "x"})
	require.Equal(t, StatusError, f.controller.state.Status)

	f.controller.handle(ForecastLoaded{CycleID: "cycle-1"})

	view := f.renderer.last()
	assert.True(t, view.ForecastVisible)
	assert.Equal(t, StatusError, f.controller.state.Status)
}

func TestController_ThemeChanged(t *testing.T) {
	f := newControllerFixture(t, false)

	drive(f.controller, ThemeChanged{Theme: "night"})
	drive(f.controller, ThemeChanged{Theme: "Not A Theme"})

	assert.Equal(t, "night", f.renderer.last().Theme)
	assert.Equal(t, []string{"night"}, f.themes.saved)
	assert.Equal(t, StatusIdle, f.controller.state.Status)
}

func TestController_ThemeSaveFailureIsLogged(t *testing.T) {
	f := newControllerFixture(t, false)
	f.themes.failOn = "dusk"

	drive(f.controller, ThemeChanged{Theme: "dusk"})

	assert.Equal(t, "dusk", f.renderer.last().Theme)
	assert.Empty(t, f.themes.saved)
}

func TestNewController_Validation(t *testing.T) {
	_, err := NewController(ControllerDependencies{})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestNewController_DefaultTheme(t *testing.T) {
	f := newControllerFixture(t, false)
	assert.Equal(t, DefaultTheme, f.controller.view.Theme)
}

func TestController_Run(t *testing.T) {
	f := newControllerFixture(t, false)

	f.client.EXPECT().FetchCurrentByCity(mock.Anything, "Paris").Return(parisWeather(), nil).Once()
	f.client.EXPECT().FetchForecast(mock.Anything, 48.8534, 2.3488).Return(thirteenSamples(), nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.controller.Run(ctx) }()

	require.True(t, f.controller.Submit("Paris"))

	assert.Eventually(t, func() bool {
		view := f.renderer.last()
		return view.Status == "success" && view.ForecastVisible
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("controller did not stop")
	}

	assert.False(t, f.controller.Submit("London"))
}
