package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	ports "weatherwidget.app/internal/ports"
)

// WeatherClient is a mock type for the ports.WeatherClient type
type WeatherClient struct {
	mock.Mock
}

type WeatherClient_Expecter struct {
	mock *mock.Mock
}

func (_m *WeatherClient) EXPECT() *WeatherClient_Expecter {
	return &WeatherClient_Expecter{mock: &_m.Mock}
}

// FetchCurrentByCity provides a mock function with given fields: ctx, city
func (_m *WeatherClient) FetchCurrentByCity(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	ret := _m.Called(ctx, city)
	return currentResult(ret)
}

// FetchCurrentByCoords provides a mock function with given fields: ctx, lat, lon
func (_m *WeatherClient) FetchCurrentByCoords(ctx context.Context, lat float64, lon float64) (*ports.CurrentWeatherData, error) {
	ret := _m.Called(ctx, lat, lon)
	return currentResult(ret)
}

// FetchForecast provides a mock function with given fields: ctx, lat, lon
func (_m *WeatherClient) FetchForecast(ctx context.Context, lat float64, lon float64) ([]ports.ForecastSampleData, error) {
	ret := _m.Called(ctx, lat, lon)

	var r0 []ports.ForecastSampleData
	if rf, ok := ret.Get(0).(func(context.Context, float64, float64) ([]ports.ForecastSampleData, error)); ok {
		return rf(ctx, lat, lon)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]ports.ForecastSampleData)
	}
	return r0, ret.Error(1)
}

func currentResult(ret mock.Arguments) (*ports.CurrentWeatherData, error) {
	var r0 *ports.CurrentWeatherData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ports.CurrentWeatherData)
	}
	return r0, ret.Error(1)
}

// WeatherClient_Current_Call wraps mock.Call for the current-conditions methods
type WeatherClient_Current_Call struct {
	*mock.Call
}

func (_c *WeatherClient_Current_Call) Return(data *ports.CurrentWeatherData, err error) *WeatherClient_Current_Call {
	_c.Call.Return(data, err)
	return _c
}

// WeatherClient_FetchForecast_Call wraps mock.Call for FetchForecast
type WeatherClient_FetchForecast_Call struct {
	*mock.Call
}

func (_c *WeatherClient_FetchForecast_Call) Return(samples []ports.ForecastSampleData, err error) *WeatherClient_FetchForecast_Call {
	_c.Call.Return(samples, err)
	return _c
}

// FetchCurrentByCity is a helper method to define mock.On call
func (_e *WeatherClient_Expecter) FetchCurrentByCity(ctx interface{}, city interface{}) *WeatherClient_Current_Call {
	return &WeatherClient_Current_Call{Call: _e.mock.On("FetchCurrentByCity", ctx, city)}
}

// FetchCurrentByCoords is a helper method to define mock.On call
func (_e *WeatherClient_Expecter) FetchCurrentByCoords(ctx interface{}, lat interface{}, lon interface{}) *WeatherClient_Current_Call {
	return &WeatherClient_Current_Call{Call: _e.mock.On("FetchCurrentByCoords", ctx, lat, lon)}
}

// FetchForecast is a helper method to define mock.On call
func (_e *WeatherClient_Expecter) FetchForecast(ctx interface{}, lat interface{}, lon interface{}) *WeatherClient_FetchForecast_Call {
	return &WeatherClient_FetchForecast_Call{Call: _e.mock.On("FetchForecast", ctx, lat, lon)}
}

// NewWeatherClient creates a new instance of WeatherClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewWeatherClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherClient {
	mock := &WeatherClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
