package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
	ports "weatherwidget.app/internal/ports"
)

// Geolocator is a mock type for the ports.Geolocator type
type Geolocator struct {
	mock.Mock
}

type Geolocator_Expecter struct {
	mock *mock.Mock
}

func (_m *Geolocator) EXPECT() *Geolocator_Expecter {
	return &Geolocator_Expecter{mock: &_m.Mock}
}

// CurrentPosition provides a mock function with given fields: ctx
func (_m *Geolocator) CurrentPosition(ctx context.Context) (ports.Position, error) {
	ret := _m.Called(ctx)

	var r0 ports.Position
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(ports.Position)
	}
	return r0, ret.Error(1)
}

// Geolocator_CurrentPosition_Call wraps mock.Call for CurrentPosition
type Geolocator_CurrentPosition_Call struct {
	*mock.Call
}

func (_c *Geolocator_CurrentPosition_Call) Return(pos ports.Position, err error) *Geolocator_CurrentPosition_Call {
	_c.Call.Return(pos, err)
	return _c
}

// CurrentPosition is a helper method to define mock.On call
func (_e *Geolocator_Expecter) CurrentPosition(ctx interface{}) *Geolocator_CurrentPosition_Call {
	return &Geolocator_CurrentPosition_Call{Call: _e.mock.On("CurrentPosition", ctx)}
}

// NewGeolocator creates a new instance of Geolocator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewGeolocator(t interface {
	mock.TestingT
	Cleanup(func())
}) *Geolocator {
	mock := &Geolocator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
