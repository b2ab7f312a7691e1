package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// PreferenceStore is a mock type for the ports.PreferenceStore type
type PreferenceStore struct {
	mock.Mock
}

type PreferenceStore_Expecter struct {
	mock *mock.Mock
}

func (_m *PreferenceStore) EXPECT() *PreferenceStore_Expecter {
	return &PreferenceStore_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, key
func (_m *PreferenceStore) Get(ctx context.Context, key string) (string, error) {
	ret := _m.Called(ctx, key)
	return ret.String(0), ret.Error(1)
}

// Set provides a mock function with given fields: ctx, key, value
func (_m *PreferenceStore) Set(ctx context.Context, key string, value string) error {
	ret := _m.Called(ctx, key, value)
	return ret.Error(0)
}

// Ping provides a mock function with given fields: ctx
func (_m *PreferenceStore) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// Close provides a mock function with no fields
func (_m *PreferenceStore) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}

// PreferenceStore_Call wraps mock.Call for every PreferenceStore method
type PreferenceStore_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
func (_e *PreferenceStore_Expecter) Get(ctx interface{}, key interface{}) *PreferenceStore_Call {
	return &PreferenceStore_Call{Call: _e.mock.On("Get", ctx, key)}
}

// Set is a helper method to define mock.On call
func (_e *PreferenceStore_Expecter) Set(ctx interface{}, key interface{}, value interface{}) *PreferenceStore_Call {
	return &PreferenceStore_Call{Call: _e.mock.On("Set", ctx, key, value)}
}

// Ping is a helper method to define mock.On call
func (_e *PreferenceStore_Expecter) Ping(ctx interface{}) *PreferenceStore_Call {
	return &PreferenceStore_Call{Call: _e.mock.On("Ping", ctx)}
}

// NewPreferenceStore creates a new instance of PreferenceStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPreferenceStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *PreferenceStore {
	mock := &PreferenceStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
