// Package mocks provides hand-written testify mocks for the ports interfaces,
// laid out like mockery's expecter output. Do not regenerate with mockery.
package mocks

import (
	mock "github.com/stretchr/testify/mock"
	ports "weatherwidget.app/internal/ports"
)

// Logger is a mock type for the ports.Logger type
type Logger struct {
	mock.Mock
}

type Logger_Expecter struct {
	mock *mock.Mock
}

func (_m *Logger) EXPECT() *Logger_Expecter {
	return &Logger_Expecter{mock: &_m.Mock}
}

func (_m *Logger) call(method string, msg string, fields []ports.Field) {
	_va := make([]interface{}, len(fields))
	for _i := range fields {
		_va[_i] = fields[_i]
	}
	var _ca []interface{}
	_ca = append(_ca, msg)
	_ca = append(_ca, _va...)
	_m.MethodCalled(method, _ca...)
}

// Debug provides a mock function with given fields: msg, fields
func (_m *Logger) Debug(msg string, fields ...ports.Field) {
	_m.call("Debug", msg, fields)
}

// Info provides a mock function with given fields: msg, fields
func (_m *Logger) Info(msg string, fields ...ports.Field) {
	_m.call("Info", msg, fields)
}

// Warn provides a mock function with given fields: msg, fields
func (_m *Logger) Warn(msg string, fields ...ports.Field) {
	_m.call("Warn", msg, fields)
}

// Error provides a mock function with given fields: msg, fields
func (_m *Logger) Error(msg string, fields ...ports.Field) {
	_m.call("Error", msg, fields)
}

// Logger_Call wraps mock.Call for every Logger method
type Logger_Call struct {
	*mock.Call
}

func (_c *Logger_Call) Return() *Logger_Call {
	_c.Call.Return()
	return _c
}

// Debug is a helper method to define mock.On call
func (_e *Logger_Expecter) Debug(msg interface{}, fields ...interface{}) *Logger_Call {
	return &Logger_Call{Call: _e.mock.On("Debug", append([]interface{}{msg}, fields...)...)}
}

// Info is a helper method to define mock.On call
func (_e *Logger_Expecter) Info(msg interface{}, fields ...interface{}) *Logger_Call {
	return &Logger_Call{Call: _e.mock.On("Info", append([]interface{}{msg}, fields...)...)}
}

// Warn is a helper method to define mock.On call
func (_e *Logger_Expecter) Warn(msg interface{}, fields ...interface{}) *Logger_Call {
	return &Logger_Call{Call: _e.mock.On("Warn", append([]interface{}{msg}, fields...)...)}
}

// Error is a helper method to define mock.On call
func (_e *Logger_Expecter) Error(msg interface{}, fields ...interface{}) *Logger_Call {
	return &Logger_Call{Call: _e.mock.On("Error", append([]interface{}{msg}, fields...)...)}
}

// NewLogger creates a new instance of Logger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	mock := &Logger{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// NewPermissiveLogger returns a Logger mock that accepts any log call with up to eight fields.
func NewPermissiveLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	m := NewLogger(t)
	for _, method := range []string{"Debug", "Info", "Warn", "Error"} {
		args := []interface{}{mock.Anything}
		for i := 0; i <= 8; i++ {
			m.On(method, args...).Maybe()
			args = append(args, mock.Anything)
		}
	}
	return m
}
