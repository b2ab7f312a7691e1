package widget

import (
	"weatherwidget.app/internal/core/weather"
)

// Status is the phase of the current request cycle
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// RequestState is owned by the controller's event loop and never persisted.
// Conditions is set only in StatusSuccess, Message only in StatusError.
type RequestState struct {
	Status     Status
	Conditions *weather.CurrentConditions
	Message    string
}

func idle() RequestState {
	return RequestState{Status: StatusIdle}
}

func loading() RequestState {
	return RequestState{Status: StatusLoading}
}

func succeeded(c *weather.CurrentConditions) RequestState {
	return RequestState{Status: StatusSuccess, Conditions: c}
}

func failed(message string) RequestState {
	return RequestState{Status: StatusError, Message: message}
}
