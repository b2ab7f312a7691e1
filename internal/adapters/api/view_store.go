package api

import (
	"sync"

	"weatherwidget.app/internal/core/widget"
)

// ViewStore keeps the latest rendered view for page and state requests
type ViewStore struct {
	mu      sync.RWMutex
	current widget.View
	renders uint64
}

func NewViewStore() *ViewStore {
	return &ViewStore{current: widget.View{Status: widget.StatusIdle.String(), Theme: widget.DefaultTheme}}
}

// Render implements widget.Renderer
func (v *ViewStore) Render(view widget.View) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.current = view
	v.renders++
}

// Current returns a copy of the latest view
func (v *ViewStore) Current() widget.View {
	v.mu.RLock()
	defer v.mu.RUnlock()

	view := v.current
	if v.current.Forecast != nil {
		view.Forecast = append([]widget.ForecastCard(nil), v.current.Forecast...)
	}
	return view
}

// Renders counts views received so far
func (v *ViewStore) Renders() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.renders
}
