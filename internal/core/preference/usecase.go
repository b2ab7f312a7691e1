// Package preference persists the widget theme across sessions.
package preference

import (
	"context"
	"fmt"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

const (
	// ThemeKey is the storage key of the theme tag
	ThemeKey = "weatherTheme"
	// DefaultTheme applies when nothing has been stored yet
	DefaultTheme = "day"
)

// UseCase reads and writes the theme preference
type UseCase struct {
	store        ports.PreferenceStore
	logger       ports.Logger
	defaultTheme string
}

type UseCaseDependencies struct {
	Store        ports.PreferenceStore
	Logger       ports.Logger
	DefaultTheme string
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("preference store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	def := deps.DefaultTheme
	if def == "" {
		def = DefaultTheme
	}
	if !validation.IsThemeTag(def) {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid default theme %q", def))
	}

	return &UseCase{
		store:        deps.Store,
		logger:       deps.Logger,
		defaultTheme: def,
	}, nil
}

// GetTheme returns the stored theme, or the default when none is stored.
// A stored value that is no longer a valid tag is treated as missing.
func (uc *UseCase) GetTheme(ctx context.Context) (string, error) {
	theme, err := uc.store.Get(ctx, ThemeKey)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return uc.defaultTheme, nil
		}
		return "", fmt.Errorf("failed to load theme: %w", err)
	}

	if !validation.IsThemeTag(theme) {
		uc.logger.Warn("Ignoring invalid stored theme", ports.F("theme", theme))
		return uc.defaultTheme, nil
	}
	return theme, nil
}

// SetTheme validates and stores the theme tag
func (uc *UseCase) SetTheme(ctx context.Context, theme string) error {
	if !validation.IsThemeTag(theme) {
		return errors.NewValidationError(fmt.Sprintf("invalid theme %q", theme))
	}

	if err := uc.store.Set(ctx, ThemeKey, theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	uc.logger.Info("Theme saved", ports.F("theme", theme))
	return nil
}

// DefaultTheme returns the theme used when none is stored
func (uc *UseCase) DefaultTheme() string {
	return uc.defaultTheme
}
