package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

// RegisterValidators adds the widget's custom binding tags to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("gin validator engine is not go-playground/validator", nil)
	}

	return v.RegisterValidation("theme", validateTheme)
}

func validateTheme(fl validator.FieldLevel) bool {
	return validation.IsThemeTag(fl.Field().String())
}
