package location

import (
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

const minCityNameLength = 2

// User-facing validation messages
const (
	MessageEmptyInput        = "Please enter a city name."
	MessageTooShort          = "City name must be at least 2 characters."
	MessageInvalidCharacters = "Invalid characters detected. Use letters, spaces, commas, or hyphens."
)

// ValidateCity trims raw input and checks it, first failing rule wins.
// It returns the trimmed name on success.
func ValidateCity(raw string) (string, error) {
	city, ok := validation.TrimAndValidate(raw)
	if !ok {
		return "", errors.NewInputError(errors.CodeEmptyInput, MessageEmptyInput)
	}

	if !validation.HasMinLength(city, minCityNameLength) {
		return "", errors.NewInputError(errors.CodeTooShort, MessageTooShort)
	}

	if !validation.IsCityName(city) {
		return "", errors.NewInputError(errors.CodeInvalidCharacters, MessageInvalidCharacters)
	}

	return city, nil
}
