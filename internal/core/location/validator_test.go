package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/pkg/errors"
)

func TestValidateCity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantCode errors.Code
		wantMsg  string
	}{
		{
			name:     "BlankInput",
			input:    "  ",
			wantCode: errors.CodeEmptyInput,
			wantMsg:  MessageEmptyInput,
		},
		{
			name:     "EmptyString",
			input:    "",
			wantCode: errors.CodeEmptyInput,
			wantMsg:  MessageEmptyInput,
		},
		{
			name:     "SingleCharacter",
			input:    "a",
			wantCode: errors.CodeTooShort,
			wantMsg:  MessageTooShort,
		},
		{
			name:     "SingleCharacterPadded",
			input:    "  x \t",
			wantCode: errors.CodeTooShort,
			wantMsg:  MessageTooShort,
		},
		{
			name:     "SingleDigitIsTooShortFirst",
			input:    "1",
			wantCode: errors.CodeTooShort,
			wantMsg:  MessageTooShort,
		},
		{
			name:     "Digits",
			input:    "NYC123",
			wantCode: errors.CodeInvalidCharacters,
			wantMsg:  MessageInvalidCharacters,
		},
		{
			name:     "Symbol",
			input:    "Paris!",
			wantCode: errors.CodeInvalidCharacters,
			wantMsg:  MessageInvalidCharacters,
		},
		{
			name:     "Accent",
			input:    "Zürich",
			wantCode: errors.CodeInvalidCharacters,
			wantMsg:  MessageInvalidCharacters,
		},
		{
			name:     "Apostrophe",
			input:    "L'Aquila",
			wantCode: errors.CodeInvalidCharacters,
			wantMsg:  MessageInvalidCharacters,
		},
		{
			name:     "SimpleCity",
			input:    "Paris",
			expected: "Paris",
		},
		{
			name:     "TrimmedCity",
			input:    "  Paris  ",
			expected: "Paris",
		},
		{
			name:     "CityWithCountry",
			input:    "London, GB",
			expected: "London, GB",
		},
		{
			name:     "HyphenatedCity",
			input:    "Saint-Etienne",
			expected: "Saint-Etienne",
		},
		{
			name:     "NoBreakSpace",
			input:    "New\u00a0York",
			expected: "New\u00a0York",
		},
		{
			name:     "VerticalTab",
			input:    "New\vYork",
			expected: "New\vYork",
		},
		{
			name:     "TwoLetters",
			input:    "Ba",
			expected: "Ba",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, err := ValidateCity(tt.input)

			if tt.wantCode != errors.CodeNone {
				require.Error(t, err)
				assert.Empty(t, city)
				assert.True(t, errors.IsValidationError(err))
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))

				appErr, ok := errors.As(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantMsg, appErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, city)
		})
	}
}

func TestValidateCity_ShortInputsAlwaysTooShort(t *testing.T) {
	for _, input := range []string{"a", "Z", "-", ",", "7", "#", " é "} {
		_, err := ValidateCity(input)
		assert.Equal(t, errors.CodeTooShort, errors.CodeOf(err), "input %q", input)
	}
}

func TestValidateCity_DisallowedCharactersRejected(t *testing.T) {
	for _, r := range "0123456789!@#$%^&*()_+=[]{};:'\"<>/?.|\\`~" {
		input := "Ab" + string(r)
		_, err := ValidateCity(input)
		assert.Equal(t, errors.CodeInvalidCharacters, errors.CodeOf(err), "input %q", input)
	}
}
