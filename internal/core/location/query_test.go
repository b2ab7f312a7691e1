package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		query   Query
		wantErr bool
	}{
		{"City", NewCityQuery("Paris"), false},
		{"EmptyCity", NewCityQuery("  "), true},
		{"Coords", NewCoordsQuery(14.5995, 120.9842), false},
		{"LatitudeOutOfRange", NewCoordsQuery(91, 0), true},
		{"LongitudeOutOfRange", NewCoordsQuery(0, -181), true},
		{"ZeroValue", Query{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuery_String(t *testing.T) {
	assert.Equal(t, "Paris", NewCityQuery("Paris").String())
	assert.Equal(t, "48.8566,2.3522", NewCoordsQuery(48.8566, 2.3522).String())
	assert.Equal(t, "city", KindCity.String())
	assert.Equal(t, "coords", KindCoords.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
