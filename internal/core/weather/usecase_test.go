package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherwidget.app/internal/adapters/external"
	"weatherwidget.app/internal/core/location"
	"weatherwidget.app/internal/mocks"
	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

func newTestUseCase(t *testing.T) (*UseCase, *mocks.WeatherClient) {
	client := mocks.NewWeatherClient(t)

	uc, err := NewUseCase(UseCaseDependencies{
		WeatherClient: client,
		Logger:        mocks.NewPermissiveLogger(t),
		Timezone:      time.UTC,
	})
	require.NoError(t, err)

	return uc, client
}

func parisData() *ports.CurrentWeatherData {
	return &ports.CurrentWeatherData{
		City:        "Paris",
		Country:     "FR",
		Lat:         48.8534,
		Lon:         2.3488,
		Temperature: 18.4,
		Humidity:    64,
		Description: "scattered clouds",
		Icon:        "03d",
	}
}

func TestUseCase_FetchCurrent_ByCity(t *testing.T) {
	uc, client := newTestUseCase(t)
	client.EXPECT().FetchCurrentByCity(mock.Anything, "Paris").Return(parisData(), nil)

	result, err := uc.FetchCurrent(context.Background(), location.NewCityQuery("Paris"))

	require.NoError(t, err)
	assert.Equal(t, "Paris", result.City)
	assert.Equal(t, 48.8534, result.Lat)
}

func TestUseCase_FetchCurrent_ByCoords(t *testing.T) {
	uc, client := newTestUseCase(t)
	client.EXPECT().FetchCurrentByCoords(mock.Anything, 48.85, 2.35).Return(parisData(), nil)

	result, err := uc.FetchCurrent(context.Background(), location.NewCoordsQuery(48.85, 2.35))

	require.NoError(t, err)
	assert.Equal(t, "FR", result.Country)
}

func TestUseCase_FetchCurrent_NotFoundPreserved(t *testing.T) {
	uc, client := newTestUseCase(t)
	client.EXPECT().FetchCurrentByCity(mock.Anything, "Zzzzznotacity").
		Return(nil, errors.NewNotFoundError("city not found"))

	result, err := uc.FetchCurrent(context.Background(), location.NewCityQuery("Zzzzznotacity"))

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, errors.CodeNotFound, errors.CodeOf(err))
}

func TestUseCase_FetchCurrent_UntypedErrorBecomesUnreachable(t *testing.T) {
	uc, client := newTestUseCase(t)
	client.EXPECT().FetchCurrentByCity(mock.Anything, "Paris").Return(nil, fmt.Errorf("boom"))

	_, err := uc.FetchCurrent(context.Background(), location.NewCityQuery("Paris"))

	assert.True(t, errors.IsExternalAPIError(err))
	assert.Equal(t, errors.CodeUnreachable, errors.CodeOf(err))
}

func TestUseCase_FetchCurrent_IncompletePayload(t *testing.T) {
	uc, client := newTestUseCase(t)
	data := parisData()
	data.Icon = ""
	client.EXPECT().FetchCurrentByCity(mock.Anything, "Paris").Return(data, nil)

	result, err := uc.FetchCurrent(context.Background(), location.NewCityQuery("Paris"))

	assert.Nil(t, result)
	assert.Equal(t, errors.CodeDecodeFailure, errors.CodeOf(err))
}

func TestUseCase_FetchCurrent_PayloadWithoutMainOrCoord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"name":"Paris","weather":[{"description":"clear sky","icon":"01d"}]}`)
	}))
	t.Cleanup(server.Close)

	client, err := external.NewOpenWeatherMapClient(external.OpenWeatherMapClientParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Logger:  mocks.NewPermissiveLogger(t),
	})
	require.NoError(t, err)

	uc, err := NewUseCase(UseCaseDependencies{
		WeatherClient: client,
		Logger:        mocks.NewPermissiveLogger(t),
		Timezone:      time.UTC,
	})
	require.NoError(t, err)

	result, err := uc.FetchCurrent(context.Background(), location.NewCityQuery("Paris"))

	assert.Nil(t, result)
	assert.True(t, errors.IsDecodeError(err))
	assert.Equal(t, errors.CodeDecodeFailure, errors.CodeOf(err))
}

func TestUseCase_FetchCurrent_InvalidQuery(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.FetchCurrent(context.Background(), location.Query{})

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_FetchDailyForecast(t *testing.T) {
	uc, client := newTestUseCase(t)

	start := time.Date(2024, time.June, 1, 21, 0, 0, 0, time.UTC)
	var samples []ports.ForecastSampleData
	for i := 0; i < 40; i++ {
		samples = append(samples, ports.ForecastSampleData{
			Time:        start.Add(time.Duration(i) * 3 * time.Hour),
			TempMin:     float64(i),
			TempMax:     float64(i + 5),
			Description: fmt.Sprintf("slot %d", i),
			Icon:        "10n",
		})
	}
	client.EXPECT().FetchForecast(mock.Anything, 48.8534, 2.3488).Return(samples, nil)

	daily, err := uc.FetchDailyForecast(context.Background(), 48.8534, 2.3488)

	require.NoError(t, err)
	require.Len(t, daily, 5)
	assert.Equal(t, "Jun 1", daily[0].DayKey)
	assert.Equal(t, "slot 0", daily[0].Description)
	assert.Equal(t, "Jun 2", daily[1].DayKey)
	assert.Equal(t, "slot 1", daily[1].Description)
	assert.Equal(t, "slot 9", daily[2].Description)
}

func TestUseCase_FetchDailyForecast_Error(t *testing.T) {
	uc, client := newTestUseCase(t)
	client.EXPECT().FetchForecast(mock.Anything, 1.0, 2.0).
		Return(nil, errors.NewDecodeError("bad payload", nil))

	daily, err := uc.FetchDailyForecast(context.Background(), 1.0, 2.0)

	assert.Nil(t, daily)
	assert.True(t, errors.IsDecodeError(err))
}

func TestUseCase_Constructor_Validation(t *testing.T) {
	tests := []struct {
		name    string
		deps    UseCaseDependencies
		wantErr bool
		errMsg  string
	}{
		{
			name:    "missing_weather_client",
			deps:    UseCaseDependencies{Logger: mocks.NewLogger(t)},
			wantErr: true,
			errMsg:  "weather client is required",
		},
		{
			name:    "missing_logger",
			deps:    UseCaseDependencies{WeatherClient: mocks.NewWeatherClient(t)},
			wantErr: true,
			errMsg:  "logger is required",
		},
		{
			name: "valid_dependencies",
			deps: UseCaseDependencies{
				WeatherClient: mocks.NewWeatherClient(t),
				Logger:        mocks.NewLogger(t),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, uc)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, time.Local, uc.Timezone())
			}
		})
	}
}
