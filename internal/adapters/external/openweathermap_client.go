package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapClient implements the WeatherClient port against the OpenWeatherMap REST API
type OpenWeatherMapClient struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapClientParams holds parameters for creating the OpenWeatherMap client
type OpenWeatherMapClientParams struct {
	APIKey  string
	BaseURL string
	// HTTPClient defaults to an http.Client without a timeout; the request context governs
	HTTPClient HTTPClient
	Logger     ports.Logger
}

type owmCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// owmCurrentResponse represents the /weather response.
// Nested objects are pointers so a missing object is told apart from zero values.
type owmCurrentResponse struct {
	Name  string `json:"name"`
	Coord *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Sys *struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Clouds *struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Visibility float64        `json:"visibility"`
	Weather    []owmCondition `json:"weather"`
}

// missingSection names the first required object absent from the payload
func (r *owmCurrentResponse) missingSection() string {
	switch {
	case r.Coord == nil:
		return "coord"
	case r.Main == nil:
		return "main"
	case r.Sys == nil:
		return "sys"
	case r.Wind == nil:
		return "wind"
	case r.Clouds == nil:
		return "clouds"
	}
	return ""
}

type owmForecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []owmCondition `json:"weather"`
}

// owmForecastResponse represents the /forecast response; a nil List means the field was absent
type owmForecastResponse struct {
	List *[]owmForecastItem `json:"list"`
}

// NewOpenWeatherMapClient creates a new OpenWeatherMap client
func NewOpenWeatherMapClient(params OpenWeatherMapClientParams) (*OpenWeatherMapClient, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("OpenWeatherMap API key is required", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &OpenWeatherMapClient{
		apiKey:  params.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}, nil
}

// FetchCurrentByCity retrieves current conditions for a free-text city name
func (c *OpenWeatherMapClient) FetchCurrentByCity(ctx context.Context, city string) (*ports.CurrentWeatherData, error) {
	if strings.TrimSpace(city) == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	q := url.Values{}
	q.Set("q", city)
	return c.fetchCurrent(ctx, q)
}

// FetchCurrentByCoords retrieves current conditions for a coordinate pair
func (c *OpenWeatherMapClient) FetchCurrentByCoords(ctx context.Context, lat, lon float64) (*ports.CurrentWeatherData, error) {
	return c.fetchCurrent(ctx, coordsQuery(lat, lon))
}

// FetchForecast retrieves the 3-hourly forecast series for a coordinate pair
func (c *OpenWeatherMapClient) FetchForecast(ctx context.Context, lat, lon float64) ([]ports.ForecastSampleData, error) {
	var apiResp owmForecastResponse
	if err := c.get(ctx, "forecast", coordsQuery(lat, lon), &apiResp); err != nil {
		return nil, err
	}

	if apiResp.List == nil {
		return nil, errors.NewDecodeError("OpenWeatherMap forecast response has no list", nil)
	}

	samples := make([]ports.ForecastSampleData, 0, len(*apiResp.List))
	for _, item := range *apiResp.List {
		cond := firstCondition(item.Weather)
		samples = append(samples, ports.ForecastSampleData{
			Time:        time.Unix(item.Dt, 0).UTC(),
			TempMin:     item.Main.TempMin,
			TempMax:     item.Main.TempMax,
			Description: cond.Description,
			Icon:        cond.Icon,
		})
	}
	return samples, nil
}

func (c *OpenWeatherMapClient) fetchCurrent(ctx context.Context, q url.Values) (*ports.CurrentWeatherData, error) {
	var apiResp owmCurrentResponse
	if err := c.get(ctx, "weather", q, &apiResp); err != nil {
		return nil, err
	}

	if section := apiResp.missingSection(); section != "" {
		return nil, errors.NewDecodeError("OpenWeatherMap response has no "+section+" object", nil)
	}

	cond := firstCondition(apiResp.Weather)
	return &ports.CurrentWeatherData{
		City:        apiResp.Name,
		Country:     apiResp.Sys.Country,
		Lat:         apiResp.Coord.Lat,
		Lon:         apiResp.Coord.Lon,
		Temperature: apiResp.Main.Temp,
		FeelsLike:   apiResp.Main.FeelsLike,
		Humidity:    apiResp.Main.Humidity,
		WindSpeed:   apiResp.Wind.Speed,
		Pressure:    apiResp.Main.Pressure,
		Visibility:  apiResp.Visibility,
		Cloudiness:  apiResp.Clouds.All,
		Description: cond.Description,
		Icon:        cond.Icon,
	}, nil
}

// get issues one GET and decodes the JSON body into out
func (c *OpenWeatherMapClient) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, path, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewNotFoundError("OpenWeatherMap has no data for the requested location")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewDecodeError("failed to decode OpenWeatherMap response", err)
	}
	return nil
}

func coordsQuery(lat, lon float64) url.Values {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return q
}

func firstCondition(conds []owmCondition) owmCondition {
	if len(conds) == 0 {
		return owmCondition{}
	}
	return conds[0]
}
