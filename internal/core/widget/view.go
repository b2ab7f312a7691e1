package widget

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"weatherwidget.app/internal/core/forecast"
	"weatherwidget.app/internal/core/weather"
)

// DefaultIconBaseURL serves OpenWeatherMap condition icons
const DefaultIconBaseURL = "https://openweathermap.org/img/wn"

// View is the full visible state of the widget handed to the renderer
type View struct {
	Status          string         `json:"status"`
	CycleID         string         `json:"cycle_id,omitempty"`
	Busy            bool           `json:"busy"`
	SubmitDisabled  bool           `json:"submit_disabled"`
	InputValue      string         `json:"input_value"`
	ErrorVisible    bool           `json:"error_visible"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	ResultVisible   bool           `json:"result_visible"`
	Result          *ResultCard    `json:"result,omitempty"`
	ForecastVisible bool           `json:"forecast_visible"`
	Forecast        []ForecastCard `json:"forecast,omitempty"`
	Theme           string         `json:"theme"`
}

// ResultCard is the formatted current-conditions panel
type ResultCard struct {
	Location    string `json:"location"`
	Description string `json:"description"`
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feels_like"`
	IconURL     string `json:"icon_url"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed"`
	Pressure    string `json:"pressure"`
	Visibility  string `json:"visibility"`
	Cloudiness  string `json:"cloudiness"`
}

// ForecastCard is one day of the forecast strip
type ForecastCard struct {
	Date        string `json:"date"`
	IconURL     string `json:"icon_url"`
	Description string `json:"description"`
	High        string `json:"high"`
	Low         string `json:"low"`
}

// Presenter formats domain values for display.
// It is not safe for concurrent use; the controller calls it from its event loop only.
type Presenter struct {
	iconBaseURL string
	title       cases.Caser
}

// NewPresenter creates a presenter using iconBaseURL for condition icons
func NewPresenter(iconBaseURL string) *Presenter {
	if iconBaseURL == "" {
		iconBaseURL = DefaultIconBaseURL
	}
	return &Presenter{
		iconBaseURL: strings.TrimRight(iconBaseURL, "/"),
		title:       cases.Title(language.English),
	}
}

// ResultCard formats current conditions
func (p *Presenter) ResultCard(c *weather.CurrentConditions) *ResultCard {
	return &ResultCard{
		Location:    c.Location(),
		Description: p.title.String(c.Description),
		Temperature: fmt.Sprintf("%d°C", weather.RoundTemperature(c.Temperature)),
		FeelsLike:   fmt.Sprintf("Feels like %d°C", weather.RoundTemperature(c.FeelsLike)),
		IconURL:     p.iconURL(c.Icon, "4x"),
		Humidity:    fmt.Sprintf("%.0f%%", c.Humidity),
		WindSpeed:   fmt.Sprintf("%.1f km/h", c.WindSpeedKmh()),
		Pressure:    fmt.Sprintf("%.0f hPa", c.Pressure),
		Visibility:  fmt.Sprintf("%.1f km", c.VisibilityKm()),
		Cloudiness:  fmt.Sprintf("%.0f%%", c.Cloudiness),
	}
}

// ForecastCards formats the daily forecast in order
func (p *Presenter) ForecastCards(daily forecast.Daily) []ForecastCard {
	cards := make([]ForecastCard, 0, len(daily))
	for _, d := range daily {
		cards = append(cards, ForecastCard{
			Date:        d.DayKey,
			IconURL:     p.iconURL(d.Icon, "2x"),
			Description: p.title.String(d.Description),
			High:        fmt.Sprintf("%d°", weather.RoundTemperature(d.TempMax)),
			Low:         fmt.Sprintf("%d°", weather.RoundTemperature(d.TempMin)),
		})
	}
	return cards
}

func (p *Presenter) iconURL(icon, scale string) string {
	return fmt.Sprintf("%s/%s@%s.png", p.iconBaseURL, icon, scale)
}
