package weather

import (
	"fmt"
	"math"
	"strings"
)

// CurrentConditions is an immutable snapshot produced by one provider response
type CurrentConditions struct {
	City        string
	Country     string
	Lat         float64
	Lon         float64
	Temperature float64
	FeelsLike   float64
	Humidity    float64
	WindSpeed   float64
	Pressure    float64
	Visibility  float64
	Cloudiness  float64
	Description string
	Icon        string
}

// IsValid validates weather data
func (c *CurrentConditions) IsValid() error {
	if strings.TrimSpace(c.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if strings.TrimSpace(c.Description) == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if strings.TrimSpace(c.Icon) == "" {
		return fmt.Errorf("icon cannot be empty")
	}
	if c.Temperature < -273.15 {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if c.Humidity < 0 || c.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if c.Cloudiness < 0 || c.Cloudiness > 100 {
		return fmt.Errorf("cloudiness must be between 0 and 100")
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("coordinates out of range")
	}
	return nil
}

// Location returns "City, CC", or just the city when the country is unknown
func (c *CurrentConditions) Location() string {
	if c.Country == "" {
		return c.City
	}
	return c.City + ", " + c.Country
}

// WindSpeedKmh converts the metric m/s wind speed to km/h
func (c *CurrentConditions) WindSpeedKmh() float64 {
	return c.WindSpeed * 3.6
}

// VisibilityKm converts visibility from meters to kilometers
func (c *CurrentConditions) VisibilityKm() float64 {
	return c.Visibility / 1000
}

// RoundTemperature rounds to a whole degree with halves going up, so -2.5 becomes -2
func RoundTemperature(t float64) int {
	return int(math.Floor(t + 0.5))
}

// String returns a string representation of the weather
func (c *CurrentConditions) String() string {
	return fmt.Sprintf("%s: %.1f°C, %.0f%% humidity, %s",
		c.Location(), c.Temperature, c.Humidity, c.Description)
}
