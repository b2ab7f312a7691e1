// Package mockserver serves canned OpenWeatherMap responses for local runs and tests.
package mockserver

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const forecastSlots = 40

// Special city names that trigger failure responses
const (
	CityServerError = "servererror"
	CityBadPayload  = "badpayload"
)

type city struct {
	Name        string
	Country     string
	Lat         float64
	Lon         float64
	Temp        float64
	FeelsLike   float64
	Humidity    float64
	Pressure    float64
	WindSpeed   float64
	Visibility  float64
	Clouds      float64
	Description string
	Icon        string
}

var cities = map[string]city{
	"london": {
		Name: "London", Country: "GB", Lat: 51.5085, Lon: -0.1257,
		Temp: 15.0, FeelsLike: 14.2, Humidity: 76, Pressure: 1012,
		WindSpeed: 4.6, Visibility: 10000, Clouds: 75,
		Description: "broken clouds", Icon: "04d",
	},
	"paris": {
		Name: "Paris", Country: "FR", Lat: 48.8534, Lon: 2.3488,
		Temp: 18.0, FeelsLike: 17.4, Humidity: 68, Pressure: 1015,
		WindSpeed: 3.1, Visibility: 10000, Clouds: 0,
		Description: "clear sky", Icon: "01d",
	},
	"manila": {
		Name: "Manila", Country: "PH", Lat: 14.6042, Lon: 120.9822,
		Temp: 31.2, FeelsLike: 37.9, Humidity: 70, Pressure: 1008,
		WindSpeed: 3.6, Visibility: 10000, Clouds: 20,
		Description: "few clouds", Icon: "02d",
	},
}

// OpenWeatherMap mimics the /weather and /forecast endpoints for a fixed set of cities
type OpenWeatherMap struct {
	APIKey string
	// Now anchors the forecast series; defaults to time.Now
	Now func() time.Time
}

// Router builds the gin engine serving the stub
func (o *OpenWeatherMap) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/weather", o.requireKey, o.current)
	r.GET("/forecast", o.requireKey, o.forecast)

	return r
}

func (o *OpenWeatherMap) requireKey(c *gin.Context) {
	if c.Query("appid") == "" || (o.APIKey != "" && c.Query("appid") != o.APIKey) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"cod": 401, "message": "Invalid API key"})
		return
	}
	c.Next()
}

func (o *OpenWeatherMap) current(c *gin.Context) {
	if q := strings.ToLower(strings.TrimSpace(c.Query("q"))); q != "" {
		switch q {
		case CityServerError:
			c.JSON(http.StatusInternalServerError, gin.H{"cod": 500, "message": "Internal error"})
			return
		case CityBadPayload:
			c.Data(http.StatusOK, "application/json", []byte(`{"name":`))
			return
		}

		found, ok := cities[q]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
			return
		}
		c.JSON(http.StatusOK, currentBody(found))
		return
	}

	found, ok := lookupCoords(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
		return
	}
	c.JSON(http.StatusOK, currentBody(found))
}

func (o *OpenWeatherMap) forecast(c *gin.Context) {
	found, ok := lookupCoords(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
		return
	}

	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	start := now().UTC().Truncate(3 * time.Hour)

	list := make([]gin.H, 0, forecastSlots)
	for i := 0; i < forecastSlots; i++ {
		swing := 4 * math.Sin(float64(i)*math.Pi/4)
		list = append(list, gin.H{
			"dt": start.Add(time.Duration(i*3) * time.Hour).Unix(),
			"main": gin.H{
				"temp_min": found.Temp - 3 + swing,
				"temp_max": found.Temp + 2 + swing,
			},
			"weather": []gin.H{{"description": found.Description, "icon": found.Icon}},
		})
	}

	c.JSON(http.StatusOK, gin.H{"cnt": len(list), "list": list})
}

func lookupCoords(c *gin.Context) (city, bool) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		return city{}, false
	}

	for _, candidate := range cities {
		if math.Abs(candidate.Lat-lat) < 0.5 && math.Abs(candidate.Lon-lon) < 0.5 {
			return candidate, true
		}
	}
	return city{}, false
}

func currentBody(found city) gin.H {
	return gin.H{
		"name":  found.Name,
		"coord": gin.H{"lat": found.Lat, "lon": found.Lon},
		"sys":   gin.H{"country": found.Country},
		"main": gin.H{
			"temp":       found.Temp,
			"feels_like": found.FeelsLike,
			"humidity":   found.Humidity,
			"pressure":   found.Pressure,
		},
		"wind":       gin.H{"speed": found.WindSpeed},
		"clouds":     gin.H{"all": found.Clouds},
		"visibility": found.Visibility,
		"weather":    []gin.H{{"description": found.Description, "icon": found.Icon}},
	}
}
