package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherwidget.app/pkg/errors"
	"weatherwidget.app/pkg/validation"
)

const (
	maxRedisDB    = 15
	maxPortNumber = 65535
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Weather     WeatherConfig     `split_words:"true"`
	Geolocation GeolocationConfig `split_words:"true"`
	Preferences PreferencesConfig `split_words:"true"`
	Log         LogConfig         `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	APIKey        string `envconfig:"OPENWEATHERMAP_API_KEY"`
	BaseURL       string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	IconBaseURL   string `envconfig:"WEATHER_ICON_BASE_URL" default:"https://openweathermap.org/img/wn"`
	Timezone      string `envconfig:"WIDGET_TIMEZONE" default:"Local"`
	FallbackCity  string `envconfig:"WIDGET_FALLBACK_CITY" default:"Manila"`
	DefaultTheme  string `envconfig:"WIDGET_DEFAULT_THEME" default:"day"`
	EnableLogging bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath   string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_client.log"`
}

// Location loads the time zone used for forecast day buckets
func (w WeatherConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("invalid WIDGET_TIMEZONE %q", w.Timezone), err)
	}
	return loc, nil
}

// GeolocationMode selects how the startup position is obtained
type GeolocationMode int

const (
	GeolocationModeUnknown GeolocationMode = iota
	GeolocationModeNone
	GeolocationModeStatic
	GeolocationModeIP
)

// String returns the string representation of geolocation mode
func (g GeolocationMode) String() string {
	switch g {
	case GeolocationModeNone:
		return "none"
	case GeolocationModeStatic:
		return "static"
	case GeolocationModeIP:
		return "ip"
	default:
		return "unknown"
	}
}

// IsValid checks if the geolocation mode is valid
func (g GeolocationMode) IsValid() bool {
	return g == GeolocationModeNone || g == GeolocationModeStatic || g == GeolocationModeIP
}

// GeolocationModeFromString converts string to GeolocationMode enum
func GeolocationModeFromString(s string) GeolocationMode {
	switch s {
	case "none":
		return GeolocationModeNone
	case "static":
		return GeolocationModeStatic
	case "ip":
		return GeolocationModeIP
	default:
		return GeolocationModeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (g *GeolocationMode) UnmarshalText(text []byte) error {
	*g = GeolocationModeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (g GeolocationMode) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

type GeolocationConfig struct {
	Mode      GeolocationMode `envconfig:"GEOLOCATION_MODE" default:"none"`
	Latitude  float64         `envconfig:"GEOLOCATION_LAT"`
	Longitude float64         `envconfig:"GEOLOCATION_LON"`
	IPURL     string          `envconfig:"GEOLOCATION_IP_URL" default:"http://ip-api.com/json"`
}

// PreferenceStoreType represents where the theme preference is kept
type PreferenceStoreType int

const (
	PreferenceStoreUnknown PreferenceStoreType = iota
	PreferenceStoreMemory
	PreferenceStoreRedis
	PreferenceStoreDatabase
)

// String returns the string representation of preference store type
func (p PreferenceStoreType) String() string {
	switch p {
	case PreferenceStoreMemory:
		return "memory"
	case PreferenceStoreRedis:
		return "redis"
	case PreferenceStoreDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the preference store type is valid
func (p PreferenceStoreType) IsValid() bool {
	return p == PreferenceStoreMemory || p == PreferenceStoreRedis || p == PreferenceStoreDatabase
}

// PreferenceStoreTypeFromString converts string to PreferenceStoreType enum
func PreferenceStoreTypeFromString(s string) PreferenceStoreType {
	switch s {
	case "memory":
		return PreferenceStoreMemory
	case "redis":
		return PreferenceStoreRedis
	case "database":
		return PreferenceStoreDatabase
	default:
		return PreferenceStoreUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (p *PreferenceStoreType) UnmarshalText(text []byte) error {
	*p = PreferenceStoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (p PreferenceStoreType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type PreferencesConfig struct {
	Type     PreferenceStoreType `envconfig:"PREFERENCE_STORE" default:"memory"`
	Redis    RedisConfig         `split_words:"true"`
	Database DatabaseConfig      `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"weatherwidget"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"weatherwidget.db"`
}

// GetDSN returns the connection string for the configured driver
func (c DatabaseConfig) GetDSN() string {
	if c.Driver == DatabaseDriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Geolocation.Validate(); err != nil {
		return err
	}
	if err := c.Preferences.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.APIKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if !isHTTPURL(w.BaseURL) {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if !isHTTPURL(w.IconBaseURL) {
		return errors.NewConfigurationError("WEATHER_ICON_BASE_URL must start with http:// or https://", nil)
	}
	if _, err := w.Location(); err != nil {
		return err
	}
	if strings.TrimSpace(w.FallbackCity) == "" {
		return errors.NewConfigurationError("WIDGET_FALLBACK_CITY cannot be empty", nil)
	}
	if !validation.IsThemeTag(w.DefaultTheme) {
		return errors.NewConfigurationError("WIDGET_DEFAULT_THEME must be a lowercase tag", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is set", nil)
	}
	return nil
}

func (g *GeolocationConfig) Validate() error {
	if !g.Mode.IsValid() {
		return errors.NewConfigurationError("GEOLOCATION_MODE must be one of: none, static, ip", nil)
	}

	switch g.Mode {
	case GeolocationModeStatic:
		if g.Latitude < -90 || g.Latitude > 90 {
			return errors.NewConfigurationError("GEOLOCATION_LAT must be between -90 and 90", nil)
		}
		if g.Longitude < -180 || g.Longitude > 180 {
			return errors.NewConfigurationError("GEOLOCATION_LON must be between -180 and 180", nil)
		}
	case GeolocationModeIP:
		if !isHTTPURL(g.IPURL) {
			return errors.NewConfigurationError("GEOLOCATION_IP_URL must start with http:// or https://", nil)
		}
	}
	return nil
}

func (p *PreferencesConfig) Validate() error {
	if !p.Type.IsValid() {
		return errors.NewConfigurationError("PREFERENCE_STORE must be one of: memory, redis, database", nil)
	}

	switch p.Type {
	case PreferenceStoreRedis:
		return p.Redis.Validate()
	case PreferenceStoreDatabase:
		return p.Database.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using the Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DatabaseDriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty", nil)
		}
		return nil
	case DatabaseDriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
}

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
