package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	WeatherClient  WeatherClient
	WeatherMetrics WeatherMetrics
	Geolocator     Geolocator

	// Preferences
	PreferenceStore PreferenceStore

	// Infrastructure
	WidgetMetrics WidgetMetrics
	Logger        Logger
}
