package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"weatherwidget.app/internal/mockserver"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	addr := os.Getenv("MOCK_WEATHER_ADDR")
	if addr == "" {
		addr = ":8081"
	}

	stub := &mockserver.OpenWeatherMap{APIKey: os.Getenv("OPENWEATHERMAP_API_KEY")}

	slog.Info("Mock OpenWeatherMap server starting", "addr", addr)
	if err := stub.Router().Run(addr); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
