package main

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	MongoURI string // empty means the store stays disabled
	MongoDB  string

	WeatherAPIKey  string // empty means mock weather only
	WeatherBaseURL string
	WeatherTimeout time.Duration

	Port string
}

// loadConfig reads settings from environment variables, applying defaults
// where unset. DATABASE_URL has no default on purpose: without it the store
// runs disabled and persistence endpoints degrade instead of failing startup.
func loadConfig() (Config, error) {
	cfg := Config{
		MongoURI:       os.Getenv("DATABASE_URL"),
		MongoDB:        getenv("MONGO_DB", "smartkrishi"),
		WeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		WeatherBaseURL: getenv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
		Port:           getenv("PORT", "8000"),
	}

	timeoutStr := getenv("WEATHER_TIMEOUT", "8s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return Config{}, fmt.Errorf("invalid WEATHER_TIMEOUT %q", timeoutStr)
	}
	cfg.WeatherTimeout = timeout

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
