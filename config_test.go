package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"DATABASE_URL", "MONGO_DB", "OPENWEATHER_API_KEY", "OPENWEATHER_BASE_URL", "WEATHER_TIMEOUT", "PORT"} {
		t.Setenv(k, "")
	}

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "smartkrishi", cfg.MongoDB)
	assert.Empty(t, cfg.WeatherAPIKey)
	assert.Equal(t, "https://api.openweathermap.org", cfg.WeatherBaseURL)
	assert.Equal(t, 8*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, "8000", cfg.Port)
}

func TestLoadConfig_CustomEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("MONGO_DB", "krishi_test")
	t.Setenv("OPENWEATHER_API_KEY", "abc123")
	t.Setenv("OPENWEATHER_BASE_URL", "http://localhost:9999")
	t.Setenv("WEATHER_TIMEOUT", "3s")
	t.Setenv("PORT", "9090")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "krishi_test", cfg.MongoDB)
	assert.Equal(t, "abc123", cfg.WeatherAPIKey)
	assert.Equal(t, "http://localhost:9999", cfg.WeatherBaseURL)
	assert.Equal(t, 3*time.Second, cfg.WeatherTimeout)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfig_InvalidWeatherTimeout(t *testing.T) {
	t.Setenv("WEATHER_TIMEOUT", "not-a-duration")
	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEATHER_TIMEOUT")
}

func TestLoadConfig_NegativeWeatherTimeout(t *testing.T) {
	t.Setenv("WEATHER_TIMEOUT", "-1s")
	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEATHER_TIMEOUT")
}
