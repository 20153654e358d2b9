package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// weatherClient calls an OpenWeather-compatible provider for current
// conditions. Used only when a provider key is configured; otherwise the
// advisor generates mock readings.
type weatherClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newWeatherClient(baseURL, apiKey string, timeout time.Duration) *weatherClient {
	return &weatherClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Current fetches current weather for the coordinates and maps it into the
// local response shape. Rain probability is derived from the last hour's
// precipitation volume: min(90, mm * 50), 0 when the field is absent.
// No retry on failure.
func (c *weatherClient) Current(ctx context.Context, lat, lon float64) (WeatherReport, error) {
	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"appid": {c.apiKey},
		"units": {"metric"},
	}
	u := c.baseURL + "/data/2.5/weather?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WeatherReport{}, fmt.Errorf("weather provider call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return WeatherReport{}, fmt.Errorf("weather provider status %d: %s", resp.StatusCode, body)
	}

	var ow openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&ow); err != nil {
		return WeatherReport{}, fmt.Errorf("decode weather response: %w", err)
	}

	rainProbability := 0
	if ow.Rain != nil && ow.Rain.OneHour > 0 {
		rainProbability = int(ow.Rain.OneHour * 50)
		if rainProbability > 90 {
			rainProbability = 90
		}
	}

	return WeatherReport{
		TemperatureC:    ow.Main.Temp,
		RainProbability: rainProbability,
		Humidity:        ow.Main.Humidity,
		WindSpeed:       ow.Wind.Speed,
	}, nil
}

// Provider response types (subset of the OpenWeather current weather API).

type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Rain *struct {
		OneHour float64 `json:"1h"`
	} `json:"rain,omitempty"`
}
