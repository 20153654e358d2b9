package main

import (
	"encoding/json"
	"net/http"
	"strconv"

	"smartkrishi/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleWeatherByCoords serves current weather plus an irrigation advisory.
// With a provider key configured it calls the external provider; otherwise it
// generates mock readings. Either way the advisory is derived from the values
// actually returned.
func (a *App) handleWeatherByCoords(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(chi.URLParam(r, "lat"), 64)
	if err != nil {
		writeValidationError(w, "lat must be a number")
		return
	}
	lon, err := strconv.ParseFloat(chi.URLParam(r, "lon"), 64)
	if err != nil {
		writeValidationError(w, "lon must be a number")
		return
	}
	if !validCoords(lat, lon) {
		writeValidationError(w, "lat must be in [-90,90] and lon in [-180,180]")
		return
	}

	var report WeatherReport
	if a.weather != nil {
		report, err = a.weather.Current(r.Context(), lat, lon)
		if err != nil {
			a.log.Warn("weather provider failed", zap.Error(err))
			writeError(w, http.StatusBadGateway, codeUpstream, truncate(err.Error(), maxErrorDetail))
			return
		}
	} else {
		report = a.adv.mockWeather()
	}
	report.Recommendation = irrigationAdvice(report.TemperatureC, report.RainProbability, report.Humidity, report.WindSpeed)
	writeJSON(w, http.StatusOK, report)
}

// handleWeatherSubscribe persists a weather-alert subscription.
func (a *App) handleWeatherSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "bad json")
		return
	}
	if req.UserID == "" {
		writeValidationError(w, "userId is required")
		return
	}
	if req.Lat == nil || req.Lon == nil {
		writeValidationError(w, "lat and lon are required")
		return
	}
	if !validCoords(*req.Lat, *req.Lon) {
		writeValidationError(w, "lat must be in [-90,90] and lon in [-180,180]")
		return
	}
	if !a.storeEnabled() {
		writeStoreUnavailable(w)
		return
	}

	sub := models.WeatherAlertSubscription{
		UserID:    req.UserID,
		Latitude:  *req.Lat,
		Longitude: *req.Lon,
		CreatedAt: a.clock.Now().UTC(),
		Active:    true,
	}
	id, err := a.insertDocument(r.Context(), a.alerts, &sub)
	if err != nil {
		a.log.Error("subscription insert failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codePersistence, truncate(err.Error(), maxErrorDetail))
		return
	}
	writeJSON(w, http.StatusOK, createdResp{ID: id})
}

// handleLegacyWeather returns the fixed short-term forecast list used by
// older frontend builds. The location query parameter is accepted for
// compatibility but does not change the output.
func (a *App) handleLegacyWeather(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, legacyWeatherItems)
}

var legacyWeatherItems = []weatherItem{
	{Time: "Now", TemperatureC: 29.5, RainfallMm: 0.0, Tip: "Irrigate in evening"},
	{Time: "+3h", TemperatureC: 27.8, RainfallMm: 0.0, Tip: "Mulch to retain moisture"},
	{Time: "+6h", TemperatureC: 25.1, RainfallMm: 2.4, Tip: "Light showers expected"},
	{Time: "+24h", TemperatureC: 31.2, RainfallMm: 0.0, Tip: "Avoid midday irrigation"},
}

func validCoords(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
