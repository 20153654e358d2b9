package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"
)

// routes wires middlewares and endpoints.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger(a.log))
	r.Use(recovery(a.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", a.handleRoot)
	r.Get("/test", a.handleTest)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})
	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Route("/api", func(api chi.Router) {
		api.Post("/login", a.handleLogin)
		api.Post("/contact", a.handleContact)

		api.Post("/detect-disease", a.handleDetectDisease)
		api.Post("/upload", a.handleUpload)

		api.Get("/weather", a.handleLegacyWeather)
		api.Get("/weather/{lat}/{lon}", a.handleWeatherByCoords)
		api.Post("/weather/subscribe", a.handleWeatherSubscribe)

		api.Get("/mandi", a.handleLegacyMandi)
		api.Get("/mandi/{district}", a.handleMandiDistrict)

		api.Route("/demo", func(demo chi.Router) {
			demo.Get("/weather", a.handleDemoWeather)
			demo.Get("/mandi", a.handleDemoMandi)
			demo.Get("/detect-disease", a.handleDemoDetectDisease)
			demo.Get("/fertilizer", a.handleDemoFertilizer)
		})
	})

	return r
}
