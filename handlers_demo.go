package main

import "net/http"

// Canned demo payloads. These are constants in all but declaration: the demo
// endpoints must return byte-identical bodies across calls and have no side
// effects.

var demoWeather = WeatherReport{
	TemperatureC:    30.5,
	RainProbability: 20,
	Humidity:        65,
	WindSpeed:       12,
	Recommendation:  adviceNormal,
}

var demoMandi = MandiReport{
	District: "Bhopal",
	Items: []MandiItem{
		{Crop: "Wheat", PricePerQuintal: 2180},
		{Crop: "Rice", PricePerQuintal: 2390},
		{Crop: "Cotton", PricePerQuintal: 6150},
		{Crop: "Soybean", PricePerQuintal: 4860},
	},
	Trend: []MandiTrendPoint{
		{Date: "2025-06-02", Crop: "Wheat", PricePerQuintal: 2140},
		{Date: "2025-06-03", Crop: "Wheat", PricePerQuintal: 2165},
		{Date: "2025-06-04", Crop: "Wheat", PricePerQuintal: 2170},
		{Date: "2025-06-05", Crop: "Wheat", PricePerQuintal: 2180},
	},
	BestCrop:  "Cotton",
	BestPrice: 6150,
	BestMandi: "Bhopal Central",
}

var demoDisease = DiseaseDetection{
	Crop:           "tomato",
	Disease:        "Leaf Blight (Tomato)",
	Confidence:     0.87,
	Recommendation: "Apply Mancozeb 2g/L water, remove infected leaves, avoid overhead irrigation.",
	Pesticide:      "Mancozeb 75% WP",
	CostEstimate:   "₹450 per acre",
	Tips:           []string{"Rotate crops every season", "Avoid waterlogging", "Burn infected residue away from the field"},
}

var demoFertilizer = fertilizerAdvice{
	Crop:           "Wheat",
	Stage:          "Tillering",
	NPK:            "120:60:40",
	Recommendation: "Apply 50kg/acre urea after first irrigation and keep the field weed-free.",
}

func (a *App) handleDemoWeather(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, demoWeather)
}

func (a *App) handleDemoMandi(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, demoMandi)
}

func (a *App) handleDemoDetectDisease(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, demoDisease)
}

func (a *App) handleDemoFertilizer(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, demoFertilizer)
}
