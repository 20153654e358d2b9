package main

// Request/response DTOs. Keep them minimal and explicit.

type loginReq struct {
	Phone string `json:"phone"`
}

type loginResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type contactReq struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Village  string `json:"village,omitempty"`
	District string `json:"district,omitempty"`
	Message  string `json:"message,omitempty"`
}

type createdResp struct {
	ID string `json:"id"`
}

type subscribeReq struct {
	UserID string   `json:"userId"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

// DiseaseDetection is the mock inference result. Never persisted.
type DiseaseDetection struct {
	Crop           string   `json:"crop,omitempty"`
	Disease        string   `json:"disease"`
	Confidence     float64  `json:"confidence"`
	Recommendation string   `json:"recommendation"`
	Pesticide      string   `json:"pesticide"`
	CostEstimate   string   `json:"cost_estimate"`
	Tips           []string `json:"tips"`
}

// legacyDiseaseResp mirrors the original /api/upload response shape.
type legacyDiseaseResp struct {
	Disease        string  `json:"disease"`
	Confidence     float64 `json:"confidence"`
	Recommendation string  `json:"recommendation"`
}

// WeatherReport is the live-or-mock weather payload. The recommendation is
// always derived from the other four fields via the irrigation rule.
type WeatherReport struct {
	TemperatureC    float64 `json:"temperature_c"`
	RainProbability int     `json:"rain_probability"`
	Humidity        int     `json:"humidity"`
	WindSpeed       float64 `json:"wind_speed"`
	Recommendation  string  `json:"recommendation"`
}

type MandiItem struct {
	Crop            string `json:"crop"`
	PricePerQuintal int    `json:"price_per_quintal"`
}

type MandiTrendPoint struct {
	Date            string `json:"date"`
	Crop            string `json:"crop"`
	PricePerQuintal int    `json:"price_per_quintal"`
}

type MandiReport struct {
	District  string            `json:"district"`
	Items     []MandiItem       `json:"items"`
	Trend     []MandiTrendPoint `json:"trend"`
	BestCrop  string            `json:"best_crop"`
	BestPrice int               `json:"best_price"`
	BestMandi string            `json:"best_mandi"`
}

// Legacy static list shapes, kept for older frontend builds.

type weatherItem struct {
	Time         string  `json:"time"`
	TemperatureC float64 `json:"temperature_c"`
	RainfallMm   float64 `json:"rainfall_mm"`
	Tip          string  `json:"tip"`
}

type mandiPrice struct {
	Crop            string `json:"crop"`
	Location        string `json:"location"`
	PricePerQuintal int    `json:"price_per_quintal"`
}

type fertilizerAdvice struct {
	Crop           string `json:"crop"`
	Stage          string `json:"stage"`
	NPK            string `json:"npk"`
	Recommendation string `json:"recommendation"`
}
