package main

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
)

// Irrigation advisories, one per rule. The rule order in irrigationAdvice is
// significant: earlier rules win when several match.
const (
	adviceRainExpected = "Rain expected soon. Postpone irrigation and ensure field drainage."
	adviceHotDry       = "Hot and dry conditions. Irrigate early morning or late evening and apply mulch."
	adviceWindy        = "Strong winds. Avoid spraying pesticides and give light irrigation only."
	adviceHumid        = "High humidity raises fungal risk. Reduce irrigation and monitor leaves."
	adviceNormal       = "Conditions are normal. Follow your regular irrigation schedule."
)

// irrigationAdvice maps weather readings to an advisory text. Ordered
// decision list, first match wins.
func irrigationAdvice(tempC float64, rainProbability, humidity int, windSpeed float64) string {
	switch {
	case rainProbability >= 60:
		return adviceRainExpected
	case tempC >= 34 && humidity < 40:
		return adviceHotDry
	case windSpeed > 20:
		return adviceWindy
	case humidity > 80:
		return adviceHumid
	default:
		return adviceNormal
	}
}

// advisor produces the mock inference and mock market responses. The random
// source and clock are injected so tests can pin exact output.
type advisor struct {
	mu    sync.Mutex // rand.Rand is not safe for concurrent use
	rng   *rand.Rand
	clock clockwork.Clock
}

func newAdvisor(rng *rand.Rand, clock clockwork.Clock) *advisor {
	return &advisor{rng: rng, clock: clock}
}

func (g *advisor) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *advisor) floatBetween(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

type diseaseProfile struct {
	disease        string
	pesticide      string
	recommendation string
	tips           []string
}

var diseaseProfiles = []diseaseProfile{
	{
		disease:        "Leaf Blight",
		pesticide:      "Mancozeb 75% WP",
		recommendation: "Apply Mancozeb 2g/L water, remove infected leaves, avoid overhead irrigation.",
		tips:           []string{"Rotate crops every season", "Avoid waterlogging", "Burn infected residue away from the field"},
	},
	{
		disease:        "Powdery Mildew",
		pesticide:      "Wettable Sulphur 80% WP",
		recommendation: "Spray wettable sulphur 2.5g/L at first sign of white patches.",
		tips:           []string{"Ensure good air circulation", "Avoid excess nitrogen", "Spray in the evening"},
	},
	{
		disease:        "Bacterial Leaf Spot",
		pesticide:      "Copper Oxychloride 50% WP",
		recommendation: "Spray copper oxychloride 3g/L and avoid working in wet fields.",
		tips:           []string{"Use certified seed", "Disinfect tools between rows", "Avoid splashing irrigation"},
	},
	{
		disease:        "Rust",
		pesticide:      "Propiconazole 25% EC",
		recommendation: "Apply propiconazole 1ml/L when orange pustules appear on leaves.",
		tips:           []string{"Sow resistant varieties", "Scout weekly after flowering", "Do not delay the second spray"},
	},
	{
		disease:        "Aphid Infestation",
		pesticide:      "Imidacloprid 17.8% SL",
		recommendation: "Spray imidacloprid 0.3ml/L on undersides of leaves; repeat after 15 days if needed.",
		tips:           []string{"Encourage ladybird beetles", "Remove weed hosts", "Use yellow sticky traps"},
	},
}

// detectDisease picks a random profile from the fixed set. The uploaded image
// and crop name do not influence the pick; the crop is only echoed into the
// label.
func (g *advisor) detectDisease(crop string) DiseaseDetection {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := diseaseProfiles[g.rng.Intn(len(diseaseProfiles))]
	label := p.disease
	if crop != "" {
		label = fmt.Sprintf("%s (%s)", p.disease, titleCase(crop))
	}
	confidence := float64(g.intBetween(82, 97)) / 100
	cost := g.intBetween(200, 800)

	return DiseaseDetection{
		Crop:           crop,
		Disease:        label,
		Confidence:     confidence,
		Recommendation: p.recommendation,
		Pesticide:      p.pesticide,
		CostEstimate:   fmt.Sprintf("₹%d per acre", cost),
		Tips:           p.tips,
	}
}

// mockWeather draws each reading independently from its fixed range and
// derives the advisory from the drawn values.
func (g *advisor) mockWeather() WeatherReport {
	g.mu.Lock()
	defer g.mu.Unlock()

	r := WeatherReport{
		TemperatureC:    roundTo1(g.floatBetween(24, 35)),
		RainProbability: g.intBetween(0, 90),
		Humidity:        g.intBetween(35, 88),
		WindSpeed:       roundTo1(g.floatBetween(2, 18)),
	}
	r.Recommendation = irrigationAdvice(r.TemperatureC, r.RainProbability, r.Humidity, r.WindSpeed)
	return r
}

// Crop price table. Base price per quintal, perturbed per call.
var mandiCrops = []struct {
	name string
	base int
}{
	{"Wheat", 2150},
	{"Rice", 2400},
	{"Cotton", 6100},
	{"Soybean", 4900},
}

const mandiPriceBand = 150 // uniform perturbation of ±band around base

// mandiReport builds today's prices, a 7-day trend (7 days x 4 crops = 28
// points) and the best crop of the day. Best price is the maximum of the
// freshly generated items, not of the trend.
func (g *advisor) mandiReport(district string) MandiReport {
	g.mu.Lock()
	defer g.mu.Unlock()

	label := titleCase(district)
	report := MandiReport{
		District:  label,
		Items:     make([]MandiItem, 0, len(mandiCrops)),
		Trend:     make([]MandiTrendPoint, 0, 7*len(mandiCrops)),
		BestMandi: label + " Central",
	}

	for _, c := range mandiCrops {
		price := c.base + g.intBetween(-mandiPriceBand, mandiPriceBand)
		report.Items = append(report.Items, MandiItem{Crop: c.name, PricePerQuintal: price})
		if price > report.BestPrice {
			report.BestPrice = price
			report.BestCrop = c.name
		}
	}

	today := g.clock.Now()
	for offset := 6; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset).Format("2006-01-02")
		for _, c := range mandiCrops {
			report.Trend = append(report.Trend, MandiTrendPoint{
				Date:            date,
				Crop:            c.name,
				PricePerQuintal: c.base + g.intBetween(-mandiPriceBand, mandiPriceBand),
			})
		}
	}
	return report
}

func roundTo1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}

// titleCase capitalizes each space-separated word ("bhopal" -> "Bhopal").
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
