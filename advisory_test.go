package main

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAdvisor(seed int64) *advisor {
	at := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	return newAdvisor(rand.New(rand.NewSource(seed)), clockwork.NewFakeClockAt(at))
}

func TestIrrigationAdvice_DecisionTable(t *testing.T) {
	cases := []struct {
		name     string
		temp     float64
		rain     int
		humidity int
		wind     float64
		want     string
	}{
		{"rain dominates", 25, 60, 50, 5, adviceRainExpected},
		{"rain wins over hot and dry", 36, 75, 30, 5, adviceRainExpected},
		{"rain wins over wind", 25, 90, 50, 30, adviceRainExpected},
		{"hot and dry", 34, 10, 39, 5, adviceHotDry},
		{"hot but humid is not hot-dry", 36, 10, 45, 5, adviceNormal},
		{"hot and dry wins over wind", 35, 10, 30, 25, adviceHotDry},
		{"windy", 28, 10, 50, 20.5, adviceWindy},
		{"wind exactly 20 is not windy", 28, 10, 50, 20, adviceNormal},
		{"humid", 28, 10, 81, 5, adviceHumid},
		{"humidity exactly 80 is not humid", 28, 10, 80, 5, adviceNormal},
		{"windy wins over humid", 28, 10, 85, 25, adviceWindy},
		{"rain just below threshold", 28, 59, 50, 5, adviceNormal},
		{"all calm", 28, 0, 50, 5, adviceNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := irrigationAdvice(tc.temp, tc.rain, tc.humidity, tc.wind)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMockWeather_Ranges(t *testing.T) {
	g := testAdvisor(1)
	for i := 0; i < 500; i++ {
		r := g.mockWeather()
		assert.GreaterOrEqual(t, r.TemperatureC, 24.0)
		assert.LessOrEqual(t, r.TemperatureC, 35.0)
		assert.GreaterOrEqual(t, r.RainProbability, 0)
		assert.LessOrEqual(t, r.RainProbability, 90)
		assert.GreaterOrEqual(t, r.Humidity, 35)
		assert.LessOrEqual(t, r.Humidity, 88)
		assert.GreaterOrEqual(t, r.WindSpeed, 2.0)
		assert.LessOrEqual(t, r.WindSpeed, 18.0)
	}
}

func TestMockWeather_AdvisoryMatchesReadings(t *testing.T) {
	g := testAdvisor(2)
	for i := 0; i < 500; i++ {
		r := g.mockWeather()
		want := irrigationAdvice(r.TemperatureC, r.RainProbability, r.Humidity, r.WindSpeed)
		require.Equal(t, want, r.Recommendation)
	}
}

func TestMockWeather_SeededIsReproducible(t *testing.T) {
	a := testAdvisor(7).mockWeather()
	b := testAdvisor(7).mockWeather()
	assert.Equal(t, a, b)
}

func TestMandiReport_Shape(t *testing.T) {
	g := testAdvisor(3)
	r := g.mandiReport("bhopal")

	assert.Equal(t, "Bhopal", r.District)
	assert.Equal(t, "Bhopal Central", r.BestMandi)
	assert.Len(t, r.Items, 4)
	assert.Len(t, r.Trend, 28)
}

func TestMandiReport_BestIsMaxOfItems(t *testing.T) {
	g := testAdvisor(4)
	for i := 0; i < 100; i++ {
		r := g.mandiReport("indore")
		max := 0
		var maxCrop string
		for _, it := range r.Items {
			if it.PricePerQuintal > max {
				max = it.PricePerQuintal
				maxCrop = it.Crop
			}
		}
		require.Equal(t, max, r.BestPrice)
		require.Equal(t, maxCrop, r.BestCrop)
	}
}

func TestMandiReport_PricesWithinBand(t *testing.T) {
	g := testAdvisor(5)
	bases := map[string]int{"Wheat": 2150, "Rice": 2400, "Cotton": 6100, "Soybean": 4900}

	r := g.mandiReport("nagpur")
	for _, it := range r.Items {
		base := bases[it.Crop]
		require.NotZero(t, base, "unknown crop %q", it.Crop)
		assert.GreaterOrEqual(t, it.PricePerQuintal, base-mandiPriceBand)
		assert.LessOrEqual(t, it.PricePerQuintal, base+mandiPriceBand)
	}
	for _, p := range r.Trend {
		base := bases[p.Crop]
		require.NotZero(t, base, "unknown crop %q", p.Crop)
		assert.GreaterOrEqual(t, p.PricePerQuintal, base-mandiPriceBand)
		assert.LessOrEqual(t, p.PricePerQuintal, base+mandiPriceBand)
	}
}

func TestMandiReport_TrendCoversSevenDays(t *testing.T) {
	g := testAdvisor(6)
	r := g.mandiReport("bhopal")

	// Fake clock is pinned to 2025-06-08, so the trend runs 06-02..06-08.
	days := map[string]int{}
	for _, p := range r.Trend {
		days[p.Date]++
	}
	require.Len(t, days, 7)
	assert.Equal(t, 4, days["2025-06-08"])
	assert.Equal(t, 4, days["2025-06-02"])
	assert.Equal(t, "2025-06-02", r.Trend[0].Date)
	assert.Equal(t, "2025-06-08", r.Trend[27].Date)
}

func TestDetectDisease_KnownProfileAndRanges(t *testing.T) {
	g := testAdvisor(8)
	byDisease := map[string]diseaseProfile{}
	for _, p := range diseaseProfiles {
		byDisease[p.disease] = p
	}

	for i := 0; i < 100; i++ {
		d := g.detectDisease("")
		p, ok := byDisease[d.Disease]
		require.True(t, ok, "unknown disease %q", d.Disease)
		assert.Equal(t, p.pesticide, d.Pesticide)
		assert.Equal(t, p.recommendation, d.Recommendation)
		assert.Equal(t, p.tips, d.Tips)
		assert.GreaterOrEqual(t, d.Confidence, 0.82)
		assert.LessOrEqual(t, d.Confidence, 0.97)
		assert.Regexp(t, `^₹\d+ per acre$`, d.CostEstimate)
	}
}

func TestDetectDisease_CropEchoedIntoLabel(t *testing.T) {
	g := testAdvisor(9)
	d := g.detectDisease("tomato")
	assert.Equal(t, "tomato", d.Crop)
	assert.True(t, strings.HasSuffix(d.Disease, "(Tomato)"), "label %q should echo the crop", d.Disease)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Bhopal", titleCase("bhopal"))
	assert.Equal(t, "Bhopal", titleCase("BHOPAL"))
	assert.Equal(t, "New Delhi", titleCase("new delhi"))
	assert.Equal(t, "", titleCase("  "))
}
