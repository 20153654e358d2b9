package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleMandiDistrict serves freshly generated prices, a 7-day trend and the
// best crop of the day for one district.
func (a *App) handleMandiDistrict(w http.ResponseWriter, r *http.Request) {
	district := chi.URLParam(r, "district")
	if strings.TrimSpace(district) == "" {
		writeValidationError(w, "district is required")
		return
	}
	writeJSON(w, http.StatusOK, a.adv.mandiReport(district))
}

var legacyMandiPrices = []mandiPrice{
	{Crop: "Wheat", Location: "Kanpur", PricePerQuintal: 2150},
	{Crop: "Rice", Location: "Raipur", PricePerQuintal: 2400},
	{Crop: "Cotton", Location: "Nagpur", PricePerQuintal: 6100},
	{Crop: "Soybean", Location: "Indore", PricePerQuintal: 4900},
}

// handleLegacyMandi returns the fixed price table with optional
// case-insensitive crop/district filters.
func (a *App) handleLegacyMandi(w http.ResponseWriter, r *http.Request) {
	crop := r.URL.Query().Get("crop")
	district := r.URL.Query().Get("district")

	out := make([]mandiPrice, 0, len(legacyMandiPrices))
	for _, p := range legacyMandiPrices {
		if crop != "" && !strings.EqualFold(p.Crop, crop) {
			continue
		}
		if district != "" && !strings.EqualFold(p.Location, district) {
			continue
		}
		out = append(out, p)
	}
	writeJSON(w, http.StatusOK, out)
}
