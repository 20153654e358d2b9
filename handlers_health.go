package main

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type healthResp struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURLSet   bool     `json:"database_url_set"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (a *App) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Smart Krishi Backend Running"})
}

// handleTest reports store reachability without ever failing the request:
// a broken store shows up as degraded status, not as an error response.
func (a *App) handleTest(w http.ResponseWriter, r *http.Request) {
	resp := healthResp{
		Backend:          "running",
		Database:         "unavailable",
		DatabaseURLSet:   a.cfg.MongoURI != "",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if !a.storeEnabled() {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.DatabaseName = a.db.Name()
	resp.ConnectionStatus = "connected"

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	names, err := a.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		resp.Database = "connected but error: " + truncate(err.Error(), 80)
		writeJSON(w, http.StatusOK, resp)
		return
	}
	if len(names) > 10 {
		names = names[:10]
	}
	resp.Database = "connected"
	resp.Collections = names
	writeJSON(w, http.StatusOK, resp)
}
