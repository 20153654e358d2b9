package main

import (
	"encoding/json"
	"net/http"
)

// Error codes surfaced to clients. Every handler failure maps to exactly one.
const (
	codeValidation       = "validation_error"
	codeUpstream         = "upstream_error"
	codePersistence      = "persistence_error"
	codeStoreUnavailable = "store_unavailable"
	codeInternal         = "internal_error"
)

// maxErrorDetail bounds upstream/store error text echoed to clients.
const maxErrorDetail = 120

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func writeValidationError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, codeValidation, message)
}

func writeStoreUnavailable(w http.ResponseWriter) {
	writeError(w, http.StatusServiceUnavailable, codeStoreUnavailable, "document store is not available")
}

// truncate caps error detail so raw driver or provider text never leaks
// unbounded into a response body.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
