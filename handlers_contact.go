package main

import (
	"encoding/json"
	"net/http"

	"smartkrishi/models"

	"go.uber.org/zap"
)

// handleContact validates and persists one contact-form submission, returning
// the generated document id.
func (a *App) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "bad json")
		return
	}
	if req.Name == "" || req.Phone == "" {
		writeValidationError(w, "name and phone are required")
		return
	}
	if !a.storeEnabled() {
		writeStoreUnavailable(w)
		return
	}

	sub := models.ContactSubmission{
		Name:     req.Name,
		Phone:    req.Phone,
		Village:  req.Village,
		District: req.District,
		Message:  req.Message,
		Source:   "web",
	}
	id, err := a.insertDocument(r.Context(), a.contacts, &sub)
	if err != nil {
		a.log.Error("contact insert failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codePersistence, truncate(err.Error(), maxErrorDetail))
		return
	}
	writeJSON(w, http.StatusOK, createdResp{ID: id})
}

// handleLogin is the mock OTP trigger. No code is generated or sent.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "bad json")
		return
	}
	if len(req.Phone) < 10 {
		writeValidationError(w, "Invalid phone number")
		return
	}
	writeJSON(w, http.StatusOK, loginResp{Success: true, Message: "OTP sent to your number"})
}
