package main

import (
	"io"
	"net/http"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// files spill to temp storage.
const maxUploadMemory = 10 << 20 // 10 MB

// handleDetectDisease accepts a multipart image upload plus a crop name and
// returns a mock inference result. The image bytes are read and discarded:
// content never influences the pick (no model is wired in).
func (a *App) handleDetectDisease(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeValidationError(w, "multipart form expected")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeValidationError(w, "file is required")
		return
	}
	defer file.Close()
	_, _ = io.Copy(io.Discard, file)

	crop := r.FormValue("crop")
	result := a.adv.detectDisease(crop)
	writeJSON(w, http.StatusOK, result)
}

// handleUpload is the legacy alias of detect-disease with a fixed response.
func (a *App) handleUpload(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, legacyDiseaseResp{
		Disease:        "Leaf Blight (example)",
		Confidence:     0.87,
		Recommendation: "Apply Mancozeb 2g/L water, remove infected leaves, avoid overhead irrigation.",
	})
}
