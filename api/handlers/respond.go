package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/facerec"
)

// respondJSON marshals v and writes it with the given status, falling back to
// the standard error body on marshal failure
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

// facerecErrorStatus writes the standard error body for a face recognition
// client failure, mapping the client's taxonomy onto a response status:
// validation errors stay 400, backend statuses pass through, and network or
// unknown failures become 502.
func facerecErrorStatus(message string, w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	if apiErr, ok := err.(*facerec.APIError); ok && apiErr.StatusCode > 0 {
		status = apiErr.StatusCode
	}
	config.ErrorStatus(message, status, w, err)
}
