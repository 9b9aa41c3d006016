package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/facerec"
	"github.com/drishti-labs/police-admin-api/models"
)

// Alert exported for testing purposes
type Alert struct {
	FaceRec *facerec.Client
}

// ListAlertsHandler proxies the alert listing, optionally filtered by status
func (a Alert) ListAlertsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := listParams(r)
	if err != nil {
		config.ErrorStatus("invalid paging parameters", http.StatusBadRequest, w, err)
		return
	}

	alerts, meta, err := a.FaceRec.ListAlerts(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		facerecErrorStatus("failed to list alerts", w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": alerts,
		"meta":   meta,
	})
}

// GetAlertHandler returns one alert by id
func (a Alert) GetAlertHandler(w http.ResponseWriter, r *http.Request) {
	alert, err := a.FaceRec.GetAlert(r.Context(), mux.Vars(r)["alert_id"])
	if err != nil {
		facerecErrorStatus("failed to get alert", w, err)
		return
	}
	respondJSON(w, http.StatusOK, alert)
}

type alertStatusBody struct {
	Status string `json:"status"`
}

// UpdateAlertStatusHandler moves a pending alert to Verified or Rejected.
// The current status is checked first: a terminal alert is never re-dispositioned,
// even if the backend would accept the write.
func (a Alert) UpdateAlertStatusHandler(w http.ResponseWriter, r *http.Request) {
	alertID := mux.Vars(r)["alert_id"]

	var body alertStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode status request", http.StatusBadRequest, w, err)
		return
	}
	if body.Status != models.AlertStatusVerified && body.Status != models.AlertStatusRejected {
		config.ErrorStatus("status must be Verified or Rejected", http.StatusBadRequest, w, nil)
		return
	}

	current, err := a.FaceRec.GetAlert(r.Context(), alertID)
	if err != nil {
		facerecErrorStatus("failed to get alert", w, err)
		return
	}
	if current.Status != models.AlertStatusPending {
		config.ErrorStatus("alert has already been dispositioned", http.StatusConflict, w, nil)
		return
	}

	updated, err := a.FaceRec.UpdateAlertStatus(r.Context(), alertID, body.Status)
	if err != nil {
		facerecErrorStatus("failed to update alert status", w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
