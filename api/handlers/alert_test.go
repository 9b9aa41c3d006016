package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/drishti-labs/police-admin-api/api/handlers"
	"github.com/drishti-labs/police-admin-api/facerec"
)

// alertBackend fakes the alert endpoints of the face recognition service
type alertBackend struct {
	currentStatus string
	putCalled     bool
}

func (b *alertBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/alerts/a1":
			w.Write([]byte(`{"alert_id": "a1", "status": "` + b.currentStatus + `"}`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/v1/alerts/a1/status":
			b.putCalled = true
			w.Write([]byte(`{"alert_id": "a1", "status": "Verified"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func statusRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/alerts/a1/status", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"alert_id": "a1"})
}

func TestUpdateAlertStatus_PendingMovesToVerified(t *testing.T) {
	backend := &alertBackend{currentStatus: "Pending"}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	rr := httptest.NewRecorder()
	handlers.Alert{FaceRec: facerec.New(srv.URL, "")}.UpdateAlertStatusHandler(rr, statusRequest(`{"status": "Verified"}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, backend.putCalled)
	assert.Contains(t, rr.Body.String(), "Verified")
}

func TestUpdateAlertStatus_TerminalAlertConflicts(t *testing.T) {
	backend := &alertBackend{currentStatus: "Rejected"}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	rr := httptest.NewRecorder()
	handlers.Alert{FaceRec: facerec.New(srv.URL, "")}.UpdateAlertStatusHandler(rr, statusRequest(`{"status": "Verified"}`))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.False(t, backend.putCalled)
}

func TestUpdateAlertStatus_PendingIsNotATarget(t *testing.T) {
	backend := &alertBackend{currentStatus: "Pending"}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	rr := httptest.NewRecorder()
	handlers.Alert{FaceRec: facerec.New(srv.URL, "")}.UpdateAlertStatusHandler(rr, statusRequest(`{"status": "Pending"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, backend.putCalled)
}

func TestListAlerts_StatusFilterForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/alerts", r.URL.Path)
		assert.Equal(t, "Pending", r.URL.Query().Get("status"))
		w.Write([]byte(`{"data": [{"alert_id": "a1", "status": "Pending"}], "count": 1}`))
	}))
	defer srv.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts?status=Pending", nil)
	rr := httptest.NewRecorder()
	handlers.Alert{FaceRec: facerec.New(srv.URL, "")}.ListAlertsHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "a1")
}
