package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drishti-labs/police-admin-api/api/handlers"
	"github.com/drishti-labs/police-admin-api/facerec"
)

func TestMatchHandler_DefaultsApplied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/match", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "5", r.FormValue("max_results"))
		assert.Equal(t, "80", r.FormValue("similarity_threshold"))
		assert.Equal(t, "false", r.FormValue("create_alert"))
		w.Write([]byte(`{"matches": [{"person_id": "p1", "confidence": 88.2}]}`))
	}))
	defer srv.Close()

	req := multipartRequest(t, "/api/v1/match", "image", "query.png", fakeImage, nil)
	rr := httptest.NewRecorder()
	handlers.Match{FaceRec: facerec.New(srv.URL, "")}.MatchHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "88.2")
}

func TestMatchHandler_ParamsForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "10", r.FormValue("max_results"))
		assert.Equal(t, "65.5", r.FormValue("similarity_threshold"))
		assert.Equal(t, "true", r.FormValue("create_alert"))
		w.Write([]byte(`{"matches": [], "alert_id": "al-9"}`))
	}))
	defer srv.Close()

	req := multipartRequest(t, "/api/v1/match", "image", "query.png", fakeImage, map[string]string{
		"max_results":          "10",
		"similarity_threshold": "65.5",
		"create_alert":         "true",
	})
	rr := httptest.NewRecorder()
	handlers.Match{FaceRec: facerec.New(srv.URL, "")}.MatchHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "al-9")
}

func TestMatchHandler_MissingImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	}))
	defer srv.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader("not multipart"))
	rr := httptest.NewRecorder()
	handlers.Match{FaceRec: facerec.New(srv.URL, "")}.MatchHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMatchURLHandler_DefaultsApplied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/match/url", r.URL.Path)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://img.example.com/q.jpg", body["image_url"])
		assert.Equal(t, float64(5), body["max_results"])
		assert.Equal(t, float64(80), body["similarity_threshold"])
		w.Write([]byte(`{"matches": []}`))
	}))
	defer srv.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/url",
		strings.NewReader(`{"image_url": "https://img.example.com/q.jpg"}`))
	rr := httptest.NewRecorder()
	handlers.Match{FaceRec: facerec.New(srv.URL, "")}.MatchURLHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMatchURLHandler_ExplicitZeroThresholdForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(0), body["similarity_threshold"])
		w.Write([]byte(`{"matches": []}`))
	}))
	defer srv.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/url",
		strings.NewReader(`{"image_url": "https://img.example.com/q.jpg", "similarity_threshold": 0}`))
	rr := httptest.NewRecorder()
	handlers.Match{FaceRec: facerec.New(srv.URL, "")}.MatchURLHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMatchURLHandler_MissingURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called")
	}))
	defer srv.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match/url", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handlers.Match{FaceRec: facerec.New(srv.URL, "")}.MatchURLHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
