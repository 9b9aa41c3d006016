package facerec_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drishti-labs/police-admin-api/facerec"
)

func testImage() facerec.ImageFile {
	return facerec.ImageFile{Name: "query.jpg", Size: 4, Reader: strings.NewReader("abcd")}
}

func TestMatchImage_MaxResultsBoundaries(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"matches": []}`))
	}))
	defer srv.Close()

	c := facerec.New(srv.URL, "")

	_, err := c.MatchImage(context.Background(), testImage(), facerec.MatchParams{MaxResults: 0, SimilarityThreshold: 80})
	assert.True(t, facerec.IsValidation(err))

	_, err = c.MatchImage(context.Background(), testImage(), facerec.MatchParams{MaxResults: 101, SimilarityThreshold: 80})
	assert.True(t, facerec.IsValidation(err))

	assert.Equal(t, 0, calls)

	_, err = c.MatchImage(context.Background(), testImage(), facerec.MatchParams{MaxResults: 1, SimilarityThreshold: 80})
	assert.NoError(t, err)

	_, err = c.MatchImage(context.Background(), testImage(), facerec.MatchParams{MaxResults: 100, SimilarityThreshold: 80})
	assert.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestMatchImage_ThresholdBoundaries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"matches": []}`))
	}))
	defer srv.Close()

	c := facerec.New(srv.URL, "")

	_, err := c.MatchImage(context.Background(), testImage(), facerec.MatchParams{MaxResults: 1, SimilarityThreshold: -0.1})
	assert.True(t, facerec.IsValidation(err))

	_, err = c.MatchImage(context.Background(), testImage(), facerec.MatchParams{MaxResults: 1, SimilarityThreshold: 100.1})
	assert.True(t, facerec.IsValidation(err))

	_, err = c.MatchImage(context.Background(), testImage(), facerec.MatchParams{MaxResults: 1, SimilarityThreshold: 0})
	assert.NoError(t, err)

	_, err = c.MatchImage(context.Background(), testImage(), facerec.MatchParams{MaxResults: 1, SimilarityThreshold: 100})
	assert.NoError(t, err)
}

func TestMatchImage_FormFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "1", r.FormValue("max_results"))
		assert.Equal(t, "80", r.FormValue("similarity_threshold"))
		assert.Equal(t, "false", r.FormValue("create_alert"))
		assert.Empty(t, r.FormValue("sender_id"))
		_, hdr, err := r.FormFile("image")
		assert.NoError(t, err)
		assert.Equal(t, "query.jpg", hdr.Filename)
		w.Write([]byte(`{"matches": [{"person_id": "p1", "name": "A", "confidence": 91.4}]}`))
	}))
	defer srv.Close()

	c := facerec.New(srv.URL, "")
	resp, err := c.MatchImage(context.Background(), testImage(), facerec.MatchParams{
		MaxResults:          1,
		SimilarityThreshold: 80,
		CreateAlert:         false,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Matches, 1)
	// confidence is forwarded untouched
	assert.Equal(t, 91.4, resp.Matches[0].Confidence)
}

func TestMatchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/match/url", r.URL.Path)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://img.example/q.jpg", body["image_url"])
		assert.Equal(t, true, body["create_alert"])
		assert.Equal(t, "bot-7", body["sender_id"])
		w.Write([]byte(`{"matches": [], "alert_id": "al-1"}`))
	}))
	defer srv.Close()

	c := facerec.New(srv.URL, "")
	resp, err := c.MatchURL(context.Background(), "https://img.example/q.jpg", facerec.MatchParams{
		MaxResults:          5,
		SimilarityThreshold: 70,
		CreateAlert:         true,
		SenderID:            "bot-7",
	})

	assert.NoError(t, err)
	assert.Equal(t, "al-1", resp.AlertID)
}

func TestMatchURL_MissingURL(t *testing.T) {
	c := facerec.New("http://unused", "")
	_, err := c.MatchURL(context.Background(), "", facerec.MatchParams{MaxResults: 1, SimilarityThreshold: 80})
	assert.True(t, facerec.IsValidation(err))
}
