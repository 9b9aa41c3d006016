package facerec_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drishti-labs/police-admin-api/facerec"
)

func TestPresignedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/images/presigned-url", r.URL.Path)
		w.Write([]byte(`{"url": "https://s3.example/signed?sig=abc", "expires_in": 3600}`))
	}))
	defer srv.Close()

	c := facerec.New(srv.URL, "")
	resp, err := c.PresignedURL(context.Background(), "faces/p1/0.jpg", "")

	assert.NoError(t, err)
	assert.Equal(t, "https://s3.example/signed?sig=abc", resp.URL)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestPresignedURL_RequiresExactlyOneInput(t *testing.T) {
	c := facerec.New("http://unused", "")

	_, err := c.PresignedURL(context.Background(), "", "")
	assert.True(t, facerec.IsValidation(err))

	_, err = c.PresignedURL(context.Background(), "key", "https://img.example/a.jpg")
	assert.True(t, facerec.IsValidation(err))
}

func TestResolveImageURL_FallsBackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := facerec.New(srv.URL, "")
	url := c.ResolveImageURL(context.Background(), "https://s3.example/raw/p1.jpg")

	assert.Equal(t, "https://s3.example/raw/p1.jpg", url)
}

func TestResolveImageURL_UsesPresignedWhenAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"url": "https://s3.example/signed", "expires_in": 600}`))
	}))
	defer srv.Close()

	c := facerec.New(srv.URL, "")
	url := c.ResolveImageURL(context.Background(), "https://s3.example/raw/p1.jpg")

	assert.Equal(t, "https://s3.example/signed", url)
}
