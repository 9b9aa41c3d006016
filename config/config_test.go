package config_test

import (
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drishti-labs/police-admin-api/config"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	os.Setenv("FACEREC_URL", "http://localhost:8000")
	os.Unsetenv("MATCH_THRESHOLD")
	os.Unsetenv("MAX_UPLOAD_BYTES")

	conf := config.New()

	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
	assert.Equal(t, "http://localhost:8000", conf.FaceRecURL)
	assert.Equal(t, config.DefaultMatchThreshold, conf.MatchThreshold)
	assert.Equal(t, int64(config.DefaultMaxUploadBytes), conf.MaxUploadBytes)
}

func TestNewThresholdOverride(t *testing.T) {
	os.Setenv("MATCH_THRESHOLD", "92.5")
	defer os.Unsetenv("MATCH_THRESHOLD")

	conf := config.New()
	assert.Equal(t, 92.5, conf.MatchThreshold)
}

func TestNewThresholdInvalidFallsBack(t *testing.T) {
	os.Setenv("MATCH_THRESHOLD", "not-a-number")
	defer os.Unsetenv("MATCH_THRESHOLD")

	conf := config.New()
	assert.Equal(t, config.DefaultMatchThreshold, conf.MatchThreshold)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	config.ErrorStatus("failed to fetch alerts", 404, rr, assert.AnError)

	assert.Equal(t, 404, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to fetch alerts")
}
