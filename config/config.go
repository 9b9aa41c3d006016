package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// DefaultMatchThreshold is the similarity score at or above which an
// enrollment probe is treated as a likely duplicate of an existing record.
const DefaultMatchThreshold = 80.0

// DefaultMaxUploadBytes caps enrollment and match image uploads (10MB).
const DefaultMaxUploadBytes = 10 << 20

// DefaultRequestTimeoutSeconds bounds a whole request through the timeout
// middleware. Longer than the 30s backend call timeout so the enrollment
// probe-then-enroll sequence fits.
const DefaultRequestTimeoutSeconds = 90

// Config holds the project config values
type Config struct {
	URL              string
	DatabaseName     string
	BaseURL          string
	Port             string
	FaceRecURL       string
	FaceRecAPIKey    string
	MatchThreshold   float64
	MaxUploadBytes   int64
	RequestTimeout   time.Duration
	JWTSecret        string
	SendgridAPIKey   string
	AlertNotifyEmail string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:              os.Getenv("DB_URI"),
		DatabaseName:     os.Getenv("DB_NAME"),
		BaseURL:          os.Getenv("BASE_URL"),
		Port:             os.Getenv("PORT"),
		FaceRecURL:       os.Getenv("FACEREC_URL"),
		FaceRecAPIKey:    os.Getenv("FACEREC_API_KEY"),
		MatchThreshold:   envFloat("MATCH_THRESHOLD", DefaultMatchThreshold),
		MaxUploadBytes:   envInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),
		RequestTimeout:   time.Duration(envInt64("REQUEST_TIMEOUT_SECONDS", DefaultRequestTimeoutSeconds)) * time.Second,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		SendgridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		AlertNotifyEmail: os.Getenv("ALERT_NOTIFY_EMAIL"),
	}

}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		zap.S().Warnf("invalid %s=%q, using default %v", key, v, def)
		return def
	}
	return f
}

func envInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		zap.S().Warnf("invalid %s=%q, using default %v", key, v, def)
		return def
	}
	return n
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
	return
}
