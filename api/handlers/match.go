package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/facerec"
)

const defaultMaxResults = 5

// Match exported for testing purposes
type Match struct {
	FaceRec        *facerec.Client
	MaxUploadBytes int64
}

// MatchHandler searches the index with an uploaded query image
func (m Match) MatchHandler(w http.ResponseWriter, r *http.Request) {
	maxMemory := m.MaxUploadBytes
	if maxMemory <= 0 {
		maxMemory = config.DefaultMaxUploadBytes
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		config.ErrorStatus("image file is required", http.StatusBadRequest, w, err)
		return
	}
	defer file.Close()

	params, err := matchParamsFromForm(r)
	if err != nil {
		config.ErrorStatus("invalid match parameters", http.StatusBadRequest, w, err)
		return
	}

	result, err := m.FaceRec.MatchImage(r.Context(), facerec.ImageFile{
		Name:   header.Filename,
		Size:   header.Size,
		Reader: file,
	}, params)
	if err != nil {
		facerecErrorStatus("failed to run face match", w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// matchURLBody keeps the threshold as a pointer: an explicit 0 is a valid
// threshold and must not be confused with the field being absent
type matchURLBody struct {
	ImageURL            string   `json:"image_url"`
	MaxResults          int      `json:"max_results"`
	SimilarityThreshold *float64 `json:"similarity_threshold"`
	CreateAlert         bool     `json:"create_alert"`
	SenderID            string   `json:"sender_id"`
}

// MatchURLHandler searches the index with an already-hosted query image
func (m Match) MatchURLHandler(w http.ResponseWriter, r *http.Request) {
	var body matchURLBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode match request", http.StatusBadRequest, w, err)
		return
	}

	params := facerec.MatchParams{
		MaxResults:          body.MaxResults,
		SimilarityThreshold: config.DefaultMatchThreshold,
		CreateAlert:         body.CreateAlert,
		SenderID:            body.SenderID,
	}
	if params.MaxResults == 0 {
		params.MaxResults = defaultMaxResults
	}
	if body.SimilarityThreshold != nil {
		params.SimilarityThreshold = *body.SimilarityThreshold
	}

	result, err := m.FaceRec.MatchURL(r.Context(), body.ImageURL, params)
	if err != nil {
		facerecErrorStatus("failed to run face match", w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func matchParamsFromForm(r *http.Request) (facerec.MatchParams, error) {
	params := facerec.MatchParams{
		MaxResults:          defaultMaxResults,
		SimilarityThreshold: config.DefaultMatchThreshold,
		CreateAlert:         r.FormValue("create_alert") == "true",
		SenderID:            r.FormValue("sender_id"),
	}

	if v := r.FormValue("max_results"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return params, err
		}
		params.MaxResults = n
	}
	if v := r.FormValue("similarity_threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return params, err
		}
		params.SimilarityThreshold = f
	}
	return params, nil
}
