package facerec

import (
	"context"
	"net/http"
	"strconv"

	"github.com/drishti-labs/police-admin-api/models"
)

// MatchParams are the shared knobs of the upload and URL match calls
type MatchParams struct {
	MaxResults          int
	SimilarityThreshold float64
	CreateAlert         bool
	// SenderID attributes the resulting alert to an external bot channel
	SenderID string
}

func (p *MatchParams) validate() *APIError {
	if p.MaxResults < 1 || p.MaxResults > 100 {
		return validationError("max_results must be between 1 and 100, got %d", p.MaxResults)
	}
	if p.SimilarityThreshold < 0 || p.SimilarityThreshold > 100 {
		return validationError("similarity_threshold must be between 0 and 100, got %v", p.SimilarityThreshold)
	}
	return nil
}

// MatchImage searches the index with an uploaded query image
func (c *Client) MatchImage(ctx context.Context, img ImageFile, p MatchParams) (*models.MatchResponse, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := c.validateImage(img); err != nil {
		return nil, err
	}

	fields := []multipartField{
		{"max_results", strconv.Itoa(p.MaxResults)},
		{"similarity_threshold", strconv.FormatFloat(p.SimilarityThreshold, 'f', -1, 64)},
		{"create_alert", strconv.FormatBool(p.CreateAlert)},
	}
	if p.SenderID != "" {
		fields = append(fields, multipartField{"sender_id", p.SenderID})
	}

	result := &models.MatchResponse{}
	err := c.sendMultipart(ctx, http.MethodPost, apiPrefix+"/match",
		fields, map[string][]ImageFile{"image": {img}}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

type matchURLRequest struct {
	ImageURL            string  `json:"image_url"`
	MaxResults          int     `json:"max_results"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
	CreateAlert         bool    `json:"create_alert"`
	SenderID            string  `json:"sender_id,omitempty"`
}

// MatchURL searches the index with an already-hosted query image
func (c *Client) MatchURL(ctx context.Context, imageURL string, p MatchParams) (*models.MatchResponse, error) {
	if imageURL == "" {
		return nil, validationError("image_url is required")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	result := &models.MatchResponse{}
	err := c.sendJSON(ctx, http.MethodPost, apiPrefix+"/match/url", matchURLRequest{
		ImageURL:            imageURL,
		MaxResults:          p.MaxResults,
		SimilarityThreshold: p.SimilarityThreshold,
		CreateAlert:         p.CreateAlert,
		SenderID:            p.SenderID,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
