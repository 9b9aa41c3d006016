package facerec

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/drishti-labs/police-admin-api/models"
)

type presignedURLRequest struct {
	S3Key    string `json:"s3_key,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// PresignedURL exchanges an s3 key or stored image URL for a time-limited
// direct-access URL. Exactly one of the two must be given.
func (c *Client) PresignedURL(ctx context.Context, s3Key, imageURL string) (*models.PresignedURLResponse, error) {
	if (s3Key == "") == (imageURL == "") {
		return nil, validationError("exactly one of s3_key or image_url is required")
	}

	result := &models.PresignedURLResponse{}
	err := c.sendJSON(ctx, http.MethodPost, apiPrefix+"/images/presigned-url",
		presignedURLRequest{S3Key: s3Key, ImageURL: imageURL}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ResolveImageURL is the best-effort form of PresignedURL: when presigning
// fails for any reason the raw stored URL is returned so callers always have
// something to render.
func (c *Client) ResolveImageURL(ctx context.Context, storedURL string) string {
	if storedURL == "" {
		return ""
	}
	resp, err := c.PresignedURL(ctx, "", storedURL)
	if err != nil {
		zap.S().Warnw("presigned url lookup failed, falling back to stored url",
			"image_url", storedURL,
			"error", err,
		)
		return storedURL
	}
	return resp.URL
}
