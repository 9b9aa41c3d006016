package facerec

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/drishti-labs/police-admin-api/models"
)

// ListAlerts fetches a page of alerts, optionally filtered by status
func (c *Client) ListAlerts(ctx context.Context, status string, limit, offset int) ([]models.Alert, *ListMeta, error) {
	if limit < 1 || limit > 1000 {
		return nil, nil, validationError("limit must be between 1 and 1000, got %d", limit)
	}
	if offset < 0 {
		return nil, nil, validationError("offset must not be negative, got %d", offset)
	}
	if status != "" && !validAlertStatus(status, true) {
		return nil, nil, validationError("status must be one of Pending, Verified, Rejected")
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	if status != "" {
		q.Set("status", status)
	}

	var alerts []models.Alert
	meta, err := c.getJSON(ctx, apiPrefix+"/alerts?"+q.Encode(), &alerts)
	if err != nil {
		return nil, nil, err
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}
	return alerts, meta, nil
}

// GetAlert fetches a single alert by id
func (c *Client) GetAlert(ctx context.Context, alertID string) (*models.Alert, error) {
	if alertID == "" {
		return nil, validationError("alert_id is required")
	}
	alert := &models.Alert{}
	if _, err := c.getJSON(ctx, apiPrefix+"/alerts/"+url.PathEscape(alertID), alert); err != nil {
		return nil, err
	}
	return alert, nil
}

type alertStatusRequest struct {
	Status string `json:"status"`
}

// UpdateAlertStatus moves an alert to a terminal disposition. Only Verified
// and Rejected are accepted; Pending is never a transition target.
func (c *Client) UpdateAlertStatus(ctx context.Context, alertID, status string) (*models.Alert, error) {
	if alertID == "" {
		return nil, validationError("alert_id is required")
	}
	if !validAlertStatus(status, false) {
		return nil, validationError("status must be Verified or Rejected")
	}

	alert := &models.Alert{}
	err := c.sendJSON(ctx, http.MethodPut, apiPrefix+"/alerts/"+url.PathEscape(alertID)+"/status",
		alertStatusRequest{Status: status}, alert)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func validAlertStatus(status string, allowPending bool) bool {
	switch status {
	case models.AlertStatusVerified, models.AlertStatusRejected:
		return true
	case models.AlertStatusPending:
		return allowPending
	default:
		return false
	}
}
