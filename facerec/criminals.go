package facerec

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/drishti-labs/police-admin-api/models"
)

// CriminalListParams filters and pages the criminal record listing
type CriminalListParams struct {
	Limit     int
	Offset    int
	Search    string
	CrimeType string
	State     string
	District  string
	Gender    string
}

// ListCriminals fetches a page of criminal records. Limit must be 1-1000 and
// offset non-negative; out-of-range values fail before any network call.
func (c *Client) ListCriminals(ctx context.Context, p CriminalListParams) ([]models.CriminalRecord, *ListMeta, error) {
	if p.Limit < 1 || p.Limit > 1000 {
		return nil, nil, validationError("limit must be between 1 and 1000, got %d", p.Limit)
	}
	if p.Offset < 0 {
		return nil, nil, validationError("offset must not be negative, got %d", p.Offset)
	}

	q := url.Values{}
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.CrimeType != "" {
		q.Set("crime_type", p.CrimeType)
	}
	if p.State != "" {
		q.Set("state", p.State)
	}
	if p.District != "" {
		q.Set("district", p.District)
	}
	if p.Gender != "" {
		q.Set("gender", p.Gender)
	}

	var records []models.CriminalRecord
	meta, err := c.getJSON(ctx, apiPrefix+"/criminals?"+q.Encode(), &records)
	if err != nil {
		return nil, nil, err
	}
	if records == nil {
		records = []models.CriminalRecord{}
	}
	return records, meta, nil
}

// GetCriminal fetches a single record by person id
func (c *Client) GetCriminal(ctx context.Context, personID string) (*models.CriminalRecord, error) {
	if personID == "" {
		return nil, validationError("person_id is required")
	}
	record := &models.CriminalRecord{}
	if _, err := c.getJSON(ctx, apiPrefix+"/criminals/"+url.PathEscape(personID), record); err != nil {
		return nil, err
	}
	return record, nil
}

// CriminalUpdate carries the partial fields of a record edit. Empty strings
// are omitted from the request; Image, when set, replaces the primary image.
type CriminalUpdate struct {
	Name      string
	CrimeType string
	Gender    string
	AgeRange  string
	State     string
	District  string
	Image     *ImageFile
}

// UpdateCriminal applies a partial update to an existing record
func (c *Client) UpdateCriminal(ctx context.Context, personID string, upd CriminalUpdate) (*models.CriminalRecord, error) {
	if personID == "" {
		return nil, validationError("person_id is required")
	}

	var fields []multipartField
	for _, f := range []multipartField{
		{"name", upd.Name},
		{"crime_type", upd.CrimeType},
		{"gender", upd.Gender},
		{"age_range", upd.AgeRange},
		{"state", upd.State},
		{"district", upd.District},
	} {
		if f.value != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 && upd.Image == nil {
		return nil, validationError("no fields to update")
	}

	files := map[string][]ImageFile{}
	if upd.Image != nil {
		if err := c.validateImage(*upd.Image); err != nil {
			return nil, err
		}
		files["image"] = []ImageFile{*upd.Image}
	}

	record := &models.CriminalRecord{}
	err := c.sendMultipart(ctx, http.MethodPut, apiPrefix+"/criminals/"+url.PathEscape(personID), fields, files, record)
	if err != nil {
		return nil, err
	}
	return record, nil
}
