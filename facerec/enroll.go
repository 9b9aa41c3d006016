package facerec

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/drishti-labs/police-admin-api/models"
)

// EnrollParams describes a single-image enrollment. PersonID is generated
// when absent so the round trip always yields a retrievable id.
type EnrollParams struct {
	Image              ImageFile
	Name               string
	PersonID           string
	State              string
	District           string
	AgeRange           string
	CrimeType          string
	Gender             string
	ApplyAugmentations bool
}

func (p *EnrollParams) fields() []multipartField {
	fields := []multipartField{
		{"name", p.Name},
		{"person_id", p.PersonID},
		{"apply_augmentations", strconv.FormatBool(p.ApplyAugmentations)},
	}
	for _, f := range []multipartField{
		{"state", p.State},
		{"district", p.District},
		{"age_range", p.AgeRange},
		{"crime_type", p.CrimeType},
		{"gender", p.Gender},
	} {
		if f.value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// EnrollImage registers one identity from one face image
func (c *Client) EnrollImage(ctx context.Context, p EnrollParams) (*models.EnrollmentResult, error) {
	if p.Name == "" {
		return nil, validationError("name is required")
	}
	if err := c.validateImage(p.Image); err != nil {
		return nil, err
	}
	if p.PersonID == "" {
		p.PersonID = uuid.New().String()
	}

	result := &models.EnrollmentResult{}
	err := c.sendMultipart(ctx, http.MethodPost, apiPrefix+"/enroll/image",
		p.fields(), map[string][]ImageFile{"image": {p.Image}}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// EnrollImages registers one identity from several face images
func (c *Client) EnrollImages(ctx context.Context, p EnrollParams, images []ImageFile) (*models.EnrollmentResult, error) {
	if p.Name == "" {
		return nil, validationError("name is required")
	}
	if len(images) == 0 {
		return nil, validationError("at least one image is required")
	}
	for _, img := range images {
		if err := c.validateImage(img); err != nil {
			return nil, err
		}
	}
	if p.PersonID == "" {
		p.PersonID = uuid.New().String()
	}

	result := &models.EnrollmentResult{}
	err := c.sendMultipart(ctx, http.MethodPost, apiPrefix+"/enroll/images",
		p.fields(), map[string][]ImageFile{"images": images}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BulkEnrollParams drives a spreadsheet+folder enrollment run on the backend
type BulkEnrollParams struct {
	// Sheet is a csv or xlsx manifest of identities
	Sheet ImageFile
	// ImagesFolder is the backend-side path holding the referenced images
	ImagesFolder string
}

var allowedSheetExts = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// EnrollBulk submits a bulk enrollment manifest
func (c *Client) EnrollBulk(ctx context.Context, p BulkEnrollParams) (*models.BulkEnrollmentResult, error) {
	if p.Sheet.Reader == nil || p.Sheet.Name == "" {
		return nil, validationError("a csv or xlsx manifest is required")
	}
	if !allowedSheetExts[lowerExt(p.Sheet.Name)] {
		return nil, validationError("unsupported manifest type: allowed types are csv, xlsx")
	}
	if p.ImagesFolder == "" {
		return nil, validationError("images_folder is required")
	}

	result := &models.BulkEnrollmentResult{}
	err := c.sendMultipart(ctx, http.MethodPost, apiPrefix+"/enroll",
		[]multipartField{{"images_folder", p.ImagesFolder}},
		map[string][]ImageFile{"file": {p.Sheet}}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
