package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/drishti-labs/police-admin-api/api"
	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/facerec"
	"github.com/drishti-labs/police-admin-api/models"
)

// Enrollment exported for testing purposes
type Enrollment struct {
	FaceRec        *facerec.Client
	Threshold      float64
	MaxUploadBytes int64
}

// DuplicateMatch is the 409 body returned when the duplicate guard fires. The
// operator either cancels or retries the same request with force=true.
type DuplicateMatch struct {
	Message    string                 `json:"message"`
	Confidence float64                `json:"confidence"`
	Existing   *models.CriminalRecord `json:"existing"`
}

// CreateEnrollmentHandler enrolls one identity from one image. Before
// enrolling it probes the match endpoint with the candidate image; a hit at
// or above the configured threshold blocks with 409 unless force is set. A
// failed probe never blocks enrollment.
func (e Enrollment) CreateEnrollmentHandler(w http.ResponseWriter, r *http.Request) {
	img, header, err := e.readUpload(r, "image")
	if err != nil {
		config.ErrorStatus("image file is required", http.StatusBadRequest, w, err)
		return
	}

	force := r.FormValue("force") == "true"

	if !force {
		dup, err := e.probeForDuplicate(r, img, header)
		if err != nil {
			// probe rejected the upload itself; surface it before enrolling
			config.ErrorStatus("invalid image upload", http.StatusBadRequest, w, err)
			return
		}
		if dup != nil {
			respondJSON(w, http.StatusConflict, dup)
			return
		}
	}

	result, err := e.FaceRec.EnrollImage(r.Context(), facerec.EnrollParams{
		Image:              facerec.ImageFile{Name: header.Filename, Size: header.Size, Reader: bytes.NewReader(img)},
		Name:               r.FormValue("name"),
		PersonID:           r.FormValue("person_id"),
		State:              r.FormValue("state"),
		District:           r.FormValue("district"),
		AgeRange:           r.FormValue("age_range"),
		CrimeType:          r.FormValue("crime_type"),
		Gender:             r.FormValue("gender"),
		ApplyAugmentations: r.FormValue("apply_augmentations") == "true",
	})
	if err != nil {
		facerecErrorStatus("failed to enroll image", w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// probeForDuplicate runs the advisory match probe. It returns a non-nil
// DuplicateMatch when the top hit clears the threshold, a validation error
// when the upload itself is unusable, and (nil, nil) in every other case:
// duplicate detection is advisory and fails open on backend trouble.
func (e Enrollment) probeForDuplicate(r *http.Request, img []byte, header *multipart.FileHeader) (*DuplicateMatch, error) {
	probe, err := e.FaceRec.MatchImage(r.Context(), facerec.ImageFile{
		Name:   header.Filename,
		Size:   header.Size,
		Reader: bytes.NewReader(img),
	}, facerec.MatchParams{
		MaxResults:          1,
		SimilarityThreshold: e.Threshold,
		CreateAlert:         false,
	})
	if err != nil {
		if facerec.IsValidation(err) {
			return nil, err
		}
		zap.S().Warnw("duplicate probe failed, continuing with enrollment",
			"error", err)
		return nil, nil
	}

	if len(probe.Matches) == 0 || probe.Matches[0].Confidence < e.Threshold {
		return nil, nil
	}

	top := probe.Matches[0]
	dup := &DuplicateMatch{
		Message:    "a likely existing record matched this image",
		Confidence: top.Confidence,
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	existing, err := e.FaceRec.GetCriminal(ctx, top.PersonID)
	if err != nil {
		// best effort: the match fields are enough to render the modal
		zap.S().Warnw("failed to fetch matched record, returning match fields only",
			"person_id", top.PersonID,
			"error", err)
		existing = &models.CriminalRecord{
			PersonID:  top.PersonID,
			Name:      top.Name,
			CrimeType: top.CrimeType,
			State:     top.State,
			District:  top.District,
		}
	}
	dup.Existing = existing
	return dup, nil
}

// BatchEnrollmentHandler enrolls one identity from several images
func (e Enrollment) BatchEnrollmentHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(e.maxMemory()); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		config.ErrorStatus("at least one image file is required", http.StatusBadRequest, w, nil)
		return
	}

	images := make([]facerec.ImageFile, 0, len(headers))
	for _, hdr := range headers {
		f, err := hdr.Open()
		if err != nil {
			config.ErrorStatus("failed to read uploaded image", http.StatusBadRequest, w, err)
			return
		}
		defer f.Close()
		images = append(images, facerec.ImageFile{Name: hdr.Filename, Size: hdr.Size, Reader: f})
	}

	result, err := e.FaceRec.EnrollImages(r.Context(), facerec.EnrollParams{
		Name:               r.FormValue("name"),
		PersonID:           r.FormValue("person_id"),
		State:              r.FormValue("state"),
		District:           r.FormValue("district"),
		AgeRange:           r.FormValue("age_range"),
		CrimeType:          r.FormValue("crime_type"),
		Gender:             r.FormValue("gender"),
		ApplyAugmentations: r.FormValue("apply_augmentations") == "true",
	}, images)
	if err != nil {
		facerecErrorStatus("failed to enroll images", w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// BulkEnrollmentHandler forwards a csv/xlsx manifest enrollment run
func (e Enrollment) BulkEnrollmentHandler(w http.ResponseWriter, r *http.Request) {
	sheet, header, err := e.readUpload(r, "file")
	if err != nil {
		config.ErrorStatus("manifest file is required", http.StatusBadRequest, w, err)
		return
	}

	result, err := e.FaceRec.EnrollBulk(r.Context(), facerec.BulkEnrollParams{
		Sheet:        facerec.ImageFile{Name: header.Filename, Size: header.Size, Reader: bytes.NewReader(sheet)},
		ImagesFolder: r.FormValue("images_folder"),
	})
	if err != nil {
		facerecErrorStatus("failed to run bulk enrollment", w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// readUpload parses the form and buffers the named file. The probe and the
// enrollment both need the bytes, so the upload is read once up front.
func (e Enrollment) readUpload(r *http.Request, field string) ([]byte, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(e.maxMemory()); err != nil {
		return nil, nil, err
	}
	f, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return data, header, nil
}

func (e Enrollment) maxMemory() int64 {
	if e.MaxUploadBytes > 0 {
		return e.MaxUploadBytes
	}
	return config.DefaultMaxUploadBytes
}
