package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/drishti-labs/police-admin-api/api"
	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/databases"
)

// EvidenceUploader stores an evidence file and returns its public URL
type EvidenceUploader interface {
	Upload(ctx context.Context, file io.Reader, name string) (string, error)
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL style
// connection string
func NewCloudinaryUploader(url string) (EvidenceUploader, error) {
	if url == "" {
		return nil, fmt.Errorf("cloudinary url is empty")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &cloudinaryUploader{cld: cld}, nil
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader, name string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "evidence",
		PublicID: uuid.New().String(),
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// Evidence exported for testing purposes
type Evidence struct {
	DB       databases.ComplaintDatabase
	Uploader EvidenceUploader
}

// UploadEvidenceHandler attaches an uploaded evidence file to a complaint.
// The file is stored externally and only its URL lands on the row.
func (e Evidence) UploadEvidenceHandler(w http.ResponseWriter, r *http.Request) {
	if e.Uploader == nil {
		config.ErrorStatus("evidence storage is not configured", http.StatusServiceUnavailable, w, nil)
		return
	}

	complaintID := mux.Vars(r)["complaint_id"]
	oid, err := primitive.ObjectIDFromHex(complaintID)
	if err != nil {
		config.ErrorStatus("complaint_id is not a valid id", http.StatusBadRequest, w, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		config.ErrorStatus("evidence file is required", http.StatusBadRequest, w, err)
		return
	}
	defer file.Close()

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := e.DB.FindOne(ctx, bson.M{"_id": oid}); err != nil {
		config.ErrorStatus("failed to get complaint by ID", http.StatusNotFound, w, err)
		return
	}

	url, err := e.Uploader.Upload(r.Context(), file, header.Filename)
	if err != nil {
		config.ErrorStatus("failed to store evidence file", http.StatusBadGateway, w, err)
		return
	}

	err = e.DB.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"evidence_urls": url},
		"$set":  bson.M{"updated_at": primitive.NewDateTimeFromTime(time.Now())},
	})
	if err != nil {
		config.ErrorStatus("failed to attach evidence to complaint", http.StatusInternalServerError, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
