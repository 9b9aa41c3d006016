package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/drishti-labs/police-admin-api/api"
	"github.com/drishti-labs/police-admin-api/api/handlers/triage"
	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/databases"
	"github.com/drishti-labs/police-admin-api/models"
)

// Complaint exported for testing purposes
type Complaint struct {
	DB databases.ComplaintDatabase
}

// ListComplaintsHandler returns complaints, optionally narrowed to one triage
// bucket. Status spellings vary by producer, so bucketing happens here rather
// than in the database query.
func (c Complaint) ListComplaintsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	complaints, err := c.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get complaints", http.StatusNotFound, w, err)
		return
	}

	if bucket := r.URL.Query().Get("bucket"); bucket != "" {
		want := triage.Bucket(bucket)
		filtered := make([]models.Complaint, 0, len(complaints))
		for _, cm := range complaints {
			if triage.Classify(cm.Status) == want {
				filtered = append(filtered, cm)
			}
		}
		complaints = filtered
	}

	respondJSON(w, http.StatusOK, complaints)
}

// AcceptComplaintHandler moves a complaint into the open pipeline
func (c Complaint) AcceptComplaintHandler(w http.ResponseWriter, r *http.Request) {
	c.setStatus(w, r, "Open")
}

// RejectComplaintHandler closes a complaint without action
func (c Complaint) RejectComplaintHandler(w http.ResponseWriter, r *http.Request) {
	c.setStatus(w, r, "Closed")
}

func (c Complaint) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	complaintID := mux.Vars(r)["complaint_id"]
	oid, err := primitive.ObjectIDFromHex(complaintID)
	if err != nil {
		config.ErrorStatus("complaint_id is not a valid id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := c.DB.FindOne(ctx, bson.M{"_id": oid}); err != nil {
		config.ErrorStatus("failed to get complaint by ID", http.StatusNotFound, w, err)
		return
	}

	err = c.DB.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	if err != nil {
		config.ErrorStatus("failed to update complaint status", http.StatusInternalServerError, w, err)
		return
	}

	updated, err := c.DB.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		config.ErrorStatus("failed to get complaint by ID", http.StatusInternalServerError, w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
