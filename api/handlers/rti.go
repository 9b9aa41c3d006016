package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/drishti-labs/police-admin-api/api"
	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/databases"
)

// RTI exported for testing purposes
type RTI struct {
	DB databases.RTIDatabase
}

// ListRTIRequestsHandler returns every right-to-information request
func (h RTI) ListRTIRequestsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	requests, err := h.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get rti requests", http.StatusNotFound, w, err)
		return
	}

	respondJSON(w, http.StatusOK, requests)
}
