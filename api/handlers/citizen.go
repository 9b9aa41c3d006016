package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/drishti-labs/police-admin-api/api"
	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/databases"
)

// Citizen exported for testing purposes
type Citizen struct {
	DB databases.CitizenDatabase
}

// ListCitizensHandler returns every citizen profile
func (c Citizen) ListCitizensHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	citizens, err := c.DB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get citizens", http.StatusNotFound, w, err)
		return
	}

	respondJSON(w, http.StatusOK, citizens)
}

// GetCitizenHandler returns one citizen profile by id
func (c Citizen) GetCitizenHandler(w http.ResponseWriter, r *http.Request) {
	citizenID := mux.Vars(r)["citizen_id"]
	oid, err := primitive.ObjectIDFromHex(citizenID)
	if err != nil {
		config.ErrorStatus("citizen_id is not a valid id", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	citizen, err := c.DB.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		config.ErrorStatus("failed to get citizen by ID", http.StatusNotFound, w, err)
		return
	}

	respondJSON(w, http.StatusOK, citizen)
}
