package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/facerec"
)

const defaultListLimit = 100

// Criminal exported for testing purposes
type Criminal struct {
	FaceRec *facerec.Client
}

// ListCriminalsHandler proxies the criminal record listing with search and
// facet filters
func (c Criminal) ListCriminalsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := listParams(r)
	if err != nil {
		config.ErrorStatus("invalid paging parameters", http.StatusBadRequest, w, err)
		return
	}

	records, meta, err := c.FaceRec.ListCriminals(r.Context(), facerec.CriminalListParams{
		Limit:     limit,
		Offset:    offset,
		Search:    r.URL.Query().Get("search"),
		CrimeType: r.URL.Query().Get("crime_type"),
		State:     r.URL.Query().Get("state"),
		District:  r.URL.Query().Get("district"),
		Gender:    r.URL.Query().Get("gender"),
	})
	if err != nil {
		facerecErrorStatus("failed to list criminal records", w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"records": records,
		"meta":    meta,
	})
}

// GetCriminalHandler returns one record with its image URLs swapped for
// presigned ones so the dashboard can render them directly
func (c Criminal) GetCriminalHandler(w http.ResponseWriter, r *http.Request) {
	personID := mux.Vars(r)["person_id"]

	record, err := c.FaceRec.GetCriminal(r.Context(), personID)
	if err != nil {
		facerecErrorStatus("failed to get criminal record", w, err)
		return
	}

	for i, img := range record.Images {
		record.Images[i] = c.FaceRec.ResolveImageURL(r.Context(), img)
	}

	respondJSON(w, http.StatusOK, record)
}

// UpdateCriminalHandler forwards a partial record edit; an attached image
// replaces the primary image
func (c Criminal) UpdateCriminalHandler(w http.ResponseWriter, r *http.Request) {
	personID := mux.Vars(r)["person_id"]

	if err := r.ParseMultipartForm(config.DefaultMaxUploadBytes); err != nil {
		config.ErrorStatus("failed to parse multipart form", http.StatusBadRequest, w, err)
		return
	}

	upd := facerec.CriminalUpdate{
		Name:      r.FormValue("name"),
		CrimeType: r.FormValue("crime_type"),
		Gender:    r.FormValue("gender"),
		AgeRange:  r.FormValue("age_range"),
		State:     r.FormValue("state"),
		District:  r.FormValue("district"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		upd.Image = &facerec.ImageFile{Name: header.Filename, Size: header.Size, Reader: file}
	}

	record, err := c.FaceRec.UpdateCriminal(r.Context(), personID, upd)
	if err != nil {
		facerecErrorStatus("failed to update criminal record", w, err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// listParams reads limit and offset from the query string, applying defaults
// when absent. Range checks live in the facerec client.
func listParams(r *http.Request) (limit, offset int, err error) {
	limit = defaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, err
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, err
		}
	}
	return limit, offset, nil
}
