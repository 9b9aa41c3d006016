package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/drishti-labs/police-admin-api/api/handlers"
	"github.com/drishti-labs/police-admin-api/databases/mocks"
	"github.com/drishti-labs/police-admin-api/models"
)

type fakeUploader struct {
	url      string
	err      error
	uploaded bool
}

func (f *fakeUploader) Upload(ctx context.Context, file io.Reader, name string) (string, error) {
	f.uploaded = true
	return f.url, f.err
}

func TestUploadEvidence_AttachesURL(t *testing.T) {
	oid := primitive.NewObjectID()

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Complaint)
		(*arg).ID = oid
	})

	coll := &mocks.CollectionHelper{}
	coll.On("FindOne", mock.Anything, bson.M{"_id": oid}).Return(sr)
	coll.On("UpdateOne", mock.Anything, bson.M{"_id": oid}, mock.MatchedBy(func(update interface{}) bool {
		push, ok := update.(bson.M)["$push"].(bson.M)
		return ok && push["evidence_urls"] == "https://cdn.example.com/ev.jpg"
	})).Return(nil)

	up := &fakeUploader{url: "https://cdn.example.com/ev.jpg"}
	e := handlers.Evidence{DB: complaintDB(coll), Uploader: up}

	req := multipartRequest(t, "/api/v1/complaints/"+oid.Hex()+"/evidence", "file", "ev.jpg", fakeImage, nil)
	req = mux.SetURLVars(req, map[string]string{"complaint_id": oid.Hex()})
	rr := httptest.NewRecorder()
	e.UploadEvidenceHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, up.uploaded)
	assert.Contains(t, rr.Body.String(), "https://cdn.example.com/ev.jpg")
	coll.AssertNumberOfCalls(t, "UpdateOne", 1)
}

func TestUploadEvidence_StorageNotConfigured(t *testing.T) {
	e := handlers.Evidence{DB: complaintDB(&mocks.CollectionHelper{}), Uploader: nil}

	oid := primitive.NewObjectID()
	req := multipartRequest(t, "/api/v1/complaints/"+oid.Hex()+"/evidence", "file", "ev.jpg", fakeImage, nil)
	req = mux.SetURLVars(req, map[string]string{"complaint_id": oid.Hex()})
	rr := httptest.NewRecorder()
	e.UploadEvidenceHandler(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestUploadEvidence_UnknownComplaint(t *testing.T) {
	oid := primitive.NewObjectID()

	sr := &mocks.SingleResultHelper{}
	sr.On("Decode", mock.Anything).Return(assert.AnError)

	coll := &mocks.CollectionHelper{}
	coll.On("FindOne", mock.Anything, bson.M{"_id": oid}).Return(sr)

	up := &fakeUploader{url: "https://cdn.example.com/ev.jpg"}
	e := handlers.Evidence{DB: complaintDB(coll), Uploader: up}

	req := multipartRequest(t, "/api/v1/complaints/"+oid.Hex()+"/evidence", "file", "ev.jpg", fakeImage, nil)
	req = mux.SetURLVars(req, map[string]string{"complaint_id": oid.Hex()})
	rr := httptest.NewRecorder()
	e.UploadEvidenceHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, up.uploaded)
}
