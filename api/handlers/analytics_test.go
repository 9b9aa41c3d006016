package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/drishti-labs/police-admin-api/api/handlers"
	"github.com/drishti-labs/police-admin-api/databases"
	"github.com/drishti-labs/police-admin-api/databases/mocks"
	"github.com/drishti-labs/police-admin-api/models"
)

func TestAnalyticsOverview(t *testing.T) {
	now := primitive.NewDateTimeFromTime(time.Now())
	complaints := []models.Complaint{
		{ID: primitive.NewObjectID(), ComplaintType: "Theft", Status: "Submitted", CreatedAt: now},
		{ID: primitive.NewObjectID(), ComplaintType: "Theft", Status: "open", CreatedAt: now},
		{ID: primitive.NewObjectID(), ComplaintType: "", Status: "Resolved", CreatedAt: now},
	}
	requests := []models.RTIRequest{
		{ID: primitive.NewObjectID(), Subject: "Road works", Status: "Pending"},
	}

	complaintCursor := &mocks.CursorHelper{}
	complaintCursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Complaint)
		*arg = complaints
	})
	complaintColl := &mocks.CollectionHelper{}
	complaintColl.On("Find", mock.Anything, bson.M{}).Return(complaintCursor)

	rtiCursor := &mocks.CursorHelper{}
	rtiCursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.RTIRequest)
		*arg = requests
	})
	rtiColl := &mocks.CollectionHelper{}
	rtiColl.On("Find", mock.Anything, bson.M{}).Return(rtiCursor)

	dbHelper := &mocks.DatabaseHelper{}
	dbHelper.On("Collection", "complaints").Return(complaintColl)
	dbHelper.On("Collection", "rti_requests").Return(rtiColl)

	a := handlers.Analytics{
		CDB: databases.NewComplaintDatabase(dbHelper),
		RDB: databases.NewRTIDatabase(dbHelper),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/overview", nil)
	rr := httptest.NewRecorder()
	a.OverviewHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var overview handlers.AnalyticsOverview
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &overview))

	assert.Equal(t, 3, overview.TotalComplaints)
	assert.Equal(t, 1, overview.ComplaintBuckets["Pending"])
	assert.Equal(t, 1, overview.ComplaintBuckets["Open"])
	assert.Equal(t, 1, overview.ComplaintBuckets["Closed"])
	assert.Equal(t, 2, overview.ByCategory["Theft"])
	assert.Equal(t, 1, overview.ByCategory["Uncategorized"])
	assert.Equal(t, 1, overview.ByStatus["Submitted"])
	assert.Equal(t, 1, overview.TotalRTIRequests)
	assert.Equal(t, 1, overview.RTIByStatus["Pending"])

	assert.Len(t, overview.MonthlyTrend, 6)
	assert.Equal(t, 3, overview.MonthlyTrend[5].Count)
}
