package handlers

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/drishti-labs/police-admin-api/api"
	"github.com/drishti-labs/police-admin-api/api/handlers/triage"
	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/databases"
)

// Analytics exported for testing purposes
type Analytics struct {
	CDB databases.ComplaintDatabase
	RDB databases.RTIDatabase
}

// AnalyticsOverview is the single payload behind the dashboard's analytics
// view. Trend points cover the trailing six calendar months, oldest first.
type AnalyticsOverview struct {
	TotalComplaints  int                  `json:"total_complaints"`
	ComplaintBuckets map[string]int       `json:"complaint_buckets"`
	ByCategory       map[string]int       `json:"by_category"`
	ByStatus         map[string]int       `json:"by_status"`
	MonthlyTrend     []triage.MonthBucket `json:"monthly_trend"`
	TotalRTIRequests int                  `json:"total_rti_requests"`
	RTIByStatus      map[string]int       `json:"rti_by_status"`
}

// OverviewHandler aggregates complaints and RTI requests in one response
func (a Analytics) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	complaints, err := a.CDB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get complaints", http.StatusInternalServerError, w, err)
		return
	}
	requests, err := a.RDB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get rti requests", http.StatusInternalServerError, w, err)
		return
	}

	buckets := map[string]int{}
	categories := make([]string, 0, len(complaints))
	statuses := make([]string, 0, len(complaints))
	timestamps := make([]time.Time, 0, len(complaints))
	for _, c := range complaints {
		buckets[string(triage.Classify(c.Status))]++
		categories = append(categories, c.ComplaintType)
		statuses = append(statuses, c.Status)
		timestamps = append(timestamps, c.CreatedAt.Time())
	}

	rtiStatuses := make([]string, 0, len(requests))
	for _, req := range requests {
		rtiStatuses = append(rtiStatuses, req.Status)
	}

	respondJSON(w, http.StatusOK, AnalyticsOverview{
		TotalComplaints:  len(complaints),
		ComplaintBuckets: buckets,
		ByCategory:       triage.CountByCategory(categories),
		ByStatus:         triage.CountByStatus(statuses),
		MonthlyTrend:     triage.MonthlyTrend(timestamps, time.Now(), triage.TrendWindow),
		TotalRTIRequests: len(requests),
		RTIByStatus:      triage.CountByStatus(rtiStatuses),
	})
}
