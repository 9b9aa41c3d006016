package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/drishti-labs/police-admin-api/api"
	"github.com/drishti-labs/police-admin-api/config"
	"github.com/drishti-labs/police-admin-api/databases"
	"github.com/drishti-labs/police-admin-api/facerec"
	"github.com/drishti-labs/police-admin-api/models"
)

// App stores the router, db connection and face recognition client, so it can be reused
type App struct {
	Router   *mux.Router
	Config   config.Config
	FaceRec  *facerec.Client
	Hub      *Hub
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewAdminDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	complaintDB := databases.NewComplaintDatabase(a.dbHelper)
	rtiDB := databases.NewRTIDatabase(a.dbHelper)

	admin := Admin{DB: databases.NewAdminDatabase(a.dbHelper), JWTSecret: a.Config.JWTSecret}
	criminal := Criminal{FaceRec: a.FaceRec}
	enrollment := Enrollment{FaceRec: a.FaceRec, Threshold: a.Config.MatchThreshold, MaxUploadBytes: a.Config.MaxUploadBytes}
	match := Match{FaceRec: a.FaceRec, MaxUploadBytes: a.Config.MaxUploadBytes}
	alert := Alert{FaceRec: a.FaceRec}
	complaint := Complaint{DB: complaintDB}
	citizen := Citizen{DB: databases.NewCitizenDatabase(a.dbHelper)}
	rti := RTI{DB: rtiDB}
	analytics := Analytics{CDB: complaintDB, RDB: rtiDB}
	evidence := Evidence{DB: complaintDB, Uploader: newCloudinaryUploader()}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	// the websocket feed stays off this subrouter: its connections are
	// long-lived and must not be cut by the request deadline
	timeout := a.Config.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeoutSeconds * time.Second
	}
	apiCreate.Use(api.TimeoutMiddleware(timeout))

	apiCreate.Handle("/auth/token", http.HandlerFunc(m.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")
	apiCreate.Handle("/admin/login", http.HandlerFunc(admin.AdminLoginHandler)).Methods("POST")

	apiCreate.Handle("/criminals", api.Middleware(http.HandlerFunc(criminal.ListCriminalsHandler))).Methods("GET")
	apiCreate.Handle("/criminals/{person_id}", api.Middleware(http.HandlerFunc(criminal.GetCriminalHandler))).Methods("GET")
	apiCreate.Handle("/criminals/{person_id}", api.Middleware(http.HandlerFunc(criminal.UpdateCriminalHandler))).Methods("PUT")

	apiCreate.Handle("/enrollments", api.Middleware(http.HandlerFunc(enrollment.CreateEnrollmentHandler))).Methods("POST")
	apiCreate.Handle("/enrollments/batch", api.Middleware(http.HandlerFunc(enrollment.BatchEnrollmentHandler))).Methods("POST")
	apiCreate.Handle("/enrollments/bulk", api.Middleware(http.HandlerFunc(enrollment.BulkEnrollmentHandler))).Methods("POST")

	apiCreate.Handle("/match", api.Middleware(http.HandlerFunc(match.MatchHandler))).Methods("POST")
	apiCreate.Handle("/match/url", api.Middleware(http.HandlerFunc(match.MatchURLHandler))).Methods("POST")

	apiCreate.Handle("/alerts", api.Middleware(http.HandlerFunc(alert.ListAlertsHandler))).Methods("GET")
	apiCreate.Handle("/alerts/{alert_id}", api.Middleware(http.HandlerFunc(alert.GetAlertHandler))).Methods("GET")
	apiCreate.Handle("/alerts/{alert_id}/status", api.Middleware(http.HandlerFunc(alert.UpdateAlertStatusHandler))).Methods("PUT")

	apiCreate.Handle("/complaints", api.Middleware(http.HandlerFunc(complaint.ListComplaintsHandler))).Methods("GET")
	apiCreate.Handle("/complaints/{complaint_id}/accept", api.Middleware(http.HandlerFunc(complaint.AcceptComplaintHandler))).Methods("POST")
	apiCreate.Handle("/complaints/{complaint_id}/reject", api.Middleware(http.HandlerFunc(complaint.RejectComplaintHandler))).Methods("POST")
	apiCreate.Handle("/complaints/{complaint_id}/evidence", api.Middleware(http.HandlerFunc(evidence.UploadEvidenceHandler))).Methods("POST")

	apiCreate.Handle("/citizens", api.Middleware(http.HandlerFunc(citizen.ListCitizensHandler))).Methods("GET")
	apiCreate.Handle("/citizens/{citizen_id}", api.Middleware(http.HandlerFunc(citizen.GetCitizenHandler))).Methods("GET")

	apiCreate.Handle("/rti-requests", api.Middleware(http.HandlerFunc(rti.ListRTIRequestsHandler))).Methods("GET")

	apiCreate.Handle("/analytics/overview", api.Middleware(http.HandlerFunc(analytics.OverviewHandler))).Methods("GET")

	// browsers cannot set Authorization headers on websocket upgrades, so the
	// feed is mounted outside the bearer middleware
	r.HandleFunc("/ws", a.Hub.ServeWS)

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("police-admin-api has connected to the database")

	a.FaceRec = facerec.New(a.Config.FaceRecURL, a.Config.FaceRecAPIKey)
	a.FaceRec.MaxImageBytes = a.Config.MaxUploadBytes

	a.Hub = NewHub()
	go a.Hub.Run()

	// realtime refresh: every row change in a watched collection is pushed to
	// connected dashboards, which refetch the affected list
	watcher := databases.NewWatcher()
	watcher.Add("complaints", databases.NewComplaintDatabase(a.dbHelper))
	watcher.Add("citizens", databases.NewCitizenDatabase(a.dbHelper))
	watcher.Add("rti_requests", databases.NewRTIDatabase(a.dbHelper))
	watcher.Start(context.Background(), a.Hub.BroadcastChange)

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

func newCloudinaryUploader() EvidenceUploader {
	uploader, err := NewCloudinaryUploader(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		zap.S().Warnw("cloudinary not configured, evidence uploads disabled", "error", err)
		return nil
	}
	return uploader
}
