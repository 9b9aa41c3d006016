// Package scheduler runs the periodic background jobs behind the dashboard:
// a health probe against the face recognition backend and an hourly digest of
// alerts still waiting for disposition.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/drishti-labs/police-admin-api/facerec"
	"github.com/drishti-labs/police-admin-api/models"
)

// Scheduler handles periodic background jobs for the dashboard
type Scheduler struct {
	cron        *cron.Cron
	FaceRec     *facerec.Client
	SendgridKey string
	NotifyEmail string

	backendUp bool
}

// NewScheduler creates a new scheduler instance
func NewScheduler(faceRec *facerec.Client, sendgridKey, notifyEmail string) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(time.UTC)),
		FaceRec:     faceRec,
		SendgridKey: sendgridKey,
		NotifyEmail: notifyEmail,
		backendUp:   true,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Probe backend health every 5 minutes; only state changes are logged loudly
	_, err := s.cron.AddFunc("*/5 * * * *", s.probeBackend)
	if err != nil {
		zap.S().Errorw("failed to register health probe job", "error", err)
	}

	// Digest of pending alerts at the top of every hour
	_, err = s.cron.AddFunc("0 * * * *", s.sendPendingAlertDigest)
	if err != nil {
		zap.S().Errorw("failed to register alert digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Dashboard scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Dashboard scheduler stopped")
}

// probeBackend hits the face recognition health endpoint and tracks up/down
// transitions
func (s *Scheduler) probeBackend() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.FaceRec.Health(ctx)
	up := err == nil

	switch {
	case up && !s.backendUp:
		zap.S().Info("face recognition backend recovered")
	case !up && s.backendUp:
		zap.S().Errorw("face recognition backend is down", "error", err)
	case !up:
		zap.S().Debugw("face recognition backend still down", "error", err)
	}
	s.backendUp = up
}

// sendPendingAlertDigest emails a count of alerts still waiting on a human.
// The digest is skipped entirely when notification email is not configured or
// nothing is pending.
func (s *Scheduler) sendPendingAlertDigest() {
	if s.NotifyEmail == "" || s.SendgridKey == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	alerts, meta, err := s.FaceRec.ListAlerts(ctx, models.AlertStatusPending, 1000, 0)
	if err != nil {
		zap.S().Errorw("failed to list pending alerts for digest", "error", err)
		return
	}

	pending := int64(len(alerts))
	if meta != nil && meta.Count > pending {
		pending = meta.Count
	}
	if pending == 0 {
		return
	}

	subject := fmt.Sprintf("%d alert(s) awaiting review", pending)
	body := fmt.Sprintf(
		"There are %d face match alert(s) still pending review on the dashboard. "+
			"Please verify or reject them.", pending)

	if err := s.sendEmail(s.NotifyEmail, subject, body); err != nil {
		zap.S().Errorw("failed to send pending alert digest", "error", err)
		return
	}
	zap.S().Infow("Sent pending alert digest", "pending", pending)
}

func (s *Scheduler) sendEmail(toEmail, subject, plainText string) error {
	from := mail.NewEmail("Police Admin Dashboard", "no-reply@police-admin.example.com")
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, plainText)
	client := sendgrid.NewSendClient(s.SendgridKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}
