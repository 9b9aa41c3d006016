package models

import "time"

// Alert statuses. Pending is the only state this service will transition away
// from; Verified and Rejected are terminal.
const (
	AlertStatusPending  = "Pending"
	AlertStatusVerified = "Verified"
	AlertStatusRejected = "Rejected"
)

// Alert is a backend-raised record of a match event awaiting human
// disposition. SenderID is present only when the alert was raised through an
// external bot channel.
type Alert struct {
	AlertID       string        `json:"alert_id"`
	QueryImageURL string        `json:"query_image_url"`
	Matches       []MatchResult `json:"matches"`
	SenderID      string        `json:"sender_id,omitempty"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}
