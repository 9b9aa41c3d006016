package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Complaint holds the structure for the complaints collection. Status is a
// free-form string written by the citizen-facing bot; spelling and casing are
// not consistent, so consumers bucket it through the triage package instead of
// comparing it directly.
type Complaint struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	ComplaintType string             `json:"complaint_type" bson:"complaint_type"`
	Description   string             `json:"description" bson:"description"`
	Location      string             `json:"location" bson:"location"`
	Status        string             `json:"status" bson:"status"`
	UserID        string             `json:"user_id" bson:"user_id"`
	EvidenceURLs  []string           `json:"evidence_urls,omitempty" bson:"evidence_urls,omitempty"`
	CreatedAt     primitive.DateTime `json:"created_at" bson:"created_at"`
	UpdatedAt     primitive.DateTime `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
