package models

import "time"

// CriminalRecord is a record held by the face recognition backend. Copies held
// by this service are transient and never authoritative.
type CriminalRecord struct {
	PersonID  string    `json:"person_id"`
	Name      string    `json:"name"`
	CrimeType string    `json:"crime_type,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	AgeRange  string    `json:"age_range,omitempty"`
	State     string    `json:"state,omitempty"`
	District  string    `json:"district,omitempty"`
	Images    []string  `json:"images,omitempty"`
	S3Paths   []string  `json:"s3_paths,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
