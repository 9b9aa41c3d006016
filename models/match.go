package models

// MatchResult is a single candidate returned by a face match call. Confidence
// is a backend-computed similarity score in [0, 100]; this service forwards it
// untouched.
type MatchResult struct {
	PersonID   string  `json:"person_id"`
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	CrimeType  string  `json:"crime_type,omitempty"`
	State      string  `json:"state,omitempty"`
	District   string  `json:"district,omitempty"`
	ImageURL   string  `json:"image_url,omitempty"`
}

// MatchResponse is the body of a match call. AlertID is set only when the
// call asked the backend to raise an alert.
type MatchResponse struct {
	Matches       []MatchResult `json:"matches"`
	AlertID       string        `json:"alert_id,omitempty"`
	QueryImageURL string        `json:"query_image_url,omitempty"`
}
