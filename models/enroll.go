package models

// EnrollmentResult is the body returned by the single and multi image
// enrollment calls.
type EnrollmentResult struct {
	PersonID     string   `json:"person_id"`
	Name         string   `json:"name"`
	FacesIndexed int      `json:"faces_indexed"`
	S3Paths      []string `json:"s3_paths,omitempty"`
}

// BulkEnrollmentResult is the body returned by the spreadsheet-driven bulk
// enrollment call.
type BulkEnrollmentResult struct {
	Enrolled int      `json:"enrolled"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// PresignedURLResponse carries a time-limited direct-access URL for an
// otherwise private stored image.
type PresignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}
