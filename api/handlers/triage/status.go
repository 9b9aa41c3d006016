// Package triage holds the pure classification and aggregation logic behind
// the complaint triage tabs and the analytics view.
package triage

import "strings"

// Bucket is the closed set of triage tabs a complaint can land in
type Bucket string

// Triage buckets. Unknown is deliberate: an unrecognized status spelling is
// surfaced rather than silently excluded from every tab.
const (
	BucketPending Bucket = "Pending"
	BucketOpen    Bucket = "Open"
	BucketClosed  Bucket = "Closed"
	BucketUnknown Bucket = "Unknown"
)

// The producer of complaint statuses is a bot outside this repo and its
// spellings are not consistent; these are the variants observed in the wild.
var statusBuckets = map[string]Bucket{
	"pending":     BucketPending,
	"submitted":   BucketPending,
	"new":         BucketPending,
	"open":        BucketOpen,
	"accepted":    BucketOpen,
	"in progress": BucketOpen,
	"closed":      BucketClosed,
	"resolved":    BucketClosed,
	"rejected":    BucketClosed,
}

// Classify maps a free-form complaint status to exactly one bucket
func Classify(status string) Bucket {
	b, ok := statusBuckets[strings.ToLower(strings.TrimSpace(status))]
	if !ok {
		return BucketUnknown
	}
	return b
}
