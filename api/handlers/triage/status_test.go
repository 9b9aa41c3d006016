package triage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drishti-labs/police-admin-api/api/handlers/triage"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		status string
		want   triage.Bucket
	}{
		{"Pending", triage.BucketPending},
		{"pending", triage.BucketPending},
		{"submitted", triage.BucketPending},
		{"Submitted", triage.BucketPending},
		{"  Submitted  ", triage.BucketPending},
		{"Open", triage.BucketOpen},
		{"accepted", triage.BucketOpen},
		{"In Progress", triage.BucketOpen},
		{"Closed", triage.BucketClosed},
		{"closed", triage.BucketClosed},
		{"Resolved", triage.BucketClosed},
		{"resolved", triage.BucketClosed},
		{"rejected", triage.BucketClosed},
		{"", triage.BucketUnknown},
		{"escalated-to-sho", triage.BucketUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, triage.Classify(tc.status), "status %q", tc.status)
	}
}

func TestClassify_ExactlyOneBucket(t *testing.T) {
	// every accepted spelling lands in exactly one bucket
	statuses := []string{"pending", "Pending", "submitted", "Submitted", "open", "closed", "resolved", "whatever"}
	for _, s := range statuses {
		hits := 0
		got := triage.Classify(s)
		for _, b := range []triage.Bucket{triage.BucketPending, triage.BucketOpen, triage.BucketClosed, triage.BucketUnknown} {
			if got == b {
				hits++
			}
		}
		assert.Equal(t, 1, hits, "status %q", s)
	}
}
