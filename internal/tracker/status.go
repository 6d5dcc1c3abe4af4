// Package tracker contains the application-tracking business logic:
// the status enum, the Postgres store, CSV export, and the HTTP handlers
// that serve the browser extension and the table UI.
package tracker

import (
	"fmt"
	"strings"
)

// Status values mirror the application_status CHECK constraint in Postgres.
type Status string

const (
	StatusInterested Status = "Interested"
	StatusApplied    Status = "Applied"
	StatusFollowUp   Status = "FollowUp"
	StatusInterview  Status = "Interview"
	StatusOffer      Status = "Offer"
	StatusRejected   Status = "Rejected"
)

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusInterested, StatusApplied, StatusFollowUp, StatusInterview, StatusOffer, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CoerceCreateStatus resolves the status supplied on record creation.
// Unknown or empty input falls back to Interested, the default column value.
func CoerceCreateStatus(raw string) Status {
	if st, err := ParseStatus(raw); err == nil {
		return st
	}
	return StatusInterested
}

// CoercePatchStatus resolves a status supplied on update. Friendly UI labels
// ("Follow-up needed") are accepted; unknown values report false so the
// caller leaves the stored status untouched.
func CoercePatchStatus(raw string) (Status, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	switch strings.ToLower(trimmed) {
	case "follow-up needed", "follow up needed":
		return StatusFollowUp, true
	}
	st, err := ParseStatus(trimmed)
	if err != nil {
		return "", false
	}
	return st, true
}
