package tracker_test

import (
	"testing"

	"jobtrack/api-service/internal/tracker"
)

// ── ParseStatus ────────────────────────────────────────────────────────────

func TestParseStatus_ValidValues(t *testing.T) {
	valid := []string{"Interested", "Applied", "FollowUp", "Interview", "Offer", "Rejected"}
	for _, s := range valid {
		got, err := tracker.ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStatus_InvalidValue(t *testing.T) {
	for _, s := range []string{"", "applied", "Ghosted", "UNKNOWN"} {
		if _, err := tracker.ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", s)
		}
	}
}

// ── CoerceCreateStatus ─────────────────────────────────────────────────────

func TestCoerceCreateStatus(t *testing.T) {
	cases := []struct {
		input string
		want  tracker.Status
	}{
		{"Applied", tracker.StatusApplied},
		{"Offer", tracker.StatusOffer},
		{"", tracker.StatusInterested},
		{"nonsense", tracker.StatusInterested},
		{"applied", tracker.StatusInterested}, // case-sensitive, like the stored enum
	}
	for _, c := range cases {
		if got := tracker.CoerceCreateStatus(c.input); got != c.want {
			t.Errorf("CoerceCreateStatus(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

// ── CoercePatchStatus ──────────────────────────────────────────────────────

func TestCoercePatchStatus_FriendlyLabels(t *testing.T) {
	for _, s := range []string{"Follow-up needed", "follow up needed", "  FOLLOW-UP NEEDED  "} {
		got, ok := tracker.CoercePatchStatus(s)
		if !ok {
			t.Errorf("CoercePatchStatus(%q) should resolve", s)
			continue
		}
		if got != tracker.StatusFollowUp {
			t.Errorf("CoercePatchStatus(%q) = %q, want FollowUp", s, got)
		}
	}
}

func TestCoercePatchStatus_KnownValue(t *testing.T) {
	got, ok := tracker.CoercePatchStatus("Interview")
	if !ok || got != tracker.StatusInterview {
		t.Errorf("CoercePatchStatus(\"Interview\") = %q, %v; want Interview, true", got, ok)
	}
}

func TestCoercePatchStatus_UnknownLeavesStatus(t *testing.T) {
	for _, s := range []string{"", "   ", "Ghosted"} {
		if _, ok := tracker.CoercePatchStatus(s); ok {
			t.Errorf("CoercePatchStatus(%q) should not resolve", s)
		}
	}
}
