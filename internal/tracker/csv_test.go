package tracker_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"jobtrack/api-service/internal/tracker"
)

func sp(s string) *string   { return &s }
func np(f float64) *float64 { return &f }

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := tracker.WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count = %d, want header only", len(records))
	}
	want := []string{
		"companyName", "positionTitle", "location", "companyPhone",
		"payMin", "payMax", "payPeriod", "shift", "hoursPerWeek",
		"jobType", "workplace", "status", "source", "jobUrl",
		"dateApplied", "lastFollowedUpOn", "nextFollowUpOn", "notes",
	}
	if len(records[0]) != len(want) {
		t.Fatalf("header length = %d, want %d", len(records[0]), len(want))
	}
	for i, col := range want {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
}

func TestWriteCSV_RowValues(t *testing.T) {
	applied := time.Date(2026, 8, 20, 15, 4, 5, 0, time.UTC)
	apps := []tracker.Application{
		{
			Status:        "Applied",
			Source:        "Indeed",
			JobURL:        "https://www.indeed.com/viewjob?jk=abc",
			CompanyName:   `Acme "Best" Diner, Inc.`,
			PositionTitle: "Line Cook",
			Location:      "Austin, TX",
			PayMin:        np(19.5),
			PayMax:        np(23),
			PayPeriod:     sp("hour"),
			Shift:         sp("Night shift, Weekend"),
			DateApplied:   &applied,
			Notes:         sp("spoke to\nthe manager"),
		},
	}

	var buf bytes.Buffer
	if err := tracker.WriteCSV(&buf, apps); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV despite quotes/commas/newlines: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("record count = %d, want header + 1 row", len(records))
	}

	row := records[1]
	checks := map[int]string{
		0:  `Acme "Best" Diner, Inc.`,
		1:  "Line Cook",
		4:  "19.5",
		5:  "23",
		6:  "hour",
		7:  "Night shift, Weekend",
		11: "Applied",
		12: "Indeed",
		14: "2026-08-20T15:04:05Z",
		17: "spoke to\nthe manager",
	}
	for i, want := range checks {
		if row[i] != want {
			t.Errorf("row[%d] = %q, want %q", i, row[i], want)
		}
	}

	// Absent optional values export as empty cells.
	for _, i := range []int{3, 8, 9, 10, 15, 16} {
		if row[i] != "" {
			t.Errorf("row[%d] = %q, want empty for absent value", i, row[i])
		}
	}
}
