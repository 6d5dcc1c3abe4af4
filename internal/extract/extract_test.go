package extract_test

import (
	"strings"
	"testing"

	"jobtrack/api-service/internal/extract"
)

// ── Generic extractor / dispatcher ─────────────────────────────────────────

func TestExtract_GenericBareTabTitle(t *testing.T) {
	page := `<html><head><title>Warehouse Associate</title></head><body></body></html>`
	url := "https://careers.example.com/jobs/123"

	rec := extract.Extract(parseDoc(t, page), url)

	if rec.JobURL != url {
		t.Errorf("JobURL = %q, want %q", rec.JobURL, url)
	}
	if rec.PositionTitle != "Warehouse Associate" {
		t.Errorf("PositionTitle = %q, want tab title", rec.PositionTitle)
	}
	if rec.Source != "CompanySite" {
		t.Errorf("Source = %q, want CompanySite", rec.Source)
	}
	if rec.CompanyName != "" || rec.Location != "" || rec.JobDescription != "" {
		t.Errorf("company/location/description should stay empty, got %q %q %q",
			rec.CompanyName, rec.Location, rec.JobDescription)
	}
	if rec.PayMin != nil || rec.PayMax != nil || rec.PayPeriod != nil || rec.Shift != nil {
		t.Error("pay and shift fields should all be absent on a generic page")
	}
}

func TestExtract_GenericTitleChain(t *testing.T) {
	cases := []struct {
		name string
		page string
		want string
	}{
		{
			"h1 wins",
			`<html><head><title>Tab</title><meta property="og:title" content="Meta"></head><body><h1> Heading </h1></body></html>`,
			"Heading",
		},
		{
			"og:title when no h1",
			`<html><head><title>Tab</title><meta property="og:title" content="Meta"></head><body></body></html>`,
			"Meta",
		},
		{
			"tab title last",
			`<html><head><title>Tab</title></head><body></body></html>`,
			"Tab",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := extract.Extract(parseDoc(t, c.page), "https://careers.example.com/x")
			if rec.PositionTitle != c.want {
				t.Errorf("PositionTitle = %q, want %q", rec.PositionTitle, c.want)
			}
		})
	}
}

func TestExtract_SourceGuess(t *testing.T) {
	cases := []struct {
		name string
		page string
		url  string
		want string
	}{
		{
			"site name meta",
			`<html><head><meta property="og:site_name" content="Greenhouse"></head><body></body></html>`,
			"https://boards.example.io/acme/1",
			"Greenhouse",
		},
		{
			"linkedin domain heuristic",
			`<html><head></head><body></body></html>`,
			"https://www.linkedin.com/jobs/view/456",
			"LinkedIn",
		},
		{
			"generic fallback",
			`<html><head></head><body></body></html>`,
			"https://jobs.acme.example/789",
			"CompanySite",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := extract.Extract(parseDoc(t, c.page), c.url)
			if rec.Source != c.want {
				t.Errorf("Source = %q, want %q", rec.Source, c.want)
			}
		})
	}
}

func TestExtract_FieldCaps(t *testing.T) {
	long := strings.Repeat("x", 500)
	page := `<html><body><h1>` + long + `</h1></body></html>`

	rec := extract.Extract(parseDoc(t, page), "https://careers.example.com/x")
	if got := len(rec.PositionTitle); got != 180 {
		t.Errorf("PositionTitle length = %d, want 180", got)
	}
}

func TestExtractHTML_MatchesExtract(t *testing.T) {
	page := `<html><head><title>Night Auditor</title></head><body></body></html>`
	url := "https://careers.example.com/n"

	a := extract.Extract(parseDoc(t, page), url)
	b := extract.ExtractHTML(page, url)
	if a.PositionTitle != b.PositionTitle || a.Source != b.Source || a.JobURL != b.JobURL {
		t.Errorf("ExtractHTML diverged from Extract: %+v vs %+v", b, a)
	}
}

func TestMinimalRecord(t *testing.T) {
	rec := extract.MinimalRecord("https://example.com/job")
	if rec.JobURL != "https://example.com/job" {
		t.Errorf("JobURL = %q", rec.JobURL)
	}
	if rec.Source != "Other" {
		t.Errorf("Source = %q, want Other", rec.Source)
	}
}
