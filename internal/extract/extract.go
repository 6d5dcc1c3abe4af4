// Package extract turns a parsed job-posting page into a normalised JobRecord.
//
// The entry point is Extract: it always runs the generic extractor as a
// baseline, then overlays a site-specific extractor when the URL matches a
// known board. All extractors are pure functions over an already-parsed
// golang.org/x/net/html document — no network access, no hidden globals —
// so they can be tested against fixed HTML fixtures.
package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Known source labels. Anything unrecognised falls back to SourceOther.
const (
	SourceIndeed      = "Indeed"
	SourceLinkedIn    = "LinkedIn"
	SourceCompanySite = "CompanySite"
	SourceOther       = "Other"
)

// Field length caps applied before a record is handed to the caller.
const (
	maxFieldLen       = 180
	maxDescriptionLen = 20000
)

// JobRecord is the normalised output of extraction. Pay and shift fields are
// nil when the page exposes no value — never an empty string standing in for
// "unknown". The description defaults to "" rather than nil.
type JobRecord struct {
	JobURL         string   `json:"jobUrl"`
	Source         string   `json:"source"`
	PositionTitle  string   `json:"positionTitle"`
	CompanyName    string   `json:"companyName"`
	Location       string   `json:"location"`
	PayMin         *float64 `json:"payMin"`
	PayMax         *float64 `json:"payMax"`
	PayPeriod      *string  `json:"payPeriod"`
	Shift          *string  `json:"shift"`
	JobDescription string   `json:"jobDescription"`
}

// MinimalRecord is the degraded fallback when extraction fails outright:
// the caller keeps the URL and fills the rest by hand.
func MinimalRecord(pageURL string) JobRecord {
	return JobRecord{JobURL: pageURL, Source: SourceOther}
}

// Extract produces a JobRecord for the page at pageURL. The generic extractor
// supplies the floor; if the URL belongs to Indeed, the Indeed extractor's
// fields replace it wholesale and the source is forced to the canonical label.
func Extract(doc *html.Node, pageURL string) JobRecord {
	rec := extractGeneric(doc, pageURL)

	if strings.Contains(pageURL, "indeed.") {
		ind := extractIndeed(doc)
		rec.PositionTitle = ind.PositionTitle
		rec.CompanyName = ind.CompanyName
		rec.Location = ind.Location
		rec.PayMin = ind.PayMin
		rec.PayMax = ind.PayMax
		rec.PayPeriod = ind.PayPeriod
		rec.Shift = ind.Shift
		rec.JobDescription = ind.JobDescription
		rec.Source = SourceIndeed
	}

	rec.JobURL = pageURL
	if rec.Source == "" {
		rec.Source = SourceOther
	}
	rec.PositionTitle = truncate(rec.PositionTitle, maxFieldLen)
	rec.CompanyName = truncate(rec.CompanyName, maxFieldLen)
	rec.Location = truncate(rec.Location, maxFieldLen)
	rec.JobDescription = truncate(rec.JobDescription, maxDescriptionLen)
	return rec
}

// ExtractHTML parses raw HTML and extracts from it. A parse failure yields
// the minimal record — html.Parse is tolerant, so this only trips on I/O
// level problems, but the caller must never see an error from extraction.
func ExtractHTML(rawHTML, pageURL string) JobRecord {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil || doc == nil {
		return MinimalRecord(pageURL)
	}
	return Extract(doc, pageURL)
}

// textStrategy is a single attempt at resolving a field from the document.
// Strategies run in order; the first non-empty result wins.
type textStrategy func(doc *html.Node) string

func firstMatch(doc *html.Node, strategies ...textStrategy) string {
	for _, s := range strategies {
		if v := s(doc); v != "" {
			return v
		}
	}
	return ""
}

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }
