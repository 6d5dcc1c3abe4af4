package scraper_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobtrack/api-service/internal/extract"
	"jobtrack/api-service/internal/scraper"
)

func newServer() *httptest.Server {
	mux := http.NewServeMux()
	scraper.NewHandler(scraper.NewPageFetcher()).RegisterRoutes(mux)
	return httptest.NewServer(mux)
}

func postExtract(t *testing.T, srv *httptest.Server, body string) (*http.Response, extract.JobRecord) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/extract", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /extract: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var rec extract.JobRecord
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
			t.Fatalf("decoding record: %v", err)
		}
	}
	return resp, rec
}

func TestHandleExtract_FromSubmittedHTML(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	page := `<html><head><title>Warehouse Associate</title></head><body></body></html>`
	body, _ := json.Marshal(map[string]string{
		"url":  "https://careers.example.com/jobs/1",
		"html": page,
	})

	resp, rec := postExtract(t, srv, string(body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if rec.PositionTitle != "Warehouse Associate" {
		t.Errorf("PositionTitle = %q", rec.PositionTitle)
	}
	if rec.Source != "CompanySite" {
		t.Errorf("Source = %q, want CompanySite", rec.Source)
	}
}

func TestHandleExtract_FetchesWhenOnlyURLGiven(t *testing.T) {
	page := `<html><head><title>Night Auditor</title></head><body></body></html>`
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer origin.Close()

	srv := newServer()
	defer srv.Close()

	body, _ := json.Marshal(map[string]string{"url": origin.URL + "/job"})
	resp, rec := postExtract(t, srv, string(body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if rec.PositionTitle != "Night Auditor" {
		t.Errorf("PositionTitle = %q, want fetched page title", rec.PositionTitle)
	}
}

func TestHandleExtract_FetchFailureDegradesToMinimalRecord(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer origin.Close()

	srv := newServer()
	defer srv.Close()

	url := origin.URL + "/job"
	body, _ := json.Marshal(map[string]string{"url": url})
	resp, rec := postExtract(t, srv, string(body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 with degraded record", resp.StatusCode)
	}
	if rec.JobURL != url {
		t.Errorf("JobURL = %q, want %q", rec.JobURL, url)
	}
	if rec.Source != "Other" {
		t.Errorf("Source = %q, want Other", rec.Source)
	}
	if rec.PositionTitle != "" {
		t.Errorf("PositionTitle = %q, want empty", rec.PositionTitle)
	}
}

func TestHandleExtract_RejectsEmptyRequest(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	resp, _ := postExtract(t, srv, `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when neither url nor html is given", resp.StatusCode)
	}
}

func TestHandleExtract_RejectsNonPost(t *testing.T) {
	srv := newServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/extract")
	if err != nil {
		t.Fatalf("GET /extract: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}
