package scraper

import (
	"encoding/json"
	"log"
	"net/http"

	"jobtrack/api-service/internal/extract"
)

// Handler serves POST /extract: the extension (or any client) submits a
// posting page and gets the normalised JobRecord back.
type Handler struct {
	fetcher *PageFetcher
}

// NewHandler returns a configured Handler.
func NewHandler(fetcher *PageFetcher) *Handler {
	return &Handler{fetcher: fetcher}
}

// RegisterRoutes mounts the extraction route on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/extract", h.handleExtract)
}

// ExtractRequest carries either the page HTML the client already holds, or
// just a URL for the service to fetch itself. HTML wins when both are set —
// the client's rendered snapshot beats a cold fetch.
type ExtractRequest struct {
	URL  string `json:"url"`
	HTML string `json:"html"`
}

func (h *Handler) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.HTML == "" && req.URL == "" {
		writeError(w, "body must contain url or html", http.StatusBadRequest)
		return
	}

	rawHTML := req.HTML
	if rawHTML == "" {
		fetched, err := h.fetcher.Fetch(r.Context(), req.URL)
		if err != nil {
			// Degrade rather than fail: the user keeps the URL and fills
			// the remaining fields by hand.
			log.Printf("[scraper] fetch %s failed: %v", req.URL, err)
			writeRecord(w, extract.MinimalRecord(req.URL))
			return
		}
		rawHTML = fetched
	}

	writeRecord(w, safeExtract(rawHTML, req.URL))
}

// safeExtract shields the caller from any panic inside extraction; a broken
// page yields the minimal record, never a 500.
func safeExtract(rawHTML, pageURL string) (rec extract.JobRecord) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("[scraper] extraction panic for %s: %v", pageURL, p)
			rec = extract.MinimalRecord(pageURL)
		}
	}()
	return extract.ExtractHTML(rawHTML, pageURL)
}

func writeRecord(w http.ResponseWriter, rec extract.JobRecord) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(rec)
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
