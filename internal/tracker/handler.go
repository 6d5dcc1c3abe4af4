// HTTP handlers for the tracker surface.
//
// Routes:
//
//	GET    /applications          → list all applications
//	POST   /applications          → save a new application
//	PATCH  /applications/{id}     → update status and/or notes
//	DELETE /applications/{id}     → remove an application
//	GET    /export/csv            → download every application as CSV
//
// CORS headers and OPTIONS preflights are handled by the server-wide
// middleware in cmd: the caller is a browser extension on arbitrary origins.
package tracker

import (
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis channels for non-fatal change events.
const (
	eventApplicationSaved = "EVENT_APPLICATION_SAVED"
	eventStatusChanged    = "EVENT_STATUS_CHANGED"
)

// Handler holds shared dependencies.
type Handler struct {
	store *Store
	rdb   *redis.Client
}

// NewHandler returns a configured Handler.
func NewHandler(store *Store, rdb *redis.Client) *Handler {
	return &Handler{store: store, rdb: rdb}
}

// RegisterRoutes mounts all tracker routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/applications", h.handleApplications)
	mux.HandleFunc("/applications/", h.handleApplicationByID)
	mux.HandleFunc("/export/csv", h.handleExportCSV)
}

// ─── Route dispatch ───────────────────────────────────────────────────────────

func (h *Handler) handleApplications(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listApplications(w, r)
	case http.MethodPost:
		h.createApplication(w, r)
	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleApplicationByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/applications/")
	if id == "" || strings.Contains(id, "/") {
		jsonError(w, "missing id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		h.patchApplication(w, r, id)
	case http.MethodDelete:
		h.deleteApplication(w, r, id)
	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// ─── Individual handlers ──────────────────────────────────────────────────────

func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("[tracker] list error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *Handler) createApplication(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.store.Create(r.Context(), NewApplication(&req, time.Now().UTC()))
	if err != nil {
		log.Printf("[tracker] create error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}

	h.publish(r, eventApplicationSaved, map[string]string{
		"applicationId": created.ID,
		"source":        created.Source,
		"status":        created.Status,
	})

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) patchApplication(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Status *string `json:"status"`
		Notes  *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	existing, err := h.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			jsonError(w, "not found", http.StatusNotFound)
			return
		}
		log.Printf("[tracker] patch lookup error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}

	// Unknown status strings are ignored, not rejected: the stored value
	// stays and only recognised values (or friendly labels) move the record.
	var newStatus *Status
	if body.Status != nil {
		if st, ok := CoercePatchStatus(*body.Status); ok {
			newStatus = &st
		}
	}

	nextStatus := Status(existing.Status)
	if newStatus != nil {
		nextStatus = *newStatus
	}
	stampApplied := nextStatus == StatusApplied && existing.DateApplied == nil

	updated, err := h.store.UpdateStatusNotes(r.Context(), id, newStatus, body.Notes, stampApplied)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			jsonError(w, "not found", http.StatusNotFound)
			return
		}
		log.Printf("[tracker] patch update error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}

	if newStatus != nil && string(*newStatus) != existing.Status {
		h.publish(r, eventStatusChanged, map[string]string{
			"applicationId": id,
			"from":          existing.Status,
			"to":            updated.Status,
		})
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteApplication(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			jsonError(w, "not found", http.StatusNotFound)
			return
		}
		log.Printf("[tracker] delete error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	apps, err := h.store.List(r.Context())
	if err != nil {
		log.Printf("[tracker] export query error: %v", err)
		jsonError(w, "database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="applications.csv"`)
	if err := WriteCSV(w, apps); err != nil {
		log.Printf("[tracker] export write error: %v", err)
	}
}

// publish sends a change event to Redis. Event delivery is best-effort and
// never fails the request.
func (h *Handler) publish(r *http.Request, channel string, payload map[string]string) {
	if h.rdb == nil {
		return
	}
	payload["type"] = channel
	event, _ := json.Marshal(payload)
	if err := h.rdb.Publish(r.Context(), channel, event).Err(); err != nil {
		slog.Warn("publish failed", "channel", channel, "err", err)
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
