// jobtrack-api-service
//
// Backend for a personal job-application tracker. Exposes a REST API used
// by the browser extension and the table UI:
//   - POST /extract                 — turn a posting page into a JobRecord
//   - GET/POST /applications        — list and save applications
//   - PATCH/DELETE /applications/{id}
//   - GET /export/csv               — spreadsheet download
//
// A cron loop surfaces applications whose follow-up date has come due,
// publishing EVENT_FOLLOWUP_DUE to Redis.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobtrack/api-service/internal/config"
	"jobtrack/api-service/internal/db"
	"jobtrack/api-service/internal/scheduler"
	"jobtrack/api-service/internal/scraper"
	"jobtrack/api-service/internal/tracker"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[api-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[api-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[api-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[api-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[api-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[api-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[api-service] Redis connected ✓")

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	store := tracker.NewStore(pool)
	tracker.NewHandler(store, rdb).RegisterRoutes(mux)
	scraper.NewHandler(scraper.NewPageFetcher()).RegisterRoutes(mux)

	// ── Follow-up reminder cron ──────────────────────────────────────────────
	sched := scheduler.New(store, rdb, cfg.FollowUpScanHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[api-service] Scheduler: %v", err)
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      withCORS(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("[api-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[api-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[api-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api-service] Shutdown error: %v", err)
	}
	log.Println("[api-service] Stopped.")
}

// withCORS applies the permissive headers the extension depends on and
// short-circuits OPTIONS preflights.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PATCH,DELETE,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "api-service",
		"version": version,
	})
}
