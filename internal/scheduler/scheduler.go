// Package scheduler wires up the cron job that periodically surfaces
// applications whose follow-up date has come due.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"jobtrack/api-service/internal/tracker"
)

const (
	eventFollowUpDue = "EVENT_FOLLOWUP_DUE"

	// A reminder marker outlives the scan interval by a wide margin so a
	// due follow-up is announced once, not on every cycle.
	markerTTL = 72 * time.Hour
)

// Scheduler wraps robfig/cron and manages the follow-up reminder loop.
type Scheduler struct {
	cron  *cron.Cron
	store *tracker.Store
	rdb   *redis.Client
	spec  string // cron spec, e.g. "@every 1h"
}

// New creates a Scheduler that scans every intervalHours hours.
func New(store *tracker.Store, rdb *redis.Client, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLogger(cron.DefaultLogger)),
		store: store,
		rdb:   rdb,
		spec:  fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one scan
// immediately so due reminders surface without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runScan(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Follow-up cron started — spec: %s", s.spec)

	go s.runScan(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

// runScan loads due follow-ups and announces each one at most once per due
// date, using a Redis SETNX marker as the once-guard.
func (s *Scheduler) runScan(ctx context.Context) {
	due, err := s.store.DueFollowUps(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("[scheduler] DueFollowUps error: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	announced := 0
	for _, d := range due {
		marker := fmt.Sprintf("followup:%s:%s", d.ID, d.NextFollowUpOn.UTC().Format("2006-01-02"))
		fresh, err := s.rdb.SetNX(ctx, marker, 1, markerTTL).Result()
		if err != nil {
			log.Printf("[scheduler] marker %s error: %v — continuing", marker, err)
			continue
		}
		if !fresh {
			continue
		}

		event, _ := json.Marshal(map[string]string{
			"type":          eventFollowUpDue,
			"applicationId": d.ID,
			"companyName":   d.CompanyName,
			"positionTitle": d.PositionTitle,
			"dueOn":         d.NextFollowUpOn.UTC().Format(time.RFC3339),
		})
		if err := s.rdb.Publish(ctx, eventFollowUpDue, event).Err(); err != nil {
			log.Printf("[scheduler] publish %s failed: %v", eventFollowUpDue, err)
			continue
		}
		announced++
	}

	log.Printf("[scheduler] Scan complete — due=%d announced=%d", len(due), announced)
}
