package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// applicationColumns is the canonical SELECT/RETURNING column list; every
// scan in this file follows this order.
const applicationColumns = `id, status, source, job_url, company_name, position_title, location,
	company_phone, pay_min, pay_max, pay_period, shift, hours_per_week, job_type, workplace,
	date_posted, date_applied, last_followed_up_on, next_follow_up_on,
	contact_name, contact_email, job_description, resume_version, cover_letter_version, notes,
	created_at, updated_at`

// Store runs all application queries against Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a Store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*Application, error) {
	var a Application
	err := row.Scan(
		&a.ID, &a.Status, &a.Source, &a.JobURL, &a.CompanyName, &a.PositionTitle, &a.Location,
		&a.CompanyPhone, &a.PayMin, &a.PayMax, &a.PayPeriod, &a.Shift, &a.HoursPerWeek, &a.JobType, &a.Workplace,
		&a.DatePosted, &a.DateApplied, &a.LastFollowedUpOn, &a.NextFollowUpOn,
		&a.ContactName, &a.ContactEmail, &a.JobDescription, &a.ResumeVersion, &a.CoverLetterVersion, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns every application, most recently applied first, with
// never-applied records ordered by creation time.
func (s *Store) List(ctx context.Context) ([]Application, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 ORDER BY date_applied DESC NULLS LAST, created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	apps := make([]Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

// Get returns a single application by ID.
func (s *Store) Get(ctx context.Context, id string) (*Application, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get scan: %w", err)
	}
	return a, nil
}

// Create inserts a new application and returns the stored row.
func (s *Store) Create(ctx context.Context, app Application) (*Application, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO applications (
		   status, source, job_url, company_name, position_title, location,
		   company_phone, pay_min, pay_max, pay_period, shift, hours_per_week, job_type, workplace,
		   date_posted, date_applied, last_followed_up_on, next_follow_up_on,
		   contact_name, contact_email, job_description, resume_version, cover_letter_version, notes
		 ) VALUES (
		   $1, $2, $3, $4, $5, $6,
		   $7, $8, $9, $10, $11, $12, $13, $14,
		   $15, $16, $17, $18,
		   $19, $20, $21, $22, $23, $24
		 )
		 RETURNING `+applicationColumns,
		app.Status, app.Source, app.JobURL, app.CompanyName, app.PositionTitle, app.Location,
		app.CompanyPhone, app.PayMin, app.PayMax, app.PayPeriod, app.Shift, app.HoursPerWeek, app.JobType, app.Workplace,
		app.DatePosted, app.DateApplied, app.LastFollowedUpOn, app.NextFollowUpOn,
		app.ContactName, app.ContactEmail, app.JobDescription, app.ResumeVersion, app.CoverLetterVersion, app.Notes,
	)
	created, err := scanApplication(row)
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return created, nil
}

// UpdateStatusNotes applies the PATCH surface: optional status, optional
// notes, and the Applied stamping rule. Nil arguments leave the stored value
// untouched; stampApplied sets date_applied to now when the record has never
// been applied before.
func (s *Store) UpdateStatusNotes(ctx context.Context, id string, status *Status, notes *string, stampApplied bool) (*Application, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE applications
		 SET status       = COALESCE($1, status),
		     notes        = COALESCE($2, notes),
		     date_applied = CASE WHEN $3 AND date_applied IS NULL THEN NOW() ELSE date_applied END,
		     updated_at   = NOW()
		 WHERE id = $4
		 RETURNING `+applicationColumns,
		status, notes, stampApplied, id,
	)
	updated, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update: %w", err)
	}
	return updated, nil
}

// Delete removes an application; ErrNotFound when no row matched.
func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// FollowUpDue is the slice of an application the reminder scheduler needs.
type FollowUpDue struct {
	ID             string
	CompanyName    string
	PositionTitle  string
	NextFollowUpOn time.Time
}

// DueFollowUps returns applications whose follow-up date has passed and that
// are still live (not rejected).
func (s *Store) DueFollowUps(ctx context.Context, now time.Time) ([]FollowUpDue, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, company_name, position_title, next_follow_up_on
		 FROM applications
		 WHERE next_follow_up_on IS NOT NULL
		   AND next_follow_up_on <= $1
		   AND status <> $2
		 ORDER BY next_follow_up_on ASC`,
		now, string(StatusRejected),
	)
	if err != nil {
		return nil, fmt.Errorf("dueFollowUps query: %w", err)
	}
	defer rows.Close()

	var due []FollowUpDue
	for rows.Next() {
		var d FollowUpDue
		if err := rows.Scan(&d.ID, &d.CompanyName, &d.PositionTitle, &d.NextFollowUpOn); err != nil {
			return nil, fmt.Errorf("dueFollowUps scan: %w", err)
		}
		due = append(due, d)
	}
	return due, rows.Err()
}

// ─── Sentinel errors ─────────────────────────────────────────────────────────

// ErrNotFound is returned when an application does not exist.
var ErrNotFound = errors.New("application not found")

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
