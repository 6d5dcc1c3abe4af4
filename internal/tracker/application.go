package tracker

import (
	"fmt"
	"time"
)

// Application is the stored job-application record and the JSON shape
// returned to the extension popup and the table UI. Optional columns are
// pointers so absent values serialise as null rather than zero values.
type Application struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Source string `json:"source"`

	JobURL        string `json:"jobUrl"`
	CompanyName   string `json:"companyName"`
	PositionTitle string `json:"positionTitle"`
	Location      string `json:"location"`

	CompanyPhone *string  `json:"companyPhone"`
	PayMin       *float64 `json:"payMin"`
	PayMax       *float64 `json:"payMax"`
	PayPeriod    *string  `json:"payPeriod"`
	Shift        *string  `json:"shift"`
	HoursPerWeek *float64 `json:"hoursPerWeek"`
	JobType      *string  `json:"jobType"`
	Workplace    *string  `json:"workplace"`

	DatePosted       *time.Time `json:"datePosted"`
	DateApplied      *time.Time `json:"dateApplied"`
	LastFollowedUpOn *time.Time `json:"lastFollowedUpOn"`
	NextFollowUpOn   *time.Time `json:"nextFollowUpOn"`

	ContactName        *string `json:"contactName"`
	ContactEmail       *string `json:"contactEmail"`
	JobDescription     *string `json:"jobDescription"`
	ResumeVersion      *string `json:"resumeVersion"`
	CoverLetterVersion *string `json:"coverLetterVersion"`
	Notes              *string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateRequest is the POST /applications body, as sent by the extension
// popup after the user reviews the extracted fields.
type CreateRequest struct {
	Status string `json:"status"`
	Source string `json:"source"`

	JobURL        string `json:"jobUrl"`
	CompanyName   string `json:"companyName"`
	PositionTitle string `json:"positionTitle"`
	Location      string `json:"location"`

	CompanyPhone *string  `json:"companyPhone"`
	PayMin       *float64 `json:"payMin"`
	PayMax       *float64 `json:"payMax"`
	PayPeriod    *string  `json:"payPeriod"`
	Shift        *string  `json:"shift"`
	HoursPerWeek *float64 `json:"hoursPerWeek"`
	JobType      *string  `json:"jobType"`
	Workplace    *string  `json:"workplace"`

	DatePosted  *time.Time `json:"datePosted"`
	DateApplied *time.Time `json:"dateApplied"`

	LastFollowedUpOn *time.Time `json:"lastFollowedUpOn"`
	NextFollowUpOn   *time.Time `json:"nextFollowUpOn"`

	ContactName        *string `json:"contactName"`
	ContactEmail       *string `json:"contactEmail"`
	JobDescription     *string `json:"jobDescription"`
	ResumeVersion      *string `json:"resumeVersion"`
	CoverLetterVersion *string `json:"coverLetterVersion"`
	Notes              *string `json:"notes"`
}

// Validate enforces the storage contract: the four identifying fields must
// be non-empty before a record is persisted.
func (r *CreateRequest) Validate() error {
	required := []struct {
		field, value string
	}{
		{"jobUrl", r.JobURL},
		{"companyName", r.CompanyName},
		{"positionTitle", r.PositionTitle},
		{"location", r.Location},
	}
	for _, req := range required {
		if req.value == "" {
			return &ValidationError{Msg: fmt.Sprintf("%s is required", req.field)}
		}
	}
	return nil
}

// NewApplication builds the row to insert from a create request, applying
// the status default and the Applied stamping rule: dateApplied is set only
// when the record arrives at Applied status (client timestamp honoured,
// otherwise now).
func NewApplication(req *CreateRequest, now time.Time) Application {
	status := CoerceCreateStatus(req.Status)

	source := req.Source
	if source == "" {
		source = "Other"
	}

	var dateApplied *time.Time
	if status == StatusApplied {
		if req.DateApplied != nil {
			dateApplied = req.DateApplied
		} else {
			t := now
			dateApplied = &t
		}
	}

	return Application{
		Status:             string(status),
		Source:             source,
		JobURL:             req.JobURL,
		CompanyName:        req.CompanyName,
		PositionTitle:      req.PositionTitle,
		Location:           req.Location,
		CompanyPhone:       req.CompanyPhone,
		PayMin:             req.PayMin,
		PayMax:             req.PayMax,
		PayPeriod:          req.PayPeriod,
		Shift:              req.Shift,
		HoursPerWeek:       req.HoursPerWeek,
		JobType:            req.JobType,
		Workplace:          req.Workplace,
		DatePosted:         req.DatePosted,
		DateApplied:        dateApplied,
		LastFollowedUpOn:   req.LastFollowedUpOn,
		NextFollowUpOn:     req.NextFollowUpOn,
		ContactName:        req.ContactName,
		ContactEmail:       req.ContactEmail,
		JobDescription:     req.JobDescription,
		ResumeVersion:      req.ResumeVersion,
		CoverLetterVersion: req.CoverLetterVersion,
		Notes:              req.Notes,
	}
}
