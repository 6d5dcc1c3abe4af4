package tracker

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// csvHeader fixes the export column order; the spreadsheet the user keeps
// depends on it staying stable.
var csvHeader = []string{
	"companyName",
	"positionTitle",
	"location",
	"companyPhone",
	"payMin",
	"payMax",
	"payPeriod",
	"shift",
	"hoursPerWeek",
	"jobType",
	"workplace",
	"status",
	"source",
	"jobUrl",
	"dateApplied",
	"lastFollowedUpOn",
	"nextFollowUpOn",
	"notes",
}

// WriteCSV renders applications as CSV with the fixed header. Quoting and
// escaping follow encoding/csv; absent optional values become empty cells.
func WriteCSV(w io.Writer, apps []Application) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range apps {
		if err := cw.Write(csvRow(&apps[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(a *Application) []string {
	return []string{
		a.CompanyName,
		a.PositionTitle,
		a.Location,
		optStr(a.CompanyPhone),
		optNum(a.PayMin),
		optNum(a.PayMax),
		optStr(a.PayPeriod),
		optStr(a.Shift),
		optNum(a.HoursPerWeek),
		optStr(a.JobType),
		optStr(a.Workplace),
		a.Status,
		a.Source,
		a.JobURL,
		optTime(a.DateApplied),
		optTime(a.LastFollowedUpOn),
		optTime(a.NextFollowUpOn),
		optStr(a.Notes),
	}
}

func optStr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optNum(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func optTime(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}
