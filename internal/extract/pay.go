package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Pay period labels, the time unit a compensation figure is denominated in.
const (
	PeriodHour  = "hour"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var (
	payRangeRe  = regexp.MustCompile(`\$([0-9]+(?:\.[0-9]+)?)\s*-\s*\$([0-9]+(?:\.[0-9]+)?)`)
	paySingleRe = regexp.MustCompile(`\$([0-9]+(?:\.[0-9]+)?)`)
)

// Pay is the parsed result of a visible compensation line. Min carries the
// sole amount when no range is given; every field is nil when unknown.
type Pay struct {
	Min    *float64
	Max    *float64
	Period *string
}

// ParsePay recovers pay bounds and period from strings like
// "$19.50 - $23.00 an hour" or "$75,000 - $90,000 a year". Thousands
// separators are stripped first or the range pattern fails on the comma.
// Non-matching input yields all-nil — never an error.
func ParsePay(text string) Pay {
	s := strings.ReplaceAll(text, ",", "")

	var p Pay
	if m := payRangeRe.FindStringSubmatch(s); m != nil {
		if lo, err := strconv.ParseFloat(m[1], 64); err == nil {
			p.Min = numPtr(lo)
		}
		if hi, err := strconv.ParseFloat(m[2], 64); err == nil {
			p.Max = numPtr(hi)
		}
	} else if m := paySingleRe.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			p.Min = numPtr(v)
		}
	}

	p.Period = detectPeriod(s)
	return p
}

// detectPeriod tests period phrases in fixed order; first match wins.
func detectPeriod(s string) *string {
	lower := strings.ToLower(s)
	switch {
	case containsAny(lower, "an hour", "per hour", "/hr"):
		return strPtr(PeriodHour)
	case containsAny(lower, "a year", "per year"):
		return strPtr(PeriodYear)
	case containsAny(lower, "a week", "per week"):
		return strPtr(PeriodWeek)
	case containsAny(lower, "a month", "per month"):
		return strPtr(PeriodMonth)
	}
	return nil
}

// unitPeriod maps a structured-data unitText ("HOUR", "per year"…) to a
// period label by substring match.
func unitPeriod(unitText string) *string {
	lower := strings.ToLower(unitText)
	switch {
	case strings.Contains(lower, "hour"):
		return strPtr(PeriodHour)
	case strings.Contains(lower, "year"):
		return strPtr(PeriodYear)
	case strings.Contains(lower, "week"):
		return strPtr(PeriodWeek)
	case strings.Contains(lower, "month"):
		return strPtr(PeriodMonth)
	}
	return nil
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
