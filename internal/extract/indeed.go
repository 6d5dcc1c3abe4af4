package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Indeed-specific extraction. Every field runs a fallback chain in descending
// specificity so layout drift degrades a field to empty instead of failing
// the whole record. Selector names track Indeed's data-testid markers.

var (
	// A title like "jobs in Redondo Beach, CA" means the search-results
	// header was grabbed, not a posting title.
	searchHeaderRe = regexp.MustCompile(`(?i)^jobs\s+in\s+`)

	periodWordRe = regexp.MustCompile(`(?i)(hour|year|week|month)`)

	shiftHeadingRe = regexp.MustCompile(`(?i)shift and schedule`)
	scheduleTermRe = regexp.MustCompile(`(?i)(weekend|evening|morning|night|shift|schedule|day shift|overnight|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
)

const maxShiftPills = 8

func extractIndeed(doc *html.Node) JobRecord {
	jp, hasJP := FindJobPosting(doc)

	rec := JobRecord{
		PositionTitle: indeedTitle(doc),
		CompanyName:   indeedCompany(doc),
		Location:      indeedLocation(doc),
	}

	pay := indeedPay(doc, jp, hasJP)
	rec.PayMin, rec.PayMax, rec.PayPeriod = pay.Min, pay.Max, pay.Period

	if shift := indeedShift(doc); shift != "" {
		rec.Shift = strPtr(shift)
	}

	rec.JobDescription = indeedDescription(doc, jp, hasJP)
	return rec
}

// indeedTitle resolves the posting title from the info header (h1, then h2,
// then the container itself), the social-preview meta, or the tab title —
// then discards search-results-page artifacts rather than propagating them.
func indeedTitle(doc *html.Node) string {
	title := firstMatch(doc,
		func(d *html.Node) string {
			header := findFirst(d, byTestID("jobsearch-JobInfoHeader-title"))
			if header == nil {
				return ""
			}
			for _, tag := range []string{"h1", "h2"} {
				if n := findFirst(header, byTag(tag)); n != nil {
					return elementText(n)
				}
			}
			return elementText(header)
		},
		func(d *html.Node) string { return CleanText(metaContent(d, "og:title")) },
		pageTitle,
	)

	if searchHeaderRe.MatchString(title) {
		return ""
	}
	return title
}

func indeedCompany(doc *html.Node) string {
	return firstMatch(doc,
		func(d *html.Node) string {
			if c := findFirst(d, byTestID("inlineHeader-companyName")); c != nil {
				return elementText(findFirst(c, byTag("a")))
			}
			return ""
		},
		func(d *html.Node) string {
			return elementText(findFirst(d, byTestID("inlineHeader-companyName")))
		},
		func(d *html.Node) string {
			return elementText(findFirst(d, byTestID("jobsearch-JobInfoHeader-companyName")))
		},
	)
}

func indeedLocation(doc *html.Node) string {
	return firstMatch(doc,
		func(d *html.Node) string {
			return elementText(findFirst(d, byTestID("inlineHeader-companyLocation")))
		},
		func(d *html.Node) string {
			return elementText(findFirst(d, byTestID("jobsearch-JobInfoHeader-companyLocation")))
		},
	)
}

// indeedPay runs the three-tier pay fallback: structured-data baseSalary,
// then a scan of the job-details region for a line carrying a currency sign
// and a period keyword, then the narrower visible pay line. Tiers are never
// merged — the first one that produces numbers wins.
func indeedPay(doc *html.Node, jp Node, hasJP bool) Pay {
	var p Pay

	if hasJP {
		if bs, ok := jp.Child("baseSalary"); ok {
			p = structuredPay(bs)
		}
	}

	if p.Min == nil && p.Max == nil {
		payStr := detailsPayLine(doc)
		if payStr == "" {
			if visible := visiblePayLine(doc); strings.Contains(visible, "$") {
				payStr = visible
			}
		}
		if payStr != "" {
			p = ParsePay(payStr)
		}
	}

	return p
}

// structuredPay reads baseSalary, which nests its numbers either directly or
// one level down under a value wrapper. A lone value number stands in for the
// minimum when no explicit minValue is present.
func structuredPay(baseSalary Node) Pay {
	value := baseSalary
	if inner, ok := baseSalary.Child("value"); ok {
		value = inner
	}
	nested, hasNested := value.Child("value")

	var p Pay

	if v, ok := value.Num("minValue"); ok {
		p.Min = numPtr(v)
	} else if hasNested {
		if v, ok := nested.Num("minValue"); ok {
			p.Min = numPtr(v)
		}
	}

	if v, ok := value.Num("maxValue"); ok {
		p.Max = numPtr(v)
	} else if hasNested {
		if v, ok := nested.Num("maxValue"); ok {
			p.Max = numPtr(v)
		}
	}

	if p.Min == nil {
		if v, ok := value.Num("value"); ok {
			p.Min = numPtr(v)
		}
	}

	unit, ok := value.Str("unitText")
	if !ok && hasNested {
		unit, _ = nested.Str("unitText")
	}
	p.Period = unitPeriod(unit)

	return p
}

// detailsPayLine scans every element under the job-details section for the
// first text containing a currency sign and a period keyword.
func detailsPayLine(doc *html.Node) string {
	section := findFirst(doc, byTestID("jobsearch-JobDetailsSection"))
	if section == nil {
		return ""
	}
	for _, el := range findAll(section, func(*html.Node) bool { return true }) {
		if el == section {
			continue
		}
		t := elementText(el)
		if strings.Contains(t, "$") && periodWordRe.MatchString(t) {
			return t
		}
	}
	return ""
}

// visiblePayLine is the narrower visible fallback region, tried only after
// the details-section scan produced nothing.
func visiblePayLine(doc *html.Node) string {
	return firstMatch(doc,
		func(d *html.Node) string {
			section := findFirst(d, byTestID("jobsearch-JobDetailsSection"))
			if section == nil {
				return ""
			}
			return elementText(findFirst(section, attrContains("aria-label", "Pay")))
		},
		func(d *html.Node) string {
			return elementText(findFirst(d, byTestID("jobsearch-JobDetailsSection")))
		},
		func(d *html.Node) string {
			return elementText(findFirst(d, byAttr("id", "salaryInfoAndJobType")))
		},
	)
}

// indeedShift aggregates schedule pills under the "Shift and schedule"
// heading: short button/span/li texts containing a schedule keyword,
// de-duplicated case-insensitively with first-seen casing kept, capped at
// eight, comma-joined. No heading or no pills yields "".
func indeedShift(doc *html.Node) string {
	heading := findFirst(doc, func(n *html.Node) bool {
		if !strings.EqualFold(n.Data, "h2") && !strings.EqualFold(n.Data, "h3") {
			return false
		}
		return shiftHeadingRe.MatchString(textContent(n))
	})
	if heading == nil || heading.Parent == nil {
		return ""
	}

	candidates := findAll(heading.Parent, func(n *html.Node) bool {
		switch strings.ToLower(n.Data) {
		case "button", "span", "li":
			return true
		}
		return false
	})

	seen := make(map[string]bool)
	var pills []string
	for _, el := range candidates {
		t := elementText(el)
		if t == "" || utf8.RuneCountInString(t) >= 80 {
			continue
		}
		if !scheduleTermRe.MatchString(t) {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		pills = append(pills, t)
		if len(pills) == maxShiftPills {
			break
		}
	}

	return strings.Join(pills, ", ")
}

// indeedDescription prefers the rendered description element's visible text,
// falling back to the structured-data description, then repairs the two
// common markup-stripping artifacts.
func indeedDescription(doc *html.Node, jp Node, hasJP bool) string {
	el := findFirst(doc, byAttr("id", "jobDescriptionText"))
	if el == nil {
		el = findFirst(doc, byTestID("jobDescriptionText"))
	}

	desc := ""
	if el != nil {
		desc = visibleText(el)
	}
	if desc == "" && hasJP {
		if d, ok := jp.Str("description"); ok {
			desc = CleanText(d)
		}
	}

	return repairDescription(desc)
}
