package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// extractGeneric is the fallback profile for unrecognised sites: title from
// the first h1, the social-preview meta, or the tab title; source guessed
// from the site-name meta or the URL; everything else left empty/absent.
func extractGeneric(doc *html.Node, pageURL string) JobRecord {
	title := firstMatch(doc,
		func(d *html.Node) string { return elementText(findFirst(d, byTag("h1"))) },
		func(d *html.Node) string { return CleanText(metaContent(d, "og:title")) },
		pageTitle,
	)

	return JobRecord{
		JobURL:        pageURL,
		Source:        guessSource(doc, pageURL),
		PositionTitle: title,
	}
}

// guessSource prefers the page's declared site name, then a coarse domain
// match, then the generic company-site label.
func guessSource(doc *html.Node, pageURL string) string {
	if name := CleanText(metaContent(doc, "og:site_name")); name != "" {
		return name
	}
	if strings.Contains(pageURL, "linkedin.") {
		return SourceLinkedIn
	}
	return SourceCompanySite
}
