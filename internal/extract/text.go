package extract

import (
	"regexp"
	"strings"
)

var (
	// Markup-stripping artifact repairs: a lowercase letter glued to an
	// uppercase one ("OverviewWe"), and sentence punctuation glued to the
	// next word ("hiring.Join").
	mergedWordRe  = regexp.MustCompile(`([a-z])([A-Z])`)
	mergedPunctRe = regexp.MustCompile(`([.,;:!?])([A-Za-z])`)
)

// CleanText collapses every whitespace run (spaces, tabs, newlines) to a
// single space and trims the ends. Total and idempotent; "" in, "" out.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// repairDescription patches the two common word-join artifacts left behind
// when rendered text loses its markup boundaries.
func repairDescription(s string) string {
	s = mergedWordRe.ReplaceAllString(s, "$1 $2")
	s = mergedPunctRe.ReplaceAllString(s, "$1 $2")
	return s
}

// truncate caps s at max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
