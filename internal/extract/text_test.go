package extract_test

import (
	"testing"

	"jobtrack/api-service/internal/extract"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "Line Cook", "Line Cook"},
		{"leading and trailing", "  Line Cook  ", "Line Cook"},
		{"internal runs", "Line \t\t Cook", "Line Cook"},
		{"newlines and tabs", "Line\nCook\tNight\r\nShift", "Line Cook Night Shift"},
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := extract.CleanText(c.input); got != c.want {
				t.Errorf("CleanText(%q) = %q, want %q", c.input, got, c.want)
			}
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  a \n b \t c  ",
		"multi\n\n\nline\n\ntext",
	}
	for _, s := range inputs {
		once := extract.CleanText(s)
		twice := extract.CleanText(once)
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}
