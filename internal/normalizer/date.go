package normalizer

import (
	"regexp"
	"strings"
	"time"
)

// Unambiguous formats commonly found in bank exports, tried after the
// ambiguous numeric ones.
var commonFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006/01/02",
	"02.01.2006",
	"2-Jan-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
}

// Ambiguous numeric formats where day/month order depends on convention.
var (
	monthFirstFormats = []string{"01/02/2006", "1/2/2006", "01-02-2006", "1-2-2006"}
	dayFirstFormats   = []string{"02/01/2006", "2/1/2006", "02-01-2006", "2-1-2006"}
)

var multiSpace = regexp.MustCompile(`\s+`)

// CleanDate parses a raw date cell into a calendar date. Ambiguous numeric
// dates are read month-first by default; dayFirst switches to the day-first
// convention. The boolean is false when the value cannot be parsed.
func CleanDate(raw string, dayFirst bool) (time.Time, bool) {
	s := multiSpace.ReplaceAllString(strings.TrimSpace(raw), " ")
	if s == "" {
		return time.Time{}, false
	}

	ambiguous := monthFirstFormats
	if dayFirst {
		ambiguous = dayFirstFormats
	}

	for _, format := range ambiguous {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}
	for _, format := range commonFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
