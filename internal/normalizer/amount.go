// Package normalizer cleans raw cell values into typed fields: amount
// strings into signed decimals, date strings into calendar dates, and
// description/note columns into a single Details string. Per-row parse
// failures are reported as a missing value, never as an error, so one bad
// row cannot abort a batch.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Currency symbols, thousands-separator commas and inner whitespace.
	currencyChars = regexp.MustCompile(`[$£€¥,\s]`)
	// Accounting negative notation: (12.00) means -12.00.
	parenNegative = regexp.MustCompile(`^\((.*)\)$`)
	// Trailing minus after the digits: 12.00- means -12.00.
	trailingMinus = regexp.MustCompile(`^(\d+\.?\d*)-$`)
)

// CleanAmount parses a raw amount cell into a signed decimal. The boolean is
// false when the value cannot be parsed; callers treat that as a missing
// amount on the row.
func CleanAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, false
	}

	s = currencyChars.ReplaceAllString(s, "")
	s = parenNegative.ReplaceAllString(s, "-$1")
	s = trailingMinus.ReplaceAllString(s, "-$1")

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
