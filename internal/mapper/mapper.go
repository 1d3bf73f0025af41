// Package mapper infers which input columns feed the canonical
// date/description/amount/category fields. Inference is a pure function over
// the column names; user overrides are merged in a separate explicit step so
// no interactive state leaks into the cleaning pipeline.
package mapper

import (
	"strings"

	"banksheets/internal/models"
)

// Keyword patterns per canonical field, in priority order. Patterns are
// matched as case-insensitive substrings of the column name; the first
// pattern with a matching column wins, columns checked in table order.
var (
	datePatterns        = []string{"date", "trans", "time", "posted"}
	descriptionPatterns = []string{"description", "desc", "memo", "details", "payee", "merchant"}
	amountPatterns      = []string{"amount", "amt", "value", "debit", "credit", "balance"}
	categoryPatterns    = []string{"category", "cat", "type", "class"}
)

// InferMapping scans the input column names and returns the most likely
// column for each canonical field, or an empty string where nothing matches.
func InferMapping(columns []string) models.ColumnMapping {
	return models.ColumnMapping{
		Date:        findColumn(columns, datePatterns),
		Description: findColumn(columns, descriptionPatterns),
		Amount:      findColumn(columns, amountPatterns),
		Category:    findColumn(columns, categoryPatterns),
	}
}

// Overrides carries user-supplied column choices. Empty fields keep the
// inferred default.
type Overrides struct {
	Date        string
	Description string
	Amount      string
	Category    string
}

// ApplyOverrides merges user overrides into an inferred mapping. A non-empty
// override replaces the inferred column; an empty one keeps it.
func ApplyOverrides(inferred models.ColumnMapping, overrides Overrides) models.ColumnMapping {
	merged := inferred
	if overrides.Date != "" {
		merged.Date = overrides.Date
	}
	if overrides.Description != "" {
		merged.Description = overrides.Description
	}
	if overrides.Amount != "" {
		merged.Amount = overrides.Amount
	}
	if overrides.Category != "" {
		merged.Category = overrides.Category
	}
	return merged
}

func findColumn(columns []string, patterns []string) string {
	for _, pattern := range patterns {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(col), pattern) {
				return col
			}
		}
	}
	return ""
}
