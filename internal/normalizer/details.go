package normalizer

import (
	"strings"

	"banksheets/internal/csvtable"
)

// Auxiliary note/memo columns merged into Details, in priority order. Only
// the first column present in the input is merged, even if several exist.
var noteCandidates = []string{"Note", "note", "Notes", "Memo", "memo", "Reference", "ref"}

// MergeDetails combines the description value with the first present
// auxiliary note column of the row, single-space separated and trimmed.
func MergeDetails(description string, row csvtable.RawRecord) string {
	details := description
	for _, candidate := range noteCandidates {
		if note, ok := row[candidate]; ok {
			details = details + " " + note
			break
		}
	}
	return strings.TrimSpace(details)
}
