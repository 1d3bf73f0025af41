package mapper

import (
	"testing"

	"banksheets/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestInferMapping(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		expected models.ColumnMapping
	}{
		{
			name:    "Typical bank export",
			columns: []string{"Transaction Date", "Description", "Amount", "Category"},
			expected: models.ColumnMapping{
				Date:        "Transaction Date",
				Description: "Description",
				Amount:      "Amount",
				Category:    "Category",
			},
		},
		{
			name:    "Case-insensitive substring match",
			columns: []string{"POSTED_DATE", "MERCHANT", "AMT", "TYPE"},
			expected: models.ColumnMapping{
				Date:        "POSTED_DATE",
				Description: "MERCHANT",
				Amount:      "AMT",
				Category:    "TYPE",
			},
		},
		{
			name:    "Pattern priority beats column order",
			columns: []string{"Memo", "Posted", "Description", "Date"},
			// "date" is a higher-priority pattern than "posted", and
			// "description" higher than "memo", regardless of column order.
			expected: models.ColumnMapping{
				Date:        "Date",
				Description: "Description",
				Amount:      "",
				Category:    "",
			},
		},
		{
			name:    "First column wins within one pattern",
			columns: []string{"Debit Amount", "Credit Amount"},
			expected: models.ColumnMapping{
				Date:        "",
				Description: "",
				Amount:      "Debit Amount",
				Category:    "",
			},
		},
		{
			name:     "Nothing matches",
			columns:  []string{"Foo", "Bar"},
			expected: models.ColumnMapping{},
		},
		{
			name:     "Empty column list",
			columns:  nil,
			expected: models.ColumnMapping{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InferMapping(tc.columns))
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	inferred := models.ColumnMapping{
		Date:        "Date",
		Description: "Description",
		Amount:      "Amount",
		Category:    "Category",
	}

	tests := []struct {
		name      string
		overrides Overrides
		expected  models.ColumnMapping
	}{
		{
			name:      "Empty overrides keep inferred values",
			overrides: Overrides{},
			expected:  inferred,
		},
		{
			name:      "Single override replaces one field",
			overrides: Overrides{Amount: "Debit"},
			expected: models.ColumnMapping{
				Date:        "Date",
				Description: "Description",
				Amount:      "Debit",
				Category:    "Category",
			},
		},
		{
			name: "All fields overridden",
			overrides: Overrides{
				Date:        "D",
				Description: "X",
				Amount:      "A",
				Category:    "C",
			},
			expected: models.ColumnMapping{
				Date:        "D",
				Description: "X",
				Amount:      "A",
				Category:    "C",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ApplyOverrides(inferred, tc.overrides))
		})
	}
}

func TestApplyOverridesDoesNotMutateInput(t *testing.T) {
	inferred := models.ColumnMapping{Amount: "Amount"}
	_ = ApplyOverrides(inferred, Overrides{Amount: "Debit"})
	assert.Equal(t, "Amount", inferred.Amount)
}
